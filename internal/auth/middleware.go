package auth

import (
	"net/http"

	"github.com/lifetracker/lifetracker-api/internal/config"
)

// Middleware resolves the request identity from the Authorization header
// and stores it on the context. Outside production a missing or broken
// identity is substituted with the fixed development placeholder; in
// production the request is rejected.
func Middleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := FromAuthorizationHeader(r.Header.Get("Authorization"))
			if err != nil {
				if cfg.IsProduction() {
					config.JSONError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				log := config.WithContext(r.Context())
				log.WithError(err).Debug("substituting development identity")
				identity = &Identity{UserID: DevUserID, Email: DevEmail}
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
