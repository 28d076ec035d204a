package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifetracker/lifetracker-api/internal/auth"
	"github.com/lifetracker/lifetracker-api/internal/config"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}

func TestFromAuthorizationHeader(t *testing.T) {
	t.Run("PrefersSubClaim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"sub": "user-42", "oid": "other-id", "email": "u@example.com"})

		id, err := auth.FromAuthorizationHeader("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", id.UserID)
		assert.Equal(t, "u@example.com", id.Email)
	})

	t.Run("FallsBackToOid", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"oid": "object-99"})

		id, err := auth.FromAuthorizationHeader("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, "object-99", id.UserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		_, err := auth.FromAuthorizationHeader("")
		assert.ErrorIs(t, err, auth.ErrMissingToken)
	})

	t.Run("NotBearer", func(t *testing.T) {
		_, err := auth.FromAuthorizationHeader("Basic dXNlcjpwYXNz")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		_, err := auth.FromAuthorizationHeader("Bearer not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("NoUsableClaims", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"email": "u@example.com"})

		_, err := auth.FromAuthorizationHeader("Bearer " + token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	capture := func() (http.Handler, **auth.Identity) {
		var got *auth.Identity
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = auth.GetIdentityFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
		return h, &got
	}

	t.Run("ValidTokenSetsIdentity", func(t *testing.T) {
		next, got := capture()
		mw := auth.Middleware(config.Config{Environment: "production"})(next)

		token := signToken(t, jwt.MapClaims{"sub": "user-42"})
		r := httptest.NewRequest("GET", "/api/activities", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, *got)
		assert.Equal(t, "user-42", (*got).UserID)
	})

	t.Run("DevelopmentSubstitutesPlaceholder", func(t *testing.T) {
		next, got := capture()
		mw := auth.Middleware(config.Config{Environment: "development"})(next)

		r := httptest.NewRequest("GET", "/api/activities", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, *got)
		assert.Equal(t, auth.DevUserID, (*got).UserID)
		assert.Equal(t, auth.DevEmail, (*got).Email)
	})

	t.Run("ProductionRejectsMissingToken", func(t *testing.T) {
		next, _ := capture()
		mw := auth.Middleware(config.Config{Environment: "production"})(next)

		r := httptest.NewRequest("GET", "/api/activities", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
