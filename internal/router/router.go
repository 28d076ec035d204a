package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lifetracker/lifetracker-api/internal/activity"
	"github.com/lifetracker/lifetracker-api/internal/auth"
	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/goal"
	"github.com/lifetracker/lifetracker-api/internal/insights"
	"github.com/lifetracker/lifetracker-api/internal/journal"
	"github.com/lifetracker/lifetracker-api/internal/middlewares"
	"github.com/lifetracker/lifetracker-api/internal/observability"
	"github.com/lifetracker/lifetracker-api/internal/profile"
)

type RouterConfig struct {
	Config          config.Config
	ActivityHandler *activity.Handler
	GoalHandler     *goal.Handler
	JournalHandler  *journal.Handler
	ProfileHandler  *profile.Handler
	InsightsHandler *insights.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CORS(cfg.Config.CORSOrigin))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(cfg.Config))

		r.Mount("/activities", activity.Routes(cfg.ActivityHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/journals", journal.Routes(cfg.JournalHandler))
		r.Mount("/profiles", profile.Routes(cfg.ProfileHandler))
		r.Mount("/insights", insights.Routes(cfg.InsightsHandler))
	})

	return r
}
