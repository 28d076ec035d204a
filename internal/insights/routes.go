package insights

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/fitness", h.FitnessSummary)
	r.Get("/fitness/trend", h.WeeklyTrend)
	r.Get("/journal", h.JournalInsights)

	return r
}
