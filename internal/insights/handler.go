package insights

import (
	"net/http"
	"time"

	"github.com/lifetracker/lifetracker-api/internal/auth"
	"github.com/lifetracker/lifetracker-api/internal/config"
	util "github.com/lifetracker/lifetracker-api/internal/utils"
)

// defaultWindowDays is the summary range applied when from/to are omitted.
const defaultWindowDays = 30

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) FitnessSummary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.service.FitnessSummary(r.Context(), identity.UserID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to compute fitness summary")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) WeeklyTrend(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	trend, err := h.service.WeeklyTrend(r.Context(), identity.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to compute weekly trend")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, trend)
}

func (h *Handler) JournalInsights(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.JournalInsights(r.Context(), identity.UserID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to compute journal insights")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func parseRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -defaultWindowDays)
	to := now

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := util.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := util.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}
