package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lifetracker/lifetracker-api/internal/auth"
	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/pagination"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), identity.UserID, dto)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			config.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to create goal")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	params, err := pagination.Parse(r)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := ListFilter{Status: r.URL.Query().Get("status")}

	page, err := h.service.List(r.Context(), identity.UserID, filter, params)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			config.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to list goals")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, page)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	found, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if found == nil {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	config.JSON(w, http.StatusOK, found)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), identity.UserID, dto)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			config.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to update goal")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if updated == nil {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	config.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	deleted, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to delete goal")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
