package activity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lifetracker/lifetracker-api/internal/auth"
	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/pagination"
	util "github.com/lifetracker/lifetracker-api/internal/utils"
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

	var dto CreateActivityDTO
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
		log.WithError(err).Error("Failed to create activity")
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

	filter, err := parseListFilter(r)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.List(r.Context(), identity.UserID, filter, params)
	if err != nil {
		log.WithError(err).Error("Failed to list activities")
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

	var dto UpdateActivityDTO
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
		log.WithError(err).Error("Failed to update activity")
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
		log.WithError(err).Error("Failed to delete activity")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	f := ListFilter{Type: r.URL.Query().Get("type")}

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := util.ParseDate(raw)
		if err != nil {
			return ListFilter{}, err
		}
		f.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := util.ParseDate(raw)
		if err != nil {
			return ListFilter{}, err
		}
		f.To = &to
	}
	return f, nil
}
