package profile

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lifetracker/lifetracker-api/internal/auth"
	"github.com/lifetracker/lifetracker-api/internal/config"
)

// maxAvatarSize bounds avatar upload bodies.
const maxAvatarSize = 5 << 20

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

	var dto CreateProfileDTO
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
		log.WithError(err).Error("Failed to create profile")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusCreated, created)
}

// Get serves self lookups ("me") and public lookups by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "me" {
		id = identity.UserID
	}

	found, err := h.service.GetByID(r.Context(), id)
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

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), identity.UserID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			config.JSONError(w, http.StatusForbidden, "Forbidden")
		case errors.Is(err, ErrInvalidInput):
			config.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).Error("Failed to update profile")
			config.JSONError(w, http.StatusInternalServerError, err.Error())
		}
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
		if errors.Is(err, ErrForbidden) {
			config.JSONError(w, http.StatusForbidden, "Forbidden")
			return
		}
		log.WithError(err).Error("Failed to delete profile")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxAvatarSize))
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "unable to read avatar body")
		return
	}

	updated, err := h.service.UploadAvatar(
		r.Context(),
		chi.URLParam(r, "id"),
		identity.UserID,
		r.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			config.JSONError(w, http.StatusForbidden, "Forbidden")
		case errors.Is(err, ErrInvalidInput):
			config.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).Error("Failed to upload avatar")
			config.JSONError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	if updated == nil {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	config.JSON(w, http.StatusOK, updated)
}
