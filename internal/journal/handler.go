package journal

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lifetracker/lifetracker-api/internal/auth"
	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/pagination"
	util "github.com/lifetracker/lifetracker-api/internal/utils"
)

// maxAttachmentSize bounds attachment request bodies.
const maxAttachmentSize = 10 << 20

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

	var dto CreateJournalDTO
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
		log.WithError(err).Error("Failed to create journal entry")
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
		log.WithError(err).Error("Failed to list journal entries")
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

	var dto UpdateJournalDTO
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
		log.WithError(err).Error("Failed to update journal entry")
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
		log.WithError(err).Error("Failed to delete journal entry")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddAttachment accepts the raw file body; filename comes from the
// X-File-Name header and the type from Content-Type.
func (h *Handler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxAttachmentSize))
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "unable to read attachment body")
		return
	}

	updated, err := h.service.AddAttachment(
		r.Context(),
		chi.URLParam(r, "id"),
		identity.UserID,
		r.Header.Get("X-File-Name"),
		r.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			config.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.WithError(err).Error("Failed to add attachment")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if updated == nil {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	config.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rendered, err := h.service.RenderHTML(r.Context(), chi.URLParam(r, "id"), identity.UserID)
	if err != nil {
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rendered == nil {
		config.JSONError(w, http.StatusNotFound, "NotFound")
		return
	}

	config.JSON(w, http.StatusOK, rendered)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	identity, err := auth.GetIdentityFromContext(r.Context())
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := pagination.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			config.JSONError(w, http.StatusBadRequest, pagination.ErrInvalidLimit.Error())
			return
		}
		limit = parsed
	}

	results, err := h.service.Search(r.Context(), identity.UserID, r.URL.Query().Get("q"), limit)
	if err != nil {
		log.WithError(err).Error("Journal search failed")
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, results)
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	f := ListFilter{Mood: r.URL.Query().Get("mood")}

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
