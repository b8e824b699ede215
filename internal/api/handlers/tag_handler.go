package handlers

import (
	"net/http"

	"github.com/placewise/backend/internal/application/services"
	"github.com/placewise/backend/internal/domain/entities"
)

// TagHandler handles tag-related HTTP requests
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags handles GET /api/tags
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.GetAll(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tags)
}

// GetTag handles GET /api/tags/{id}
func (h *TagHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	tag, err := h.tagService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tag)
}

// CreateTag handles POST /api/tags
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	tag := &entities.Tag{}
	if err := decodeJSON(r, tag); err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.tagService.Create(r.Context(), tag); err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, tag)
}

// UpdateTag handles PUT /api/tags/{id}
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	tag := &entities.Tag{}
	if err := decodeJSON(r, tag); err != nil {
		respondAppError(w, err)
		return
	}
	tag.ID = id

	if err := h.tagService.Update(r.Context(), tag); err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tag)
}

// DeleteTag handles DELETE /api/tags/{id}
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.tagService.Delete(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
