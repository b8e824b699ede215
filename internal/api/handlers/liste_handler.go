package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/application/services"
	"github.com/placewise/backend/internal/domain/entities"
)

// ListeHandler handles curated-list HTTP requests
type ListeHandler struct {
	listeService *services.ListeService
}

// NewListeHandler creates a new list handler
func NewListeHandler(listeService *services.ListeService) *ListeHandler {
	return &ListeHandler{listeService: listeService}
}

type listePayload struct {
	Name        string `json:"nom"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
}

// ListListes handles GET /api/listes. Non-admin callers only see public
// lists plus their own.
func (h *ListeHandler) ListListes(w http.ResponseWriter, r *http.Request) {
	if isAdminRequest(r) {
		listes, err := h.listeService.GetAll(r.Context())
		if err != nil {
			respondAppError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, listes)
		return
	}

	listes, err := h.listeService.GetPublic(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}

	if userID, ok := userIDFromRequest(r); ok {
		own, err := h.listeService.GetByOwnerID(r.Context(), userID)
		if err != nil {
			respondAppError(w, err)
			return
		}
		for _, liste := range own {
			if liste.IsPrivate {
				listes = append(listes, liste)
			}
		}
	}
	respondWithJSON(w, http.StatusOK, listes)
}

// GetListe handles GET /api/listes/{id}. A private list is only visible to
// its owner and admins.
func (h *ListeHandler) GetListe(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	liste, err := h.listeService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}

	if liste.IsPrivate && !h.canManage(r, liste) {
		respondWithError(w, http.StatusNotFound, "liste not found")
		return
	}
	respondWithJSON(w, http.StatusOK, liste)
}

// GetMyListes handles GET /api/listes/mine
func (h *ListeHandler) GetMyListes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	listes, err := h.listeService.GetByOwnerID(r.Context(), userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listes)
}

// CreateListe handles POST /api/listes
func (h *ListeHandler) CreateListe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	payload := listePayload{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	liste := &entities.Liste{
		Name:        payload.Name,
		Description: payload.Description,
		IsPrivate:   payload.IsPrivate,
		OwnerID:     userID,
	}
	if err := h.listeService.Create(r.Context(), liste); err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, liste)
}

// UpdateListe handles PUT /api/listes/{id}
func (h *ListeHandler) UpdateListe(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	stored, err := h.listeService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if !h.canManage(r, stored) {
		respondWithError(w, http.StatusForbidden, "not the owner of this list")
		return
	}

	payload := listePayload{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	liste, err := h.listeService.Update(r.Context(), id, payload.Name, payload.Description, payload.IsPrivate)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, liste)
}

// AddPlaceToListe handles POST /api/listes/{id}/places/{placeId}
func (h *ListeHandler) AddPlaceToListe(w http.ResponseWriter, r *http.Request) {
	listeID, placeID, ok := h.resolvePlaceEdit(w, r)
	if !ok {
		return
	}

	if err := h.listeService.AddPlace(r.Context(), listeID, placeID); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemovePlaceFromListe handles DELETE /api/listes/{id}/places/{placeId}
func (h *ListeHandler) RemovePlaceFromListe(w http.ResponseWriter, r *http.Request) {
	listeID, placeID, ok := h.resolvePlaceEdit(w, r)
	if !ok {
		return
	}

	if err := h.listeService.RemovePlace(r.Context(), listeID, placeID); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetListePlaces handles GET /api/listes/{id}/places, resolving the list's
// place references into full documents. Privacy rules match GetListe.
func (h *ListeHandler) GetListePlaces(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	liste, err := h.listeService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if liste.IsPrivate && !h.canManage(r, liste) {
		respondWithError(w, http.StatusNotFound, "liste not found")
		return
	}

	places, err := h.listeService.GetPlaces(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, places)
}

// MakeListePublic handles POST /api/listes/{id}/public
func (h *ListeHandler) MakeListePublic(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

// MakeListePrivate handles POST /api/listes/{id}/private
func (h *ListeHandler) MakeListePrivate(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

func (h *ListeHandler) setVisibility(w http.ResponseWriter, r *http.Request, private bool) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	stored, err := h.listeService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if !h.canManage(r, stored) {
		respondWithError(w, http.StatusForbidden, "not the owner of this list")
		return
	}

	if err := h.listeService.SetPrivate(r.Context(), id, private); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteListe handles DELETE /api/listes/{id}
func (h *ListeHandler) DeleteListe(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	stored, err := h.listeService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if !h.canManage(r, stored) {
		respondWithError(w, http.StatusForbidden, "not the owner of this list")
		return
	}

	if err := h.listeService.Delete(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListeHandler) canManage(r *http.Request, liste *entities.Liste) bool {
	if isAdminRequest(r) {
		return true
	}
	userID, ok := userIDFromRequest(r)
	return ok && liste.OwnerID == userID
}

// resolvePlaceEdit validates both path ids and the caller's right to edit
// the list. It writes the error response itself on failure.
func (h *ListeHandler) resolvePlaceEdit(w http.ResponseWriter, r *http.Request) (listeID, placeID primitive.ObjectID, ok bool) {
	lid, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}
	pid, err := pathObjectID(r, "placeId")
	if err != nil {
		respondAppError(w, err)
		return
	}

	stored, err := h.listeService.GetByID(r.Context(), lid)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if !h.canManage(r, stored) {
		respondWithError(w, http.StatusForbidden, "not the owner of this list")
		return
	}
	return lid, pid, true
}
