package handlers

import (
	"net/http"
	"strconv"

	"github.com/placewise/backend/internal/application/services"
	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
)

// PlaceHandler handles place-related HTTP requests
type PlaceHandler struct {
	placeService          *services.PlaceService
	recommendationService *services.RecommendationService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService *services.PlaceService, recommendationService *services.RecommendationService) *PlaceHandler {
	return &PlaceHandler{
		placeService:          placeService,
		recommendationService: recommendationService,
	}
}

// ListPlaces handles GET /api/places. A single category, name or tag query
// parameter narrows the listing; use /api/places/search to combine criteria.
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	var (
		places []*entities.Place
		err    error
	)

	query := r.URL.Query()
	switch {
	case query.Get("category") != "":
		places, err = h.placeService.GetByCategory(r.Context(), query.Get("category"))
	case query.Get("name") != "":
		places, err = h.placeService.GetByName(r.Context(), query.Get("name"))
	case query.Get("tag") != "":
		places, err = h.placeService.GetByTag(r.Context(), query.Get("tag"))
	default:
		places, err = h.placeService.GetAll(r.Context())
	}
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, places)
}

// GetPlace handles GET /api/places/{id}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	place, err := h.placeService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, place)
}

// CreatePlace handles POST /api/places
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	place := &entities.Place{}
	if err := decodeJSON(r, place); err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.placeService.Create(r.Context(), place); err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, place)
}

// UpdatePlace handles PUT /api/places/{id}
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	place := &entities.Place{}
	if err := decodeJSON(r, place); err != nil {
		respondAppError(w, err)
		return
	}
	place.ID = id

	if err := h.placeService.Update(r.Context(), place); err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, place)
}

// DeletePlace handles DELETE /api/places/{id}
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.placeService.Delete(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchPlaces handles GET /api/places/search
func (h *PlaceHandler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	criteria := repositories.SearchCriteria{
		Name:     query.Get("name"),
		Category: query.Get("category"),
		City:     query.Get("city"),
		Tag:      query.Get("tag"),
	}

	if raw := query.Get("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "minRating must be a number")
			return
		}
		criteria.MinRating = &minRating
	}

	places, err := h.placeService.Search(r.Context(), criteria)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, places)
}

// RecommendPlaces handles GET /api/places/recommandations. The identity comes
// from the bearer token, never from the request body.
func (h *PlaceHandler) RecommendPlaces(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	places, err := h.recommendationService.Recommend(r.Context(), userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, places)
}
