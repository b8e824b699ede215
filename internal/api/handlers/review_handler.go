package handlers

import (
	"net/http"

	"github.com/placewise/backend/internal/application/services"
	"github.com/placewise/backend/internal/domain/entities"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type reviewPayload struct {
	Comment string `json:"commentaire"`
	Note    int    `json:"note"`
}

// ListReviews handles GET /api/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.GetAll(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews)
}

// GetReview handles GET /api/reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	review, err := h.reviewService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, review)
}

// GetPlaceReviews handles GET /api/places/{id}/reviews
func (h *ReviewHandler) GetPlaceReviews(w http.ResponseWriter, r *http.Request) {
	placeID, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	reviews, err := h.reviewService.GetByPlaceID(r.Context(), placeID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews)
}

// GetUserReviews handles GET /api/users/{id}/reviews
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	reviews, err := h.reviewService.GetByUserID(r.Context(), userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews)
}

// CreateReview handles POST /api/places/{id}/reviews. The review author is
// the authenticated caller.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	placeID, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	payload := reviewPayload{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	review := &entities.Review{
		PlaceID: placeID,
		UserID:  userID,
		Comment: payload.Comment,
		Note:    payload.Note,
	}
	if err := h.reviewService.Create(r.Context(), review); err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, review)
}

// UpdateReview handles PUT /api/reviews/{id}. Only the author may edit.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	stored, err := h.reviewService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if stored.UserID != userID && !isAdminRequest(r) {
		respondWithError(w, http.StatusForbidden, "not the author of this review")
		return
	}

	payload := reviewPayload{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	review, err := h.reviewService.Update(r.Context(), id, payload.Note, payload.Comment)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /api/reviews/{id}. The author or an admin may
// delete.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	stored, err := h.reviewService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if stored.UserID != userID && !isAdminRequest(r) {
		respondWithError(w, http.StatusForbidden, "not the author of this review")
		return
	}

	if err := h.reviewService.Delete(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
