package handlers

import (
	"net/http"
	"time"

	"github.com/placewise/backend/internal/application/services"
)

// maxPhotoUploadBytes bounds profile photo uploads.
const maxPhotoUploadBytes = 5 << 20

// UserHandler handles user account HTTP requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /api/users (admin)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAll(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// GetMe handles GET /api/users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// UpdateUser handles PATCH /api/users/{id}. Users may edit themselves;
// admins may edit anyone, including the admin flag.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	callerID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	admin := isAdminRequest(r)
	if callerID != id && !admin {
		respondWithError(w, http.StatusForbidden, "cannot edit another user")
		return
	}

	payload := struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		IsAdmin  *bool   `json:"isAdmin"`
	}{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	input := services.UserUpdateInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	}
	// Only admins may grant or revoke the admin flag.
	if admin {
		input.IsAdmin = payload.IsAdmin
	}

	user, err := h.userService.Update(r.Context(), id, input)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// UploadPhoto handles POST /api/users/{id}/photo (multipart form, field "photo")
func (h *UserHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	callerID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if callerID != id && !isAdminRequest(r) {
		respondWithError(w, http.StatusForbidden, "cannot edit another user")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoUploadBytes)
	file, header, err := r.FormFile("photo")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	url, err := h.userService.UpdatePhoto(r.Context(), id, header.Filename, file)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"photo": url})
}

// ListBannedUsers handles GET /api/users/banned (admin)
func (h *UserHandler) ListBannedUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetBanned(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// BanUser handles POST /api/users/{id}/ban (admin)
func (h *UserHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	payload := struct {
		Until time.Time `json:"dateFinBannissement"`
	}{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.userService.Ban(r.Context(), id, payload.Until); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnbanUser handles DELETE /api/users/{id}/ban (admin)
func (h *UserHandler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.userService.Unban(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/users/{id}. Users may delete themselves;
// admins may delete anyone.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	callerID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if callerID != id && !isAdminRequest(r) {
		respondWithError(w, http.StatusForbidden, "cannot delete another user")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
