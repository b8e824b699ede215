package handlers

import (
	"net/http"

	"github.com/placewise/backend/internal/api/middleware"
	"github.com/placewise/backend/internal/application/services"
)

// AuthHandler handles registration, login and the password-reset flow
type AuthHandler struct {
	userService   *services.UserService
	authenticator *middleware.Authenticator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *services.UserService, authenticator *middleware.Authenticator) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		authenticator: authenticator,
	}
}

type credentialsPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	payload := credentialsPayload{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	user, err := h.userService.Register(r.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login and returns a bearer token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload := credentialsPayload{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}

	token, err := h.authenticator.IssueToken(user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// ForgotPassword handles POST /api/auth/forgot-password. The response does
// not reveal whether the email is registered.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		Email string `json:"email"`
	}{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.userService.RequestPasswordReset(r.Context(), payload.Email); err != nil {
		// Unknown address: answer as if the mail went out.
		if apperrorsIsNotFound(err) {
			respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
			return
		}
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	if err := h.userService.ResetPassword(r.Context(), payload.Token, payload.Password); err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
