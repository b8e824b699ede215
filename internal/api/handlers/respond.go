package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/api/middleware"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// Helper functions shared by all handlers.

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondAppError maps the application error taxonomy onto HTTP status codes:
// NotFound 404, Validation/Conflict/Precondition 400, Unauthorized 401,
// everything else 500 with the details kept out of the response.
func respondAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	switch appErr.Type {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appErr.Message)
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeConflict, apperrors.ErrorTypePrecondition:
		respondWithError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrorTypeUnauthorized:
		respondWithError(w, http.StatusUnauthorized, appErr.Message)
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathObjectID extracts and validates an ObjectID path parameter
func pathObjectID(r *http.Request, name string) (primitive.ObjectID, error) {
	raw := r.PathValue(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewValidationError("invalid id format")
	}
	return id, nil
}

// userIDFromRequest returns the identity resolved by the auth middleware
func userIDFromRequest(r *http.Request) (primitive.ObjectID, bool) {
	return middleware.UserIDFromContext(r.Context())
}

// apperrorsIsNotFound is shorthand used where NotFound gets special handling
func apperrorsIsNotFound(err error) bool {
	return apperrors.IsType(err, apperrors.ErrorTypeNotFound)
}

// isAdminRequest reports whether the caller's token carries the admin flag
func isAdminRequest(r *http.Request) bool {
	return middleware.IsAdminFromContext(r.Context())
}

// decodeJSON decodes a request body, rejecting malformed payloads
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}
	return nil
}
