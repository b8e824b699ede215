package handlers

import (
	"net/http"

	"github.com/placewise/backend/internal/application/services"
	"github.com/placewise/backend/internal/domain/entities"
)

// PreferencesHandler handles the caller's stored recommendation criteria
type PreferencesHandler struct {
	preferencesService *services.PreferencesService
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferencesService *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// GetPreferences handles GET /api/preferences
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	prefs, err := h.preferencesService.GetByUserID(r.Context(), userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, prefs)
}

// PutPreferences handles PUT /api/preferences (create-or-replace)
func (h *PreferencesHandler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	prefs := &entities.Preferences{}
	if err := decodeJSON(r, prefs); err != nil {
		respondAppError(w, err)
		return
	}
	prefs.UserID = userID

	if err := h.preferencesService.Upsert(r.Context(), prefs); err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, prefs)
}
