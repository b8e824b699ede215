package handlers

import (
	"net/http"

	"github.com/placewise/backend/internal/application/services"
)

// StatsHandler serves the read-only statistics endpoints. Every request
// recomputes from the current data; nothing is cached.
type StatsHandler struct {
	statisticsService *services.StatisticsService
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(statisticsService *services.StatisticsService) *StatsHandler {
	return &StatsHandler{statisticsService: statisticsService}
}

// GetUserStats handles GET /api/stats/users
func (h *StatsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.UserStats(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// GetPlaceStats handles GET /api/stats/places
func (h *StatsHandler) GetPlaceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.PlaceStats(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// GetReviewStats handles GET /api/stats/reviews
func (h *StatsHandler) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.ReviewStats(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// GetListeStats handles GET /api/stats/lists
func (h *StatsHandler) GetListeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.ListeStats(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
