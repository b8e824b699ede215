package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/application/services"
)

// ReportHandler handles review-report HTTP requests
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport handles POST /api/reviews/{id}/reports
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	payload := struct {
		Reason string `json:"raison"`
	}{}
	if err := decodeJSON(r, &payload); err != nil {
		respondAppError(w, err)
		return
	}

	report, err := h.reportService.Create(r.Context(), reviewID, userID, payload.Reason)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, report)
}

// ListReports handles GET /api/reports (admin). A reporter query parameter
// narrows the listing to the reports raised by that user.
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("reporter"); raw != "" {
		reporterID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid id format")
			return
		}
		reports, err := h.reportService.GetByUserID(r.Context(), reporterID)
		if err != nil {
			respondAppError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, reports)
		return
	}

	reports, err := h.reportService.GetAll(r.Context())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reports)
}

// GetReport handles GET /api/reports/{id} (admin)
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	report, err := h.reportService.GetByID(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

// GetReviewReports handles GET /api/reviews/{id}/reports (admin)
func (h *ReportHandler) GetReviewReports(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	reports, err := h.reportService.GetByReviewID(r.Context(), reviewID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reports)
}

// GetReportsAgainstUser handles GET /api/users/{id}/reports (admin)
func (h *ReportHandler) GetReportsAgainstUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathObjectID(r, "id")
	if err != nil {
		respondAppError(w, err)
		return
	}

	reports, err := h.reportService.GetByReportedUserID(r.Context(), userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, reports)
}
