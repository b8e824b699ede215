package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// ReportService handles business logic for review reports
type ReportService struct {
	repo       repositories.ReportRepository
	reviewRepo repositories.ReviewRepository
}

// NewReportService creates a new report service
func NewReportService(repo repositories.ReportRepository, reviewRepo repositories.ReviewRepository) *ReportService {
	return &ReportService{
		repo:       repo,
		reviewRepo: reviewRepo,
	}
}

// Create flags a review. The reported user is resolved from the review
// itself, never taken from the caller.
func (s *ReportService) Create(ctx context.Context, reviewID, userID primitive.ObjectID, reason string) (*entities.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.NewValidationError("report reason is required")
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID == userID {
		return nil, apperrors.NewValidationError("cannot report your own review")
	}

	report := &entities.Report{
		ReviewID:       reviewID,
		UserID:         userID,
		ReportedUserID: review.UserID,
		Reason:         reason,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// GetByID retrieves a report by ID
func (s *ReportService) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Report, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves all reports
func (s *ReportService) GetAll(ctx context.Context) ([]*entities.Report, error) {
	return s.repo.GetAll(ctx)
}

// GetByReviewID retrieves the reports raised against a review
func (s *ReportService) GetByReviewID(ctx context.Context, reviewID primitive.ObjectID) ([]*entities.Report, error) {
	return s.repo.GetByReviewID(ctx, reviewID)
}

// GetByUserID retrieves the reports raised by a user
func (s *ReportService) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entities.Report, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// GetByReportedUserID retrieves the reports raised against a user's reviews
func (s *ReportService) GetByReportedUserID(ctx context.Context, reportedUserID primitive.ObjectID) ([]*entities.Report, error) {
	return s.repo.GetByReportedUserID(ctx, reportedUserID)
}
