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

// ReviewService handles business logic for reviews. Every write goes through
// a full recomputation of the target place's rating statistics.
type ReviewService struct {
	repo       repositories.ReviewRepository
	placeRepo  repositories.PlaceRepository
	reportRepo repositories.ReportRepository
}

// NewReviewService creates a new review service
func NewReviewService(repo repositories.ReviewRepository, placeRepo repositories.PlaceRepository, reportRepo repositories.ReportRepository) *ReviewService {
	return &ReviewService{
		repo:       repo,
		placeRepo:  placeRepo,
		reportRepo: reportRepo,
	}
}

// Create validates a review, stores it and refreshes the place's rating stats
func (s *ReviewService) Create(ctx context.Context, review *entities.Review) error {
	if err := validateNote(review.Note); err != nil {
		return err
	}
	if strings.TrimSpace(review.Comment) == "" {
		return apperrors.NewValidationError("review comment is required")
	}

	// The place must exist before attaching a review to it.
	if _, err := s.placeRepo.GetByID(ctx, review.PlaceID); err != nil {
		return err
	}

	review.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, review); err != nil {
		return err
	}

	return s.recomputePlaceStats(ctx, review.PlaceID)
}

// GetByID retrieves a review by ID
func (s *ReviewService) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Review, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves all reviews
func (s *ReviewService) GetAll(ctx context.Context) ([]*entities.Review, error) {
	return s.repo.GetAll(ctx)
}

// GetByPlaceID retrieves the reviews for a place
func (s *ReviewService) GetByPlaceID(ctx context.Context, placeID primitive.ObjectID) ([]*entities.Review, error) {
	return s.repo.GetByPlaceID(ctx, placeID)
}

// GetByUserID retrieves the reviews written by a user
func (s *ReviewService) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entities.Review, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Update applies a partial update to a review and refreshes the place's
// rating stats. A zero note or blank comment in the payload leaves the
// stored value untouched.
func (s *ReviewService) Update(ctx context.Context, id primitive.ObjectID, note int, comment string) (*entities.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if note != 0 {
		if err := validateNote(note); err != nil {
			return nil, err
		}
		review.Note = note
	}
	if strings.TrimSpace(comment) != "" {
		review.Comment = comment
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	if err := s.recomputePlaceStats(ctx, review.PlaceID); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review together with the reports raised against it, then
// refreshes the place's rating stats
func (s *ReviewService) Delete(ctx context.Context, id primitive.ObjectID) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reportRepo.DeleteByReviewID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	return s.recomputePlaceStats(ctx, review.PlaceID)
}

// recomputePlaceStats re-derives a place's average rating and review count
// from its full current review set. Read-all-then-write: two concurrent
// review writes on the same place can race (last writer wins).
func (s *ReviewService) recomputePlaceStats(ctx context.Context, placeID primitive.ObjectID) error {
	reviews, err := s.repo.GetByPlaceID(ctx, placeID)
	if err != nil {
		return err
	}

	average := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Note
		}
		average = float64(sum) / float64(len(reviews))
	}

	return s.placeRepo.UpdateRatingStats(ctx, placeID, average, len(reviews))
}

func validateNote(note int) error {
	if note < 1 || note > 5 {
		return apperrors.NewValidationError("note must be between 1 and 5")
	}
	return nil
}
