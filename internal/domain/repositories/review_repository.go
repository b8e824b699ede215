package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	// Create creates a new review
	Create(ctx context.Context, review *entities.Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Review, error)

	// GetAll retrieves all reviews
	GetAll(ctx context.Context) ([]*entities.Review, error)

	// GetByPlaceID retrieves the reviews for a place
	GetByPlaceID(ctx context.Context, placeID primitive.ObjectID) ([]*entities.Review, error)

	// GetByUserID retrieves the reviews written by a user
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entities.Review, error)

	// GetRecentByUserID retrieves at most limit reviews written by a user
	// with a note of at least minNote, most recent first
	GetRecentByUserID(ctx context.Context, userID primitive.ObjectID, minNote int, limit int) ([]*entities.Review, error)

	// Count returns the total number of reviews
	Count(ctx context.Context) (int64, error)

	// CountSince counts reviews created at or after the given time
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// Update replaces a review document
	Update(ctx context.Context, review *entities.Review) error

	// Delete deletes a review
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ReportRepository defines the interface for report data operations
type ReportRepository interface {
	// Create creates a new report
	Create(ctx context.Context, report *entities.Report) error

	// GetByID retrieves a report by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Report, error)

	// GetAll retrieves all reports
	GetAll(ctx context.Context) ([]*entities.Report, error)

	// GetByReviewID retrieves the reports raised against a review
	GetByReviewID(ctx context.Context, reviewID primitive.ObjectID) ([]*entities.Report, error)

	// GetByUserID retrieves the reports raised by a user
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entities.Report, error)

	// GetByReportedUserID retrieves the reports raised against a user's reviews
	GetByReportedUserID(ctx context.Context, reportedUserID primitive.ObjectID) ([]*entities.Report, error)

	// Count returns the total number of reports
	Count(ctx context.Context) (int64, error)

	// DeleteByReviewID deletes every report referencing the given review
	DeleteByReviewID(ctx context.Context, reviewID primitive.ObjectID) error
}
