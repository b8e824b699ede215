package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	mongoclient "github.com/placewise/backend/internal/infrastructure/clients/mongo"
	apperrors "github.com/placewise/backend/pkg/errors"
)

const reportsCollection = "reports"

// ReportAdapter implements the ReportRepository interface on MongoDB
type ReportAdapter struct {
	coll *mongo.Collection
}

// NewReportAdapter creates a new report adapter
func NewReportAdapter(client *mongoclient.Client) repositories.ReportRepository {
	return &ReportAdapter{
		coll: client.Collection(reportsCollection),
	}
}

// Create creates a new report
func (a *ReportAdapter) Create(ctx context.Context, report *entities.Report) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}

	if _, err := a.coll.InsertOne(ctx, report); err != nil {
		return apperrors.NewInternalError("failed to create report", err)
	}
	return nil
}

// GetByID retrieves a report by ID
func (a *ReportAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Report, error) {
	report := &entities.Report{}
	err := a.coll.FindOne(ctx, bson.M{"_id": id}).Decode(report)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("report with id %s not found", id.Hex()))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get report", err)
	}
	return report, nil
}

// GetAll retrieves all reports
func (a *ReportAdapter) GetAll(ctx context.Context) ([]*entities.Report, error) {
	return a.find(ctx, bson.M{})
}

// GetByReviewID retrieves the reports raised against a review
func (a *ReportAdapter) GetByReviewID(ctx context.Context, reviewID primitive.ObjectID) ([]*entities.Report, error) {
	return a.find(ctx, bson.M{"reviewId": reviewID})
}

// GetByUserID retrieves the reports raised by a user
func (a *ReportAdapter) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entities.Report, error) {
	return a.find(ctx, bson.M{"userId": userID})
}

// GetByReportedUserID retrieves the reports raised against a user's reviews
func (a *ReportAdapter) GetByReportedUserID(ctx context.Context, reportedUserID primitive.ObjectID) ([]*entities.Report, error) {
	return a.find(ctx, bson.M{"reportedUserId": reportedUserID})
}

// Count returns the total number of reports
func (a *ReportAdapter) Count(ctx context.Context) (int64, error) {
	count, err := a.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.NewInternalError("failed to count reports", err)
	}
	return count, nil
}

// DeleteByReviewID deletes every report referencing the given review
func (a *ReportAdapter) DeleteByReviewID(ctx context.Context, reviewID primitive.ObjectID) error {
	if _, err := a.coll.DeleteMany(ctx, bson.M{"reviewId": reviewID}); err != nil {
		return apperrors.NewInternalError("failed to delete reports for review", err)
	}
	return nil
}

func (a *ReportAdapter) find(ctx context.Context, filter bson.M) ([]*entities.Report, error) {
	cursor, err := a.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reports", err)
	}
	defer cursor.Close(ctx)

	reports := []*entities.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, apperrors.NewInternalError("failed to decode reports", err)
	}
	return reports, nil
}
