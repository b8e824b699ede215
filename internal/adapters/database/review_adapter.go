package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	mongoclient "github.com/placewise/backend/internal/infrastructure/clients/mongo"
	apperrors "github.com/placewise/backend/pkg/errors"
)

const reviewsCollection = "reviews"

// ReviewAdapter implements the ReviewRepository interface on MongoDB
type ReviewAdapter struct {
	coll *mongo.Collection
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *mongoclient.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		coll: client.Collection(reviewsCollection),
	}
}

// Create creates a new review
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}

	if _, err := a.coll.InsertOne(ctx, review); err != nil {
		return apperrors.NewInternalError("failed to create review", err)
	}
	return nil
}

// GetByID retrieves a review by ID
func (a *ReviewAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Review, error) {
	review := &entities.Review{}
	err := a.coll.FindOne(ctx, bson.M{"_id": id}).Decode(review)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("review with id %s not found", id.Hex()))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get review", err)
	}
	return review, nil
}

// GetAll retrieves all reviews
func (a *ReviewAdapter) GetAll(ctx context.Context) ([]*entities.Review, error) {
	return a.find(ctx, bson.M{}, nil)
}

// GetByPlaceID retrieves every review written for a place
func (a *ReviewAdapter) GetByPlaceID(ctx context.Context, placeID primitive.ObjectID) ([]*entities.Review, error) {
	return a.find(ctx, bson.M{"placeId": placeID}, nil)
}

// GetByUserID retrieves every review written by a user
func (a *ReviewAdapter) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entities.Review, error) {
	return a.find(ctx, bson.M{"userId": userID}, nil)
}

// GetRecentByUserID retrieves the user's most recent reviews with a note of
// at least minNote, newest first, capped at limit
func (a *ReviewAdapter) GetRecentByUserID(ctx context.Context, userID primitive.ObjectID, minNote int, limit int) ([]*entities.Review, error) {
	filter := bson.M{
		"userId": userID,
		"note":   bson.M{"$gte": minNote},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return a.find(ctx, filter, opts)
}

// CountSince counts reviews created at or after the given time
func (a *ReviewAdapter) CountSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := a.coll.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
	if err != nil {
		return 0, apperrors.NewInternalError("failed to count recent reviews", err)
	}
	return count, nil
}

// Count counts all reviews
func (a *ReviewAdapter) Count(ctx context.Context) (int64, error) {
	count, err := a.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.NewInternalError("failed to count reviews", err)
	}
	return count, nil
}

// Update replaces a review document
func (a *ReviewAdapter) Update(ctx context.Context, review *entities.Review) error {
	result, err := a.coll.ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return apperrors.NewInternalError("failed to update review", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("review with id %s not found", review.ID.Hex()))
	}
	return nil
}

// Delete deletes a review
func (a *ReviewAdapter) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := a.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewInternalError("failed to delete review", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("review with id %s not found", id.Hex()))
	}
	return nil
}

func (a *ReviewAdapter) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entities.Review, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = a.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = a.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}
	defer cursor.Close(ctx)

	reviews := []*entities.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, apperrors.NewInternalError("failed to decode reviews", err)
	}
	return reviews, nil
}
