package database

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	mongoclient "github.com/placewise/backend/internal/infrastructure/clients/mongo"
	apperrors "github.com/placewise/backend/pkg/errors"
)

const placesCollection = "places"

// PlaceAdapter implements the PlaceRepository interface on MongoDB
type PlaceAdapter struct {
	coll *mongo.Collection
}

// NewPlaceAdapter creates a new place adapter
func NewPlaceAdapter(client *mongoclient.Client) repositories.PlaceRepository {
	return &PlaceAdapter{
		coll: client.Collection(placesCollection),
	}
}

// Create creates a new place
func (a *PlaceAdapter) Create(ctx context.Context, place *entities.Place) error {
	if place.ID.IsZero() {
		place.ID = primitive.NewObjectID()
	}

	if _, err := a.coll.InsertOne(ctx, place); err != nil {
		return apperrors.NewInternalError("failed to create place", err)
	}
	return nil
}

// GetByID retrieves a place by ID
func (a *PlaceAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Place, error) {
	place := &entities.Place{}
	err := a.coll.FindOne(ctx, bson.M{"_id": id}).Decode(place)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("place with id %s not found", id.Hex()))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get place", err)
	}
	return place, nil
}

// GetAll retrieves the full place catalog
func (a *PlaceAdapter) GetAll(ctx context.Context) ([]*entities.Place, error) {
	return a.find(ctx, bson.M{})
}

// GetByCategory retrieves places with the given category (exact match)
func (a *PlaceAdapter) GetByCategory(ctx context.Context, category string) ([]*entities.Place, error) {
	return a.find(ctx, bson.M{"category": category})
}

// GetByName retrieves places whose name contains the given fragment,
// case-insensitively
func (a *PlaceAdapter) GetByName(ctx context.Context, name string) ([]*entities.Place, error) {
	filter := bson.M{"name": bson.M{
		"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"},
	}}
	return a.find(ctx, filter)
}

// GetByTag retrieves places carrying the given tag
func (a *PlaceAdapter) GetByTag(ctx context.Context, tag string) ([]*entities.Place, error) {
	return a.find(ctx, bson.M{"tags": tag})
}

// Update replaces a place document
func (a *PlaceAdapter) Update(ctx context.Context, place *entities.Place) error {
	result, err := a.coll.ReplaceOne(ctx, bson.M{"_id": place.ID}, place)
	if err != nil {
		return apperrors.NewInternalError("failed to update place", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("place with id %s not found", place.ID.Hex()))
	}
	return nil
}

// UpdateRatingStats persists the derived rating fields on a place
func (a *PlaceAdapter) UpdateRatingStats(ctx context.Context, id primitive.ObjectID, averageRating float64, reviewCount int) error {
	update := bson.M{"$set": bson.M{
		"averageRating": averageRating,
		"reviewCount":   reviewCount,
	}}

	result, err := a.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperrors.NewInternalError("failed to update place rating stats", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("place with id %s not found", id.Hex()))
	}
	return nil
}

// RemoveTagFromAll removes the given tag label from every place's tag set
func (a *PlaceAdapter) RemoveTagFromAll(ctx context.Context, label string) error {
	update := bson.M{"$pull": bson.M{"tags": label}}
	if _, err := a.coll.UpdateMany(ctx, bson.M{}, update); err != nil {
		return apperrors.NewInternalError("failed to remove tag from places", err)
	}
	return nil
}

// Delete deletes a place
func (a *PlaceAdapter) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := a.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewInternalError("failed to delete place", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("place with id %s not found", id.Hex()))
	}
	return nil
}

func (a *PlaceAdapter) find(ctx context.Context, filter bson.M) ([]*entities.Place, error) {
	cursor, err := a.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list places", err)
	}
	defer cursor.Close(ctx)

	places := []*entities.Place{}
	if err := cursor.All(ctx, &places); err != nil {
		return nil, apperrors.NewInternalError("failed to decode places", err)
	}
	return places, nil
}
