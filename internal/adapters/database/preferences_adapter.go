package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	mongoclient "github.com/placewise/backend/internal/infrastructure/clients/mongo"
	apperrors "github.com/placewise/backend/pkg/errors"
)

const preferencesCollection = "preferences"

// PreferencesAdapter implements the PreferencesRepository interface on MongoDB
type PreferencesAdapter struct {
	coll *mongo.Collection
}

// NewPreferencesAdapter creates a new preferences adapter
func NewPreferencesAdapter(client *mongoclient.Client) repositories.PreferencesRepository {
	return &PreferencesAdapter{
		coll: client.Collection(preferencesCollection),
	}
}

// GetByUserID retrieves a user's preferences
func (a *PreferencesAdapter) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*entities.Preferences, error) {
	prefs := &entities.Preferences{}
	err := a.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(prefs)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("preferences for user %s not found", userID.Hex()))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get preferences", err)
	}
	return prefs, nil
}

// Upsert creates or replaces a user's preferences. The document id is
// preserved on replace so there is never more than one per user.
func (a *PreferencesAdapter) Upsert(ctx context.Context, prefs *entities.Preferences) error {
	update := bson.M{
		"$set": bson.M{
			"preferredTags":       prefs.PreferredTags,
			"preferredCities":     prefs.PreferredCities,
			"preferredCategories": prefs.PreferredCategories,
			"minRating":           prefs.MinRating,
			"priceRange":          prefs.PriceRange,
		},
		"$setOnInsert": bson.M{
			"userId": prefs.UserID,
		},
	}
	opts := options.Update().SetUpsert(true)

	result, err := a.coll.UpdateOne(ctx, bson.M{"userId": prefs.UserID}, update, opts)
	if err != nil {
		return apperrors.NewInternalError("failed to upsert preferences", err)
	}
	if result.UpsertedID != nil {
		if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
			prefs.ID = id
		}
	}
	return nil
}
