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

const listesCollection = "listes"

// caseInsensitive compares strings ignoring case and (most) diacritics,
// matching the unique index on listes.nom.
var caseInsensitive = options.Collation{Locale: "fr", Strength: 2}

// ListeAdapter implements the ListeRepository interface on MongoDB
type ListeAdapter struct {
	coll *mongo.Collection
}

// NewListeAdapter creates a new list adapter and ensures the
// case-insensitive unique index on the list name
func NewListeAdapter(ctx context.Context, client *mongoclient.Client) (repositories.ListeRepository, error) {
	coll := client.Collection(listesCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "nom", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&caseInsensitive),
	})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create liste name index", err)
	}

	return &ListeAdapter{coll: coll}, nil
}

// Create creates a new list; a duplicate name yields a Conflict error
func (a *ListeAdapter) Create(ctx context.Context, liste *entities.Liste) error {
	if liste.ID.IsZero() {
		liste.ID = primitive.NewObjectID()
	}

	_, err := a.coll.InsertOne(ctx, liste)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError(fmt.Sprintf("a list named %q already exists", liste.Name))
	}
	if err != nil {
		return apperrors.NewInternalError("failed to create liste", err)
	}
	return nil
}

// GetByID retrieves a list by ID
func (a *ListeAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Liste, error) {
	liste := &entities.Liste{}
	err := a.coll.FindOne(ctx, bson.M{"_id": id}).Decode(liste)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("liste with id %s not found", id.Hex()))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get liste", err)
	}
	return liste, nil
}

// GetAll retrieves all lists
func (a *ListeAdapter) GetAll(ctx context.Context) ([]*entities.Liste, error) {
	return a.find(ctx, bson.M{})
}

// GetByName retrieves a list by its name, case-insensitively
func (a *ListeAdapter) GetByName(ctx context.Context, name string) (*entities.Liste, error) {
	liste := &entities.Liste{}
	opts := options.FindOne().SetCollation(&caseInsensitive)
	err := a.coll.FindOne(ctx, bson.M{"nom": name}, opts).Decode(liste)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("liste named %q not found", name))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get liste by name", err)
	}
	return liste, nil
}

// GetByOwnerID retrieves the lists created by a user
func (a *ListeAdapter) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*entities.Liste, error) {
	return a.find(ctx, bson.M{"createurId": ownerID})
}

// GetPublic retrieves all public lists
func (a *ListeAdapter) GetPublic(ctx context.Context) ([]*entities.Liste, error) {
	return a.find(ctx, bson.M{"isPrivate": false})
}

// Update replaces a list document; a name collision yields a Conflict error
func (a *ListeAdapter) Update(ctx context.Context, liste *entities.Liste) error {
	result, err := a.coll.ReplaceOne(ctx, bson.M{"_id": liste.ID}, liste)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError(fmt.Sprintf("a list named %q already exists", liste.Name))
	}
	if err != nil {
		return apperrors.NewInternalError("failed to update liste", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("liste with id %s not found", liste.ID.Hex()))
	}
	return nil
}

// SetPrivate flips the visibility flag of a list
func (a *ListeAdapter) SetPrivate(ctx context.Context, id primitive.ObjectID, private bool) error {
	result, err := a.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isPrivate": private}})
	if err != nil {
		return apperrors.NewInternalError("failed to set liste visibility", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("liste with id %s not found", id.Hex()))
	}
	return nil
}

// AddPlace adds a place id to a list's place-id set
func (a *ListeAdapter) AddPlace(ctx context.Context, listeID, placeID primitive.ObjectID) error {
	update := bson.M{"$addToSet": bson.M{"lieuxIds": placeID}}
	result, err := a.coll.UpdateOne(ctx, bson.M{"_id": listeID}, update)
	if err != nil {
		return apperrors.NewInternalError("failed to add place to liste", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("liste with id %s not found", listeID.Hex()))
	}
	return nil
}

// RemovePlace removes a place id from a list's place-id set
func (a *ListeAdapter) RemovePlace(ctx context.Context, listeID, placeID primitive.ObjectID) error {
	update := bson.M{"$pull": bson.M{"lieuxIds": placeID}}
	result, err := a.coll.UpdateOne(ctx, bson.M{"_id": listeID}, update)
	if err != nil {
		return apperrors.NewInternalError("failed to remove place from liste", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("liste with id %s not found", listeID.Hex()))
	}
	return nil
}

// RemovePlaceFromAll removes a place id from every list's place-id set
func (a *ListeAdapter) RemovePlaceFromAll(ctx context.Context, placeID primitive.ObjectID) error {
	update := bson.M{"$pull": bson.M{"lieuxIds": placeID}}
	if _, err := a.coll.UpdateMany(ctx, bson.M{}, update); err != nil {
		return apperrors.NewInternalError("failed to remove place from listes", err)
	}
	return nil
}

// DeleteByOwnerID deletes every list owned by a user
func (a *ListeAdapter) DeleteByOwnerID(ctx context.Context, ownerID primitive.ObjectID) error {
	if _, err := a.coll.DeleteMany(ctx, bson.M{"createurId": ownerID}); err != nil {
		return apperrors.NewInternalError("failed to delete listes for owner", err)
	}
	return nil
}

// Delete deletes a list
func (a *ListeAdapter) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := a.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewInternalError("failed to delete liste", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("liste with id %s not found", id.Hex()))
	}
	return nil
}

func (a *ListeAdapter) find(ctx context.Context, filter bson.M) ([]*entities.Liste, error) {
	cursor, err := a.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list listes", err)
	}
	defer cursor.Close(ctx)

	listes := []*entities.Liste{}
	if err := cursor.All(ctx, &listes); err != nil {
		return nil, apperrors.NewInternalError("failed to decode listes", err)
	}
	return listes, nil
}
