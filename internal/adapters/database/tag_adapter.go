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

const tagsCollection = "tags"

// TagAdapter implements the TagRepository interface on MongoDB
type TagAdapter struct {
	coll *mongo.Collection
}

// NewTagAdapter creates a new tag adapter and ensures the unique index on
// the tag label
func NewTagAdapter(ctx context.Context, client *mongoclient.Client) (repositories.TagRepository, error) {
	coll := client.Collection(tagsCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "libelle", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create tag label index", err)
	}

	return &TagAdapter{coll: coll}, nil
}

// Create creates a new tag; a duplicate label yields a Conflict error
func (a *TagAdapter) Create(ctx context.Context, tag *entities.Tag) error {
	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}

	_, err := a.coll.InsertOne(ctx, tag)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError(fmt.Sprintf("a tag labelled %q already exists", tag.Libelle))
	}
	if err != nil {
		return apperrors.NewInternalError("failed to create tag", err)
	}
	return nil
}

// GetByID retrieves a tag by ID
func (a *TagAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Tag, error) {
	tag := &entities.Tag{}
	err := a.coll.FindOne(ctx, bson.M{"_id": id}).Decode(tag)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("tag with id %s not found", id.Hex()))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get tag", err)
	}
	return tag, nil
}

// GetAll retrieves all tags
func (a *TagAdapter) GetAll(ctx context.Context) ([]*entities.Tag, error) {
	cursor, err := a.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list tags", err)
	}
	defer cursor.Close(ctx)

	tags := []*entities.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, apperrors.NewInternalError("failed to decode tags", err)
	}
	return tags, nil
}

// GetByLibelle retrieves a tag by its label
func (a *TagAdapter) GetByLibelle(ctx context.Context, libelle string) (*entities.Tag, error) {
	tag := &entities.Tag{}
	err := a.coll.FindOne(ctx, bson.M{"libelle": libelle}).Decode(tag)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("tag labelled %q not found", libelle))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get tag by label", err)
	}
	return tag, nil
}

// Update replaces a tag document; a label collision yields a Conflict error
func (a *TagAdapter) Update(ctx context.Context, tag *entities.Tag) error {
	result, err := a.coll.ReplaceOne(ctx, bson.M{"_id": tag.ID}, tag)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError(fmt.Sprintf("a tag labelled %q already exists", tag.Libelle))
	}
	if err != nil {
		return apperrors.NewInternalError("failed to update tag", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("tag with id %s not found", tag.ID.Hex()))
	}
	return nil
}

// Delete deletes a tag
func (a *TagAdapter) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := a.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewInternalError("failed to delete tag", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("tag with id %s not found", id.Hex()))
	}
	return nil
}
