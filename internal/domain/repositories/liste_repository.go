package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
)

// ListeRepository defines the interface for curated list data operations
type ListeRepository interface {
	// Create creates a new list
	Create(ctx context.Context, liste *entities.Liste) error

	// GetByID retrieves a list by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Liste, error)

	// GetAll retrieves all lists
	GetAll(ctx context.Context) ([]*entities.Liste, error)

	// GetByName retrieves a list by its name, case-insensitively
	GetByName(ctx context.Context, name string) (*entities.Liste, error)

	// GetByOwnerID retrieves the lists created by a user
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*entities.Liste, error)

	// GetPublic retrieves all public lists
	GetPublic(ctx context.Context) ([]*entities.Liste, error)

	// Update replaces a list document
	Update(ctx context.Context, liste *entities.Liste) error

	// SetPrivate flips the visibility flag of a list
	SetPrivate(ctx context.Context, id primitive.ObjectID, private bool) error

	// AddPlace adds a place id to a list's place-id set (no duplicates)
	AddPlace(ctx context.Context, listeID, placeID primitive.ObjectID) error

	// RemovePlace removes a place id from a list's place-id set
	RemovePlace(ctx context.Context, listeID, placeID primitive.ObjectID) error

	// RemovePlaceFromAll removes a place id from every list's place-id set
	RemovePlaceFromAll(ctx context.Context, placeID primitive.ObjectID) error

	// DeleteByOwnerID deletes every list owned by a user
	DeleteByOwnerID(ctx context.Context, ownerID primitive.ObjectID) error

	// Delete deletes a list
	Delete(ctx context.Context, id primitive.ObjectID) error
}
