package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	// Create creates a new tag; a duplicate label yields a Conflict error
	Create(ctx context.Context, tag *entities.Tag) error

	// GetByID retrieves a tag by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Tag, error)

	// GetAll retrieves all tags
	GetAll(ctx context.Context) ([]*entities.Tag, error)

	// GetByLibelle retrieves a tag by its label
	GetByLibelle(ctx context.Context, libelle string) (*entities.Tag, error)

	// Update replaces a tag document
	Update(ctx context.Context, tag *entities.Tag) error

	// Delete deletes a tag
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PreferencesRepository defines the interface for per-user preferences
type PreferencesRepository interface {
	// GetByUserID retrieves a user's preferences, or a NotFound error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*entities.Preferences, error)

	// Upsert creates or replaces a user's preferences, keeping the existing
	// document id on replace
	Upsert(ctx context.Context, prefs *entities.Preferences) error
}
