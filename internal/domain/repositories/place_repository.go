package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
)

// PlaceRepository defines the interface for place data operations
type PlaceRepository interface {
	// Create creates a new place
	Create(ctx context.Context, place *entities.Place) error

	// GetByID retrieves a place by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Place, error)

	// GetAll retrieves the full place catalog
	GetAll(ctx context.Context) ([]*entities.Place, error)

	// GetByCategory retrieves places with the given category (exact match)
	GetByCategory(ctx context.Context, category string) ([]*entities.Place, error)

	// GetByName retrieves places whose name contains the given fragment
	GetByName(ctx context.Context, name string) ([]*entities.Place, error)

	// GetByTag retrieves places carrying the given tag
	GetByTag(ctx context.Context, tag string) ([]*entities.Place, error)

	// Update replaces a place document
	Update(ctx context.Context, place *entities.Place) error

	// UpdateRatingStats persists the derived rating fields on a place
	UpdateRatingStats(ctx context.Context, id primitive.ObjectID, averageRating float64, reviewCount int) error

	// RemoveTagFromAll removes the given tag label from every place's tag set
	RemoveTagFromAll(ctx context.Context, label string) error

	// Delete deletes a place
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SearchCriteria defines the optional, AND-combined predicates for catalog
// search. Zero values make the corresponding predicate vacuously true.
type SearchCriteria struct {
	Name      string
	Category  string
	City      string
	Tag       string
	MinRating *float64
}
