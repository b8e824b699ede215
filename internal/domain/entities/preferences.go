package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Preferences holds one user's stored recommendation criteria. There is at
// most one document per user (upsert semantics).
type Preferences struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID              primitive.ObjectID `json:"userId" bson:"userId"`
	PreferredTags       []string           `json:"preferredTags" bson:"preferredTags"`
	PreferredCities     []string           `json:"preferredCities" bson:"preferredCities"`
	PreferredCategories []string           `json:"preferredCategories" bson:"preferredCategories"`
	MinRating           float64            `json:"minRating" bson:"minRating"`
	PriceRange          string             `json:"priceRange" bson:"priceRange"`
}
