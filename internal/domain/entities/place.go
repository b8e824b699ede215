package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Place represents a point of interest (restaurant, hotel, tourist site...)
// in the catalog.
//
// AverageRating and ReviewCount are derived from the place's review set and
// are only ever written by the review service; clients cannot set them.
type Place struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Category      string             `json:"category" bson:"category"`
	Description   string             `json:"description" bson:"description"`
	Address       string             `json:"address" bson:"address"`
	City          string             `json:"city" bson:"city"`
	Latitude      float64            `json:"latitude" bson:"latitude"`
	Longitude     float64            `json:"longitude" bson:"longitude"`
	PhoneNumber   string             `json:"phoneNumber" bson:"phoneNumber"`
	OpeningHours  map[string]string  `json:"openingHours" bson:"openingHours"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	ReviewCount   int                `json:"reviewCount" bson:"reviewCount"`
	Tags          []string           `json:"tags" bson:"tags"`
	Images        []string           `json:"images" bson:"images"`
}
