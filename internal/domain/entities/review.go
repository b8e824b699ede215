package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a rated comment a user leaves on a place. Note is bounded 1-5.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Comment   string             `json:"commentaire" bson:"commentaire"`
	Note      int                `json:"note" bson:"note"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	PlaceID   primitive.ObjectID `json:"placeId" bson:"placeId"`
}
