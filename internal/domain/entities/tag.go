package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is a uniquely-labeled classification attached to places. Uniqueness of
// the label is enforced by a unique index on the tags collection.
type Tag struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Libelle string             `json:"libelle" bson:"libelle"`
}
