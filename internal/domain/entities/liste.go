package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Liste is a user-curated, named collection of place references. The name is
// unique among all lists, case-insensitively.
type Liste struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"nom" bson:"nom"`
	Description string               `json:"description" bson:"description"`
	IsPrivate   bool                 `json:"isPrivate" bson:"isPrivate"`
	OwnerID     primitive.ObjectID   `json:"createurId" bson:"createurId"`
	PlaceIDs    []primitive.ObjectID `json:"lieuxIds" bson:"lieuxIds"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}
