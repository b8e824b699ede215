package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is a moderation flag a user raises against a review.
type Report struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReviewID       primitive.ObjectID `json:"reviewId" bson:"reviewId"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId"`
	ReportedUserID primitive.ObjectID `json:"reportedUserId" bson:"reportedUserId"`
	Reason         string             `json:"reason" bson:"reason"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}
