package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system. PasswordHash is a bcrypt hash
// and is never serialized in responses.
type User struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username          string             `json:"username" bson:"username"`
	Email             string             `json:"email" bson:"email"`
	PasswordHash      string             `json:"-" bson:"passwordHash"`
	Photo             string             `json:"photo,omitempty" bson:"photo,omitempty"`
	IsAdmin           bool               `json:"isAdmin" bson:"isAdmin"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	BanUntil          *time.Time         `json:"dateFinBannissement,omitempty" bson:"dateFinBannissement,omitempty"`
	ResetToken        string             `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetTokenExpires *time.Time         `json:"-" bson:"resetPasswordTokenExpires,omitempty"`
}

// Banned reports whether the user is currently banned at the given instant.
func (u *User) Banned(now time.Time) bool {
	return u.BanUntil != nil && u.BanUntil.After(now)
}
