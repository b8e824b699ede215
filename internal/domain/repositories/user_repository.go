package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
)

// UserUpdate carries the optional fields of a partial user update. Nil
// fields are left untouched.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Photo        *string
	IsAdmin      *bool
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error)

	// GetAll retrieves all users
	GetAll(ctx context.Context) ([]*entities.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*entities.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// GetByResetToken retrieves a user by password-reset token
	GetByResetToken(ctx context.Context, token string) (*entities.User, error)

	// GetBanned retrieves the users whose ban is still in effect at now
	GetBanned(ctx context.Context, now time.Time) ([]*entities.User, error)

	// Update applies a partial update; it reports NotFound when the id does
	// not resolve
	Update(ctx context.Context, id primitive.ObjectID, update UserUpdate) error

	// SetBanUntil sets (or clears, with nil) the ban-until timestamp
	SetBanUntil(ctx context.Context, id primitive.ObjectID, until *time.Time) error

	// SetResetToken stores a password-reset token and its expiry
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error

	// ResetPassword replaces the password hash and clears the reset token
	ResetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error

	// CountSince counts users created at or after the given instant
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)

	// CountBanned counts users whose ban is still in effect at now
	CountBanned(ctx context.Context, now time.Time) (int64, error)

	// Delete deletes a user
	Delete(ctx context.Context, id primitive.ObjectID) error
}
