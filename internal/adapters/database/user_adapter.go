package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	mongoclient "github.com/placewise/backend/internal/infrastructure/clients/mongo"
	apperrors "github.com/placewise/backend/pkg/errors"
)

const usersCollection = "users"

// UserAdapter implements the UserRepository interface on MongoDB
type UserAdapter struct {
	coll *mongo.Collection
}

// NewUserAdapter creates a new user adapter and ensures the unique index on
// the username
func NewUserAdapter(ctx context.Context, client *mongoclient.Client) (repositories.UserRepository, error) {
	coll := client.Collection(usersCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create username index", err)
	}

	return &UserAdapter{coll: coll}, nil
}

// Create creates a new user; a duplicate username yields a Conflict error
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := a.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError(fmt.Sprintf("username %q is already taken", user.Username))
	}
	if err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	return a.findOne(ctx, bson.M{"_id": id}, fmt.Sprintf("user with id %s not found", id.Hex()))
}

// GetAll retrieves all users
func (a *UserAdapter) GetAll(ctx context.Context) ([]*entities.User, error) {
	return a.find(ctx, bson.M{})
}

// GetByUsername retrieves a user by username
func (a *UserAdapter) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return a.findOne(ctx, bson.M{"username": username}, fmt.Sprintf("user %q not found", username))
}

// GetByEmail retrieves a user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return a.findOne(ctx, bson.M{"email": email}, "no user with that email")
}

// GetByResetToken retrieves a user by password-reset token
func (a *UserAdapter) GetByResetToken(ctx context.Context, token string) (*entities.User, error) {
	return a.findOne(ctx, bson.M{"resetPasswordToken": token}, "invalid reset token")
}

// GetBanned retrieves the users whose ban is still in effect at now
func (a *UserAdapter) GetBanned(ctx context.Context, now time.Time) ([]*entities.User, error) {
	return a.find(ctx, bson.M{"dateFinBannissement": bson.M{"$gt": now}})
}

// Update applies a partial update to a user. Fields left nil in the update
// are untouched. A username collision yields a Conflict error.
func (a *UserAdapter) Update(ctx context.Context, id primitive.ObjectID, update repositories.UserUpdate) error {
	set := bson.M{}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		set["passwordHash"] = *update.PasswordHash
	}
	if update.Photo != nil {
		set["photo"] = *update.Photo
	}
	if update.IsAdmin != nil {
		set["isAdmin"] = *update.IsAdmin
	}
	if len(set) == 0 {
		return nil
	}

	result, err := a.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewConflictError("username is already taken")
	}
	if err != nil {
		return apperrors.NewInternalError("failed to update user", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id.Hex()))
	}
	return nil
}

// SetBanUntil sets (or clears, with nil) the ban-until timestamp
func (a *UserAdapter) SetBanUntil(ctx context.Context, id primitive.ObjectID, until *time.Time) error {
	var update bson.M
	if until == nil {
		update = bson.M{"$unset": bson.M{"dateFinBannissement": ""}}
	} else {
		update = bson.M{"$set": bson.M{"dateFinBannissement": *until}}
	}

	result, err := a.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperrors.NewInternalError("failed to set user ban", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id.Hex()))
	}
	return nil
}

// SetResetToken stores a password-reset token and its expiry
func (a *UserAdapter) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error {
	update := bson.M{"$set": bson.M{
		"resetPasswordToken":        token,
		"resetPasswordTokenExpires": expires,
	}}

	result, err := a.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperrors.NewInternalError("failed to set reset token", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id.Hex()))
	}
	return nil
}

// ResetPassword replaces the password hash and clears the reset token
func (a *UserAdapter) ResetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{
		"$set": bson.M{"passwordHash": passwordHash},
		"$unset": bson.M{
			"resetPasswordToken":        "",
			"resetPasswordTokenExpires": "",
		},
	}

	result, err := a.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperrors.NewInternalError("failed to reset password", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id.Hex()))
	}
	return nil
}

// CountSince counts users created at or after the given instant
func (a *UserAdapter) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return a.count(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
}

// Count returns the total number of users
func (a *UserAdapter) Count(ctx context.Context) (int64, error) {
	return a.count(ctx, bson.M{})
}

// CountBanned counts users whose ban is still in effect at now
func (a *UserAdapter) CountBanned(ctx context.Context, now time.Time) (int64, error) {
	return a.count(ctx, bson.M{"dateFinBannissement": bson.M{"$gt": now}})
}

// Delete deletes a user
func (a *UserAdapter) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := a.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewInternalError("failed to delete user", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", id.Hex()))
	}
	return nil
}

func (a *UserAdapter) findOne(ctx context.Context, filter bson.M, notFoundMsg string) (*entities.User, error) {
	user := &entities.User{}
	err := a.coll.FindOne(ctx, filter).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	return user, nil
}

func (a *UserAdapter) find(ctx context.Context, filter bson.M) ([]*entities.User, error) {
	cursor, err := a.coll.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	defer cursor.Close(ctx)

	users := []*entities.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperrors.NewInternalError("failed to decode users", err)
	}
	return users, nil
}

func (a *UserAdapter) count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := a.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to count users", err)
	}
	return count, nil
}
