package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/providers"
	"github.com/placewise/backend/internal/domain/repositories"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// resetTokenTTL is how long a password-reset link stays valid.
const resetTokenTTL = time.Hour

// UserUpdateInput carries the optional fields of a partial user update. A
// nil field leaves the stored value untouched.
type UserUpdateInput struct {
	Username *string
	Email    *string
	Password *string
	IsAdmin  *bool
}

// UserService handles accounts: registration, credentials, moderation and
// the password-reset flow.
type UserService struct {
	repo      repositories.UserRepository
	listeRepo repositories.ListeRepository
	email     providers.EmailSender
	images    providers.ImageStore
	baseURL   string
}

// NewUserService creates a new user service. email may be nil when no SMTP
// relay is configured; password-reset requests then fail with an external
// error instead of silently dropping mail.
func NewUserService(repo repositories.UserRepository, listeRepo repositories.ListeRepository, email providers.EmailSender, images providers.ImageStore, baseURL string) *UserService {
	return &UserService{
		repo:      repo,
		listeRepo: listeRepo,
		email:     email,
		images:    images,
		baseURL:   baseURL,
	}
}

// Register validates and creates a new account. The username must be unique;
// the password is stored as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*entities.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperrors.NewValidationError("username is required")
	}
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("a valid email is required")
	}
	if len(password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks a username/password pair. Wrong credentials and a ban
// in effect both come back as Unauthorized.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if user.Banned(time.Now().UTC()) {
		return nil, apperrors.NewUnauthorizedError(fmt.Sprintf("account banned until %s", user.BanUntil.Format(time.RFC3339)))
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves all users
func (s *UserService) GetAll(ctx context.Context) ([]*entities.User, error) {
	return s.repo.GetAll(ctx)
}

// GetBanned retrieves the users whose ban is currently in effect
func (s *UserService) GetBanned(ctx context.Context) ([]*entities.User, error) {
	return s.repo.GetBanned(ctx, time.Now().UTC())
}

// Update applies a partial update to an account. A new password is re-hashed
// before storage.
func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, input UserUpdateInput) (*entities.User, error) {
	update := repositories.UserUpdate{
		Username: input.Username,
		Email:    input.Email,
		IsAdmin:  input.IsAdmin,
	}

	if input.Username != nil && strings.TrimSpace(*input.Username) == "" {
		return nil, apperrors.NewValidationError("username must not be blank")
	}
	if input.Email != nil && !strings.Contains(*input.Email, "@") {
		return nil, apperrors.NewValidationError("a valid email is required")
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, apperrors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to hash password", err)
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// UpdatePhoto stores a profile image and records its public URL on the user
func (s *UserService) UpdatePhoto(ctx context.Context, id primitive.ObjectID, filename string, content io.Reader) (string, error) {
	if s.images == nil {
		return "", apperrors.NewExternalError("image storage is not configured", nil)
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	url, err := s.images.Save(ctx, filename, content)
	if err != nil {
		return "", apperrors.NewExternalError("failed to store profile photo", err)
	}

	if err := s.repo.Update(ctx, id, repositories.UserUpdate{Photo: &url}); err != nil {
		return "", err
	}
	return url, nil
}

// Ban bans a user until the given instant
func (s *UserService) Ban(ctx context.Context, id primitive.ObjectID, until time.Time) error {
	if !until.After(time.Now().UTC()) {
		return apperrors.NewValidationError("ban end date must be in the future")
	}
	return s.repo.SetBanUntil(ctx, id, &until)
}

// Unban lifts a user's ban
func (s *UserService) Unban(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.SetBanUntil(ctx, id, nil)
}

// RequestPasswordReset stores a fresh single-use token and mails the reset
// link. An unknown email is reported as NotFound to the caller; whether the
// HTTP layer discloses that is its own concern.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	if s.email == nil {
		return apperrors.NewExternalError("email delivery is not configured", nil)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	expires := time.Now().UTC().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.baseURL, "/"), token)
	body := fmt.Sprintf("Hello %s,\n\nA password reset was requested for your account. Follow this link within one hour to choose a new password:\n\n%s\n\nIf you did not ask for this, ignore this message.\n", user.Username, link)

	if err := s.email.Send(ctx, user.Email, "Password reset", body); err != nil {
		return apperrors.NewExternalError("failed to send reset email", err)
	}
	return nil
}

// ResetPassword consumes a reset token and installs the new password
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}

	user, err := s.repo.GetByResetToken(ctx, token)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return apperrors.NewValidationError("invalid or expired reset token")
		}
		return err
	}
	if user.ResetTokenExpires == nil || user.ResetTokenExpires.Before(time.Now().UTC()) {
		return apperrors.NewValidationError("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.NewInternalError("failed to hash password", err)
	}

	return s.repo.ResetPassword(ctx, user.ID, string(hash))
}

// Delete removes an account together with every list it owns
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.listeRepo.DeleteByOwnerID(ctx, id); err != nil {
		// The account is gone either way; orphaned lists are logged, not fatal.
		log.Printf("Warning: failed to delete lists for user %s: %v", id.Hex(), err)
	}
	return nil
}
