package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	apperrors "github.com/placewise/backend/pkg/errors"
)

func newUserService(repo *stubUserRepo, listes *stubListeRepo, email *stubEmailSender) *UserService {
	if email == nil {
		return NewUserService(repo, listes, nil, nil, "http://localhost:8080")
	}
	return NewUserService(repo, listes, email, nil, "http://localhost:8080")
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserService(repo, &stubListeRepo{}, nil)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	authed, err := svc.Authenticate(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = svc.Authenticate(context.Background(), "alice", "wrong")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserService(repo, &stubListeRepo{}, nil)

	_, err := svc.Register(context.Background(), "bob", "bob@example.com", "password1")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "bob", "other@example.com", "password2")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestRegister_Validation(t *testing.T) {
	svc := newUserService(&stubUserRepo{}, &stubListeRepo{}, nil)

	_, err := svc.Register(context.Background(), "", "a@b.c", "password1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, err = svc.Register(context.Background(), "x", "not-an-email", "password1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, err = svc.Register(context.Background(), "x", "a@b.c", "short")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestAuthenticate_BannedUserIsRejected(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newUserService(repo, &stubListeRepo{}, nil)

	user, err := svc.Register(context.Background(), "carol", "carol@example.com", "password1")
	require.NoError(t, err)
	require.NoError(t, svc.Ban(context.Background(), user.ID, time.Now().Add(48*time.Hour)))

	_, err = svc.Authenticate(context.Background(), "carol", "password1")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	assert.Contains(t, err.Error(), "banned")

	require.NoError(t, svc.Unban(context.Background(), user.ID))
	_, err = svc.Authenticate(context.Background(), "carol", "password1")
	assert.NoError(t, err)
}

func TestBan_RejectsPastDate(t *testing.T) {
	repo := &stubUserRepo{users: []*entities.User{{ID: primitive.NewObjectID(), Username: "d"}}}
	svc := newUserService(repo, &stubListeRepo{}, nil)

	err := svc.Ban(context.Background(), repo.users[0].ID, time.Now().Add(-time.Hour))

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestUserDelete_CascadesOwnedLists(t *testing.T) {
	userID := primitive.NewObjectID()
	otherOwner := primitive.NewObjectID()
	listeRepo := &stubListeRepo{listes: []*entities.Liste{
		{ID: primitive.NewObjectID(), Name: "mine", OwnerID: userID},
		{ID: primitive.NewObjectID(), Name: "theirs", OwnerID: otherOwner},
	}}
	repo := &stubUserRepo{users: []*entities.User{{ID: userID, Username: "gone"}}}
	svc := newUserService(repo, listeRepo, nil)

	err := svc.Delete(context.Background(), userID)

	require.NoError(t, err)
	assert.Empty(t, repo.users)
	require.Len(t, listeRepo.listes, 1)
	assert.Equal(t, otherOwner, listeRepo.listes[0].OwnerID)
}

func TestPasswordResetFlow(t *testing.T) {
	repo := &stubUserRepo{}
	email := &stubEmailSender{}
	svc := newUserService(repo, &stubListeRepo{}, email)

	user, err := svc.Register(context.Background(), "eve", "eve@example.com", "password1")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "eve@example.com"))
	require.Len(t, email.sent, 1)
	assert.True(t, strings.HasPrefix(email.sent[0], "eve@example.com"))
	require.NotEmpty(t, user.ResetToken)

	require.NoError(t, svc.ResetPassword(context.Background(), user.ResetToken, "new-password"))
	assert.Empty(t, user.ResetToken)

	_, err = svc.Authenticate(context.Background(), "eve", "new-password")
	assert.NoError(t, err)
}

func TestResetPassword_ExpiredTokenRejected(t *testing.T) {
	expired := time.Now().UTC().Add(-time.Minute)
	repo := &stubUserRepo{users: []*entities.User{{
		ID: primitive.NewObjectID(), Username: "f", Email: "f@x.y",
		ResetToken: "tok", ResetTokenExpires: &expired,
	}}}
	svc := newUserService(repo, &stubListeRepo{}, nil)

	err := svc.ResetPassword(context.Background(), "tok", "new-password")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestRequestPasswordReset_NoSenderConfigured(t *testing.T) {
	svc := NewUserService(&stubUserRepo{}, &stubListeRepo{}, nil, nil, "")

	err := svc.RequestPasswordReset(context.Background(), "a@b.c")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
}
