package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/api/middleware"
	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	"github.com/placewise/backend/pkg/config"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// In-memory repository fakes for the handler tests. Each fake embeds the
// repository interface and only implements the methods the handlers under
// test actually reach; calling anything else panics.

type fakePlaceRepo struct {
	repositories.PlaceRepository
	places []*entities.Place
}

func (r *fakePlaceRepo) Create(_ context.Context, place *entities.Place) error {
	if place.ID.IsZero() {
		place.ID = primitive.NewObjectID()
	}
	r.places = append(r.places, place)
	return nil
}

func (r *fakePlaceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Place, error) {
	for _, place := range r.places {
		if place.ID == id {
			return place, nil
		}
	}
	return nil, apperrors.NewNotFoundError("place not found")
}

func (r *fakePlaceRepo) GetAll(_ context.Context) ([]*entities.Place, error) {
	return r.places, nil
}

func (r *fakePlaceRepo) UpdateRatingStats(_ context.Context, id primitive.ObjectID, averageRating float64, reviewCount int) error {
	for _, place := range r.places {
		if place.ID == id {
			place.AverageRating = averageRating
			place.ReviewCount = reviewCount
			return nil
		}
	}
	return apperrors.NewNotFoundError("place not found")
}

type fakeTagRepo struct {
	repositories.TagRepository
	tags []*entities.Tag
}

func (r *fakeTagRepo) Create(_ context.Context, tag *entities.Tag) error {
	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}
	r.tags = append(r.tags, tag)
	return nil
}

func (r *fakeTagRepo) GetByLibelle(_ context.Context, libelle string) (*entities.Tag, error) {
	for _, tag := range r.tags {
		if tag.Libelle == libelle {
			return tag, nil
		}
	}
	return nil, apperrors.NewNotFoundError("tag not found")
}

type fakeListeRepo struct {
	repositories.ListeRepository
	listes []*entities.Liste
}

func (r *fakeListeRepo) Create(_ context.Context, liste *entities.Liste) error {
	if liste.ID.IsZero() {
		liste.ID = primitive.NewObjectID()
	}
	r.listes = append(r.listes, liste)
	return nil
}

func (r *fakeListeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Liste, error) {
	for _, liste := range r.listes {
		if liste.ID == id {
			return liste, nil
		}
	}
	return nil, apperrors.NewNotFoundError("liste not found")
}

func (r *fakeListeRepo) GetByName(_ context.Context, name string) (*entities.Liste, error) {
	for _, liste := range r.listes {
		if liste.Name == name {
			return liste, nil
		}
	}
	return nil, apperrors.NewNotFoundError("liste not found")
}

func (r *fakeListeRepo) GetPublic(_ context.Context) ([]*entities.Liste, error) {
	out := []*entities.Liste{}
	for _, liste := range r.listes {
		if !liste.IsPrivate {
			out = append(out, liste)
		}
	}
	return out, nil
}

func (r *fakeListeRepo) GetByOwnerID(_ context.Context, ownerID primitive.ObjectID) ([]*entities.Liste, error) {
	out := []*entities.Liste{}
	for _, liste := range r.listes {
		if liste.OwnerID == ownerID {
			out = append(out, liste)
		}
	}
	return out, nil
}

func (r *fakeListeRepo) Update(_ context.Context, liste *entities.Liste) error {
	for i, stored := range r.listes {
		if stored.ID == liste.ID {
			r.listes[i] = liste
			return nil
		}
	}
	return apperrors.NewNotFoundError("liste not found")
}

type fakeReviewRepo struct {
	repositories.ReviewRepository
	reviews []*entities.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entities.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Review, error) {
	for _, review := range r.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, apperrors.NewNotFoundError("review not found")
}

func (r *fakeReviewRepo) GetByPlaceID(_ context.Context, placeID primitive.ObjectID) ([]*entities.Review, error) {
	out := []*entities.Review{}
	for _, review := range r.reviews {
		if review.PlaceID == placeID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, review := range r.reviews {
		if review.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("review not found")
}

type fakeReportRepo struct {
	repositories.ReportRepository
}

func (r *fakeReportRepo) DeleteByReviewID(_ context.Context, _ primitive.ObjectID) error {
	return nil
}

type fakeUserRepo struct {
	repositories.UserRepository
	users []*entities.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	for _, stored := range r.users {
		if stored.Username == user.Username {
			return apperrors.NewConflictError("username taken")
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

// newTestAuthenticator builds an authenticator with a throwaway secret
func newTestAuthenticator() *middleware.Authenticator {
	return middleware.NewAuthenticator(&config.JWTConfig{
		Secret:   "test-secret-not-for-production",
		Issuer:   "placewise-test",
		Audience: "placewise-test-api",
		TTL:      time.Hour,
	})
}

// withBearer issues a token for the user and sets the Authorization header
func withBearer(t *testing.T, a *middleware.Authenticator, user *entities.User, req *http.Request) *http.Request {
	t.Helper()
	token, err := a.IssueToken(user)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
