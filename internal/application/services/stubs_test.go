package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// In-memory repository stubs shared by the service tests.

type stubPlaceRepo struct {
	places []*entities.Place
}

func (r *stubPlaceRepo) Create(_ context.Context, place *entities.Place) error {
	if place.ID.IsZero() {
		place.ID = primitive.NewObjectID()
	}
	r.places = append(r.places, place)
	return nil
}

func (r *stubPlaceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Place, error) {
	for _, place := range r.places {
		if place.ID == id {
			return place, nil
		}
	}
	return nil, apperrors.NewNotFoundError("place not found")
}

func (r *stubPlaceRepo) GetAll(_ context.Context) ([]*entities.Place, error) {
	return r.places, nil
}

func (r *stubPlaceRepo) GetByCategory(_ context.Context, category string) ([]*entities.Place, error) {
	out := []*entities.Place{}
	for _, place := range r.places {
		if place.Category == category {
			out = append(out, place)
		}
	}
	return out, nil
}

func (r *stubPlaceRepo) GetByName(_ context.Context, name string) ([]*entities.Place, error) {
	out := []*entities.Place{}
	for _, place := range r.places {
		if strings.Contains(strings.ToLower(place.Name), strings.ToLower(name)) {
			out = append(out, place)
		}
	}
	return out, nil
}

func (r *stubPlaceRepo) GetByTag(_ context.Context, tag string) ([]*entities.Place, error) {
	out := []*entities.Place{}
	for _, place := range r.places {
		for _, t := range place.Tags {
			if t == tag {
				out = append(out, place)
				break
			}
		}
	}
	return out, nil
}

func (r *stubPlaceRepo) Update(_ context.Context, place *entities.Place) error {
	for i, stored := range r.places {
		if stored.ID == place.ID {
			r.places[i] = place
			return nil
		}
	}
	return apperrors.NewNotFoundError("place not found")
}

func (r *stubPlaceRepo) UpdateRatingStats(_ context.Context, id primitive.ObjectID, averageRating float64, reviewCount int) error {
	for _, place := range r.places {
		if place.ID == id {
			place.AverageRating = averageRating
			place.ReviewCount = reviewCount
			return nil
		}
	}
	return apperrors.NewNotFoundError("place not found")
}

func (r *stubPlaceRepo) RemoveTagFromAll(_ context.Context, label string) error {
	for _, place := range r.places {
		kept := place.Tags[:0]
		for _, tag := range place.Tags {
			if tag != label {
				kept = append(kept, tag)
			}
		}
		place.Tags = kept
	}
	return nil
}

func (r *stubPlaceRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, place := range r.places {
		if place.ID == id {
			r.places = append(r.places[:i], r.places[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("place not found")
}

type stubReviewRepo struct {
	reviews []*entities.Review
}

func (r *stubReviewRepo) Create(_ context.Context, review *entities.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *stubReviewRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Review, error) {
	for _, review := range r.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, apperrors.NewNotFoundError("review not found")
}

func (r *stubReviewRepo) GetAll(_ context.Context) ([]*entities.Review, error) {
	return r.reviews, nil
}

func (r *stubReviewRepo) GetByPlaceID(_ context.Context, placeID primitive.ObjectID) ([]*entities.Review, error) {
	out := []*entities.Review{}
	for _, review := range r.reviews {
		if review.PlaceID == placeID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]*entities.Review, error) {
	out := []*entities.Review{}
	for _, review := range r.reviews {
		if review.UserID == userID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) GetRecentByUserID(_ context.Context, userID primitive.ObjectID, minNote int, limit int) ([]*entities.Review, error) {
	out := []*entities.Review{}
	for _, review := range r.reviews {
		if review.UserID == userID && review.Note >= minNote {
			out = append(out, review)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubReviewRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.reviews)), nil
}

func (r *stubReviewRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	count := int64(0)
	for _, review := range r.reviews {
		if !review.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *entities.Review) error {
	for i, stored := range r.reviews {
		if stored.ID == review.ID {
			r.reviews[i] = review
			return nil
		}
	}
	return apperrors.NewNotFoundError("review not found")
}

func (r *stubReviewRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, review := range r.reviews {
		if review.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("review not found")
}

type stubReportRepo struct {
	reports []*entities.Report
}

func (r *stubReportRepo) Create(_ context.Context, report *entities.Report) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	r.reports = append(r.reports, report)
	return nil
}

func (r *stubReportRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Report, error) {
	for _, report := range r.reports {
		if report.ID == id {
			return report, nil
		}
	}
	return nil, apperrors.NewNotFoundError("report not found")
}

func (r *stubReportRepo) GetAll(_ context.Context) ([]*entities.Report, error) {
	return r.reports, nil
}

func (r *stubReportRepo) GetByReviewID(_ context.Context, reviewID primitive.ObjectID) ([]*entities.Report, error) {
	out := []*entities.Report{}
	for _, report := range r.reports {
		if report.ReviewID == reviewID {
			out = append(out, report)
		}
	}
	return out, nil
}

func (r *stubReportRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]*entities.Report, error) {
	out := []*entities.Report{}
	for _, report := range r.reports {
		if report.UserID == userID {
			out = append(out, report)
		}
	}
	return out, nil
}

func (r *stubReportRepo) GetByReportedUserID(_ context.Context, reportedUserID primitive.ObjectID) ([]*entities.Report, error) {
	out := []*entities.Report{}
	for _, report := range r.reports {
		if report.ReportedUserID == reportedUserID {
			out = append(out, report)
		}
	}
	return out, nil
}

func (r *stubReportRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.reports)), nil
}

func (r *stubReportRepo) DeleteByReviewID(_ context.Context, reviewID primitive.ObjectID) error {
	kept := r.reports[:0]
	for _, report := range r.reports {
		if report.ReviewID != reviewID {
			kept = append(kept, report)
		}
	}
	r.reports = kept
	return nil
}

type stubListeRepo struct {
	listes []*entities.Liste
}

func (r *stubListeRepo) Create(_ context.Context, liste *entities.Liste) error {
	if liste.ID.IsZero() {
		liste.ID = primitive.NewObjectID()
	}
	r.listes = append(r.listes, liste)
	return nil
}

func (r *stubListeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Liste, error) {
	for _, liste := range r.listes {
		if liste.ID == id {
			return liste, nil
		}
	}
	return nil, apperrors.NewNotFoundError("liste not found")
}

func (r *stubListeRepo) GetAll(_ context.Context) ([]*entities.Liste, error) {
	return r.listes, nil
}

func (r *stubListeRepo) GetByName(_ context.Context, name string) (*entities.Liste, error) {
	for _, liste := range r.listes {
		if strings.EqualFold(liste.Name, name) {
			return liste, nil
		}
	}
	return nil, apperrors.NewNotFoundError("liste not found")
}

func (r *stubListeRepo) GetByOwnerID(_ context.Context, ownerID primitive.ObjectID) ([]*entities.Liste, error) {
	out := []*entities.Liste{}
	for _, liste := range r.listes {
		if liste.OwnerID == ownerID {
			out = append(out, liste)
		}
	}
	return out, nil
}

func (r *stubListeRepo) GetPublic(_ context.Context) ([]*entities.Liste, error) {
	out := []*entities.Liste{}
	for _, liste := range r.listes {
		if !liste.IsPrivate {
			out = append(out, liste)
		}
	}
	return out, nil
}

func (r *stubListeRepo) Update(_ context.Context, liste *entities.Liste) error {
	for i, stored := range r.listes {
		if stored.ID == liste.ID {
			r.listes[i] = liste
			return nil
		}
	}
	return apperrors.NewNotFoundError("liste not found")
}

func (r *stubListeRepo) SetPrivate(_ context.Context, id primitive.ObjectID, private bool) error {
	for _, liste := range r.listes {
		if liste.ID == id {
			liste.IsPrivate = private
			return nil
		}
	}
	return apperrors.NewNotFoundError("liste not found")
}

func (r *stubListeRepo) AddPlace(_ context.Context, listeID, placeID primitive.ObjectID) error {
	for _, liste := range r.listes {
		if liste.ID != listeID {
			continue
		}
		for _, id := range liste.PlaceIDs {
			if id == placeID {
				return nil
			}
		}
		liste.PlaceIDs = append(liste.PlaceIDs, placeID)
		return nil
	}
	return apperrors.NewNotFoundError("liste not found")
}

func (r *stubListeRepo) RemovePlace(_ context.Context, listeID, placeID primitive.ObjectID) error {
	for _, liste := range r.listes {
		if liste.ID != listeID {
			continue
		}
		removePlaceID(liste, placeID)
		return nil
	}
	return apperrors.NewNotFoundError("liste not found")
}

func (r *stubListeRepo) RemovePlaceFromAll(_ context.Context, placeID primitive.ObjectID) error {
	for _, liste := range r.listes {
		removePlaceID(liste, placeID)
	}
	return nil
}

func (r *stubListeRepo) DeleteByOwnerID(_ context.Context, ownerID primitive.ObjectID) error {
	kept := r.listes[:0]
	for _, liste := range r.listes {
		if liste.OwnerID != ownerID {
			kept = append(kept, liste)
		}
	}
	r.listes = kept
	return nil
}

func (r *stubListeRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, liste := range r.listes {
		if liste.ID == id {
			r.listes = append(r.listes[:i], r.listes[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("liste not found")
}

func removePlaceID(liste *entities.Liste, placeID primitive.ObjectID) {
	kept := liste.PlaceIDs[:0]
	for _, id := range liste.PlaceIDs {
		if id != placeID {
			kept = append(kept, id)
		}
	}
	liste.PlaceIDs = kept
}

type stubTagRepo struct {
	tags []*entities.Tag
}

func (r *stubTagRepo) Create(_ context.Context, tag *entities.Tag) error {
	for _, stored := range r.tags {
		if stored.Libelle == tag.Libelle {
			return apperrors.NewConflictError("duplicate tag label")
		}
	}
	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}
	r.tags = append(r.tags, tag)
	return nil
}

func (r *stubTagRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Tag, error) {
	for _, tag := range r.tags {
		if tag.ID == id {
			return tag, nil
		}
	}
	return nil, apperrors.NewNotFoundError("tag not found")
}

func (r *stubTagRepo) GetAll(_ context.Context) ([]*entities.Tag, error) {
	return r.tags, nil
}

func (r *stubTagRepo) GetByLibelle(_ context.Context, libelle string) (*entities.Tag, error) {
	for _, tag := range r.tags {
		if tag.Libelle == libelle {
			return tag, nil
		}
	}
	return nil, apperrors.NewNotFoundError("tag not found")
}

func (r *stubTagRepo) Update(_ context.Context, tag *entities.Tag) error {
	for i, stored := range r.tags {
		if stored.ID == tag.ID {
			r.tags[i] = tag
			return nil
		}
	}
	return apperrors.NewNotFoundError("tag not found")
}

func (r *stubTagRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, tag := range r.tags {
		if tag.ID == id {
			r.tags = append(r.tags[:i], r.tags[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("tag not found")
}

type stubPrefsRepo struct {
	prefs map[primitive.ObjectID]*entities.Preferences
}

func newStubPrefsRepo() *stubPrefsRepo {
	return &stubPrefsRepo{prefs: map[primitive.ObjectID]*entities.Preferences{}}
}

func (r *stubPrefsRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) (*entities.Preferences, error) {
	if prefs, ok := r.prefs[userID]; ok {
		return prefs, nil
	}
	return nil, apperrors.NewNotFoundError("preferences not found")
}

func (r *stubPrefsRepo) Upsert(_ context.Context, prefs *entities.Preferences) error {
	if existing, ok := r.prefs[prefs.UserID]; ok {
		prefs.ID = existing.ID
	} else if prefs.ID.IsZero() {
		prefs.ID = primitive.NewObjectID()
	}
	r.prefs[prefs.UserID] = prefs
	return nil
}

type stubUserRepo struct {
	users []*entities.User
}

func (r *stubUserRepo) Create(_ context.Context, user *entities.User) error {
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

func (r *stubUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entities.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]*entities.User, error) {
	return r.users, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) GetByResetToken(_ context.Context, token string) (*entities.User, error) {
	for _, user := range r.users {
		if user.ResetToken == token && token != "" {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) GetBanned(_ context.Context, now time.Time) ([]*entities.User, error) {
	out := []*entities.User{}
	for _, user := range r.users {
		if user.Banned(now) {
			out = append(out, user)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id primitive.ObjectID, update repositories.UserUpdate) error {
	for _, user := range r.users {
		if user.ID != id {
			continue
		}
		if update.Username != nil {
			user.Username = *update.Username
		}
		if update.Email != nil {
			user.Email = *update.Email
		}
		if update.PasswordHash != nil {
			user.PasswordHash = *update.PasswordHash
		}
		if update.Photo != nil {
			user.Photo = *update.Photo
		}
		if update.IsAdmin != nil {
			user.IsAdmin = *update.IsAdmin
		}
		return nil
	}
	return apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) SetBanUntil(_ context.Context, id primitive.ObjectID, until *time.Time) error {
	for _, user := range r.users {
		if user.ID == id {
			user.BanUntil = until
			return nil
		}
	}
	return apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) SetResetToken(_ context.Context, id primitive.ObjectID, token string, expires time.Time) error {
	for _, user := range r.users {
		if user.ID == id {
			user.ResetToken = token
			user.ResetTokenExpires = &expires
			return nil
		}
	}
	return apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) ResetPassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	for _, user := range r.users {
		if user.ID == id {
			user.PasswordHash = passwordHash
			user.ResetToken = ""
			user.ResetTokenExpires = nil
			return nil
		}
	}
	return apperrors.NewNotFoundError("user not found")
}

func (r *stubUserRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	count := int64(0)
	for _, user := range r.users {
		if !user.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountBanned(_ context.Context, now time.Time) (int64, error) {
	count := int64(0)
	for _, user := range r.users {
		if user.Banned(now) {
			count++
		}
	}
	return count, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("user not found")
}

type stubEmailSender struct {
	sent []string
}

func (s *stubEmailSender) Send(_ context.Context, to, subject, body string) error {
	s.sent = append(s.sent, to+": "+subject)
	return nil
}
