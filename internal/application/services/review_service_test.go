package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	apperrors "github.com/placewise/backend/pkg/errors"
)

func TestReviewCreate_RecomputesPlaceStats(t *testing.T) {
	place := &entities.Place{ID: primitive.NewObjectID(), Name: "Chez Denise", Category: "restaurant"}
	placeRepo := &stubPlaceRepo{places: []*entities.Place{place}}
	reviewRepo := &stubReviewRepo{}
	svc := NewReviewService(reviewRepo, placeRepo, &stubReportRepo{})

	err := svc.Create(context.Background(), &entities.Review{
		PlaceID: place.ID, UserID: primitive.NewObjectID(), Note: 4, Comment: "tres bon",
	})
	require.NoError(t, err)
	err = svc.Create(context.Background(), &entities.Review{
		PlaceID: place.ID, UserID: primitive.NewObjectID(), Note: 2, Comment: "bof",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, place.ReviewCount)
	assert.InDelta(t, 3.0, place.AverageRating, 1e-9)
}

func TestReviewCreate_RejectsOutOfRangeNote(t *testing.T) {
	place := &entities.Place{ID: primitive.NewObjectID(), Name: "X", Category: "cafe"}
	svc := NewReviewService(&stubReviewRepo{}, &stubPlaceRepo{places: []*entities.Place{place}}, &stubReportRepo{})

	for _, note := range []int{0, 6, -1} {
		err := svc.Create(context.Background(), &entities.Review{PlaceID: place.ID, Note: note, Comment: "x"})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation), "note %d", note)
	}
}

func TestReviewCreate_UnknownPlace(t *testing.T) {
	svc := NewReviewService(&stubReviewRepo{}, &stubPlaceRepo{}, &stubReportRepo{})

	err := svc.Create(context.Background(), &entities.Review{
		PlaceID: primitive.NewObjectID(), Note: 3, Comment: "x",
	})

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestReviewUpdate_ZeroNoteKeepsStoredNote(t *testing.T) {
	place := &entities.Place{ID: primitive.NewObjectID(), Name: "X", Category: "cafe"}
	review := &entities.Review{
		ID: primitive.NewObjectID(), PlaceID: place.ID, UserID: primitive.NewObjectID(),
		Note: 4, Comment: "original", CreatedAt: time.Now(),
	}
	placeRepo := &stubPlaceRepo{places: []*entities.Place{place}}
	reviewRepo := &stubReviewRepo{reviews: []*entities.Review{review}}
	svc := NewReviewService(reviewRepo, placeRepo, &stubReportRepo{})

	updated, err := svc.Update(context.Background(), review.ID, 0, "nouveau commentaire")

	require.NoError(t, err)
	assert.Equal(t, 4, updated.Note)
	assert.Equal(t, "nouveau commentaire", updated.Comment)
	assert.InDelta(t, 4.0, place.AverageRating, 1e-9)
}

func TestReviewUpdate_NewNoteRecomputes(t *testing.T) {
	place := &entities.Place{ID: primitive.NewObjectID(), Name: "X", Category: "cafe"}
	review := &entities.Review{
		ID: primitive.NewObjectID(), PlaceID: place.ID, Note: 4, Comment: "ok", CreatedAt: time.Now(),
	}
	svc := NewReviewService(
		&stubReviewRepo{reviews: []*entities.Review{review}},
		&stubPlaceRepo{places: []*entities.Place{place}},
		&stubReportRepo{},
	)

	updated, err := svc.Update(context.Background(), review.ID, 1, "")

	require.NoError(t, err)
	assert.Equal(t, 1, updated.Note)
	assert.Equal(t, "ok", updated.Comment)
	assert.InDelta(t, 1.0, place.AverageRating, 1e-9)
	assert.Equal(t, 1, place.ReviewCount)
}

func TestReviewDelete_RemovesReportsAndResetsStats(t *testing.T) {
	place := &entities.Place{ID: primitive.NewObjectID(), Name: "X", Category: "cafe", AverageRating: 5, ReviewCount: 1}
	review := &entities.Review{ID: primitive.NewObjectID(), PlaceID: place.ID, Note: 5, Comment: "top"}
	reportRepo := &stubReportRepo{reports: []*entities.Report{
		{ID: primitive.NewObjectID(), ReviewID: review.ID},
		{ID: primitive.NewObjectID(), ReviewID: primitive.NewObjectID()},
	}}
	svc := NewReviewService(
		&stubReviewRepo{reviews: []*entities.Review{review}},
		&stubPlaceRepo{places: []*entities.Place{place}},
		reportRepo,
	)

	err := svc.Delete(context.Background(), review.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, place.ReviewCount)
	assert.Equal(t, 0.0, place.AverageRating)
	// Only the reports tied to the deleted review are gone.
	require.Len(t, reportRepo.reports, 1)
	assert.NotEqual(t, review.ID, reportRepo.reports[0].ReviewID)
}
