package services

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	apperrors "github.com/placewise/backend/pkg/errors"
)

const (
	// positiveNote is the lowest note counted as a positive review when
	// excluding already-visited places.
	positiveNote = 4

	// recentReviewLimit bounds how far back the exclusion window reaches.
	recentReviewLimit = 10

	// maxRecommendations caps the result size.
	maxRecommendations = 10
)

// Recommendation failure signals. Each case is distinct so the caller can
// tell an unconfigured user from an over-restrictive filter from a user who
// has simply seen everything already.
var (
	ErrNoPreferences     = apperrors.NewPreconditionError("preferences not configured")
	ErrNoMatchingPlaces  = apperrors.NewNotFoundError("no places match the stored preferences")
	ErrAllPlacesReviewed = apperrors.NewNotFoundError("all matching places already rated")
)

// RecommendationService produces ranked place suggestions from a user's
// stored preferences and recent review history.
type RecommendationService struct {
	prefsRepo  repositories.PreferencesRepository
	placeRepo  repositories.PlaceRepository
	reviewRepo repositories.ReviewRepository
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(prefsRepo repositories.PreferencesRepository, placeRepo repositories.PlaceRepository, reviewRepo repositories.ReviewRepository) *RecommendationService {
	return &RecommendationService{
		prefsRepo:  prefsRepo,
		placeRepo:  placeRepo,
		reviewRepo: reviewRepo,
	}
}

// Recommend returns up to maxRecommendations places matching the user's
// preferences, best rated first, excluding places the user recently rated
// positively. Places with equal rating keep their catalog order.
func (s *RecommendationService) Recommend(ctx context.Context, userID primitive.ObjectID) ([]*entities.Place, error) {
	prefs, err := s.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, ErrNoPreferences
		}
		return nil, err
	}

	catalog, err := s.placeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := []*entities.Place{}
	for _, place := range catalog {
		if matchesPreferences(place, prefs) {
			candidates = append(candidates, place)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoMatchingPlaces
	}

	recent, err := s.reviewRepo.GetRecentByUserID(ctx, userID, positiveNote, recentReviewLimit)
	if err != nil {
		return nil, err
	}
	reviewed := make(map[primitive.ObjectID]struct{}, len(recent))
	for _, review := range recent {
		reviewed[review.PlaceID] = struct{}{}
	}

	remaining := candidates[:0]
	for _, place := range candidates {
		if _, seen := reviewed[place.ID]; !seen {
			remaining = append(remaining, place)
		}
	}
	if len(remaining) == 0 {
		return nil, ErrAllPlacesReviewed
	}

	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].AverageRating > remaining[j].AverageRating
	})
	if len(remaining) > maxRecommendations {
		remaining = remaining[:maxRecommendations]
	}
	return remaining, nil
}

func matchesPreferences(place *entities.Place, prefs *entities.Preferences) bool {
	if !containsFold(prefs.PreferredCities, place.City) {
		return false
	}
	if !containsFold(prefs.PreferredCategories, place.Category) {
		return false
	}
	if place.AverageRating < prefs.MinRating {
		return false
	}
	return intersectsFold(place.Tags, prefs.PreferredTags)
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func intersectsFold(a, b []string) bool {
	for _, s := range a {
		if containsFold(b, s) {
			return true
		}
	}
	return false
}
