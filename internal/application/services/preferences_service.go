package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// PreferencesService handles the per-user recommendation criteria
type PreferencesService struct {
	repo repositories.PreferencesRepository
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(repo repositories.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

// GetByUserID retrieves a user's preferences
func (s *PreferencesService) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*entities.Preferences, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Upsert creates or replaces a user's preferences
func (s *PreferencesService) Upsert(ctx context.Context, prefs *entities.Preferences) error {
	if prefs.MinRating < 0 || prefs.MinRating > 5 {
		return apperrors.NewValidationError("minimum rating must be between 0 and 5")
	}

	if prefs.PreferredTags == nil {
		prefs.PreferredTags = []string{}
	}
	if prefs.PreferredCities == nil {
		prefs.PreferredCities = []string{}
	}
	if prefs.PreferredCategories == nil {
		prefs.PreferredCategories = []string{}
	}

	return s.repo.Upsert(ctx, prefs)
}
