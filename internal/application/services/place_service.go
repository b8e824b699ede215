package services

import (
	"context"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// PlaceService handles business logic for places
type PlaceService struct {
	repo      repositories.PlaceRepository
	tagRepo   repositories.TagRepository
	listeRepo repositories.ListeRepository
}

// NewPlaceService creates a new place service
func NewPlaceService(repo repositories.PlaceRepository, tagRepo repositories.TagRepository, listeRepo repositories.ListeRepository) *PlaceService {
	return &PlaceService{
		repo:      repo,
		tagRepo:   tagRepo,
		listeRepo: listeRepo,
	}
}

// Create validates and creates a new place. Tag labels the place carries that
// are not yet registered get created on the fly.
func (s *PlaceService) Create(ctx context.Context, place *entities.Place) error {
	if err := validatePlace(place); err != nil {
		return err
	}

	if err := s.ensureTags(ctx, place.Tags); err != nil {
		return err
	}

	return s.repo.Create(ctx, place)
}

// GetByID retrieves a place by ID
func (s *PlaceService) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Place, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves the full place catalog
func (s *PlaceService) GetAll(ctx context.Context) ([]*entities.Place, error) {
	return s.repo.GetAll(ctx)
}

// GetByCategory retrieves places with the given category (exact match)
func (s *PlaceService) GetByCategory(ctx context.Context, category string) ([]*entities.Place, error) {
	return s.repo.GetByCategory(ctx, category)
}

// GetByName retrieves places whose name contains the given fragment
func (s *PlaceService) GetByName(ctx context.Context, name string) ([]*entities.Place, error) {
	return s.repo.GetByName(ctx, name)
}

// GetByTag retrieves places carrying the given tag
func (s *PlaceService) GetByTag(ctx context.Context, tag string) ([]*entities.Place, error) {
	return s.repo.GetByTag(ctx, tag)
}

// Update validates and replaces a place. The derived rating fields are
// carried over from the stored document so clients cannot tamper with them.
func (s *PlaceService) Update(ctx context.Context, place *entities.Place) error {
	if err := validatePlace(place); err != nil {
		return err
	}

	stored, err := s.repo.GetByID(ctx, place.ID)
	if err != nil {
		return err
	}
	place.AverageRating = stored.AverageRating
	place.ReviewCount = stored.ReviewCount

	if err := s.ensureTags(ctx, place.Tags); err != nil {
		return err
	}

	return s.repo.Update(ctx, place)
}

// Delete deletes a place and purges its id from every list referencing it
func (s *PlaceService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.listeRepo.RemovePlaceFromAll(ctx, id); err != nil {
		return err
	}
	return nil
}

// Search filters the catalog with the given criteria. All predicates are
// optional, case-insensitive and combine with AND.
func (s *PlaceService) Search(ctx context.Context, criteria repositories.SearchCriteria) ([]*entities.Place, error) {
	places, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := []*entities.Place{}
	for _, place := range places {
		if matchesCriteria(place, criteria) {
			results = append(results, place)
		}
	}
	if len(results) == 0 {
		return nil, apperrors.NewNotFoundError("no places match the given criteria")
	}
	return results, nil
}

func matchesCriteria(place *entities.Place, c repositories.SearchCriteria) bool {
	if c.Name != "" && !strings.Contains(strings.ToLower(place.Name), strings.ToLower(c.Name)) {
		return false
	}
	if c.Category != "" && !strings.EqualFold(place.Category, c.Category) {
		return false
	}
	if c.City != "" && !strings.EqualFold(place.City, c.City) {
		return false
	}
	if c.MinRating != nil && place.AverageRating < *c.MinRating {
		return false
	}
	if c.Tag != "" {
		found := false
		for _, tag := range place.Tags {
			if strings.EqualFold(tag, c.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ensureTags registers any tag label not seen before. A concurrent create of
// the same label is fine: the duplicate is simply skipped.
func (s *PlaceService) ensureTags(ctx context.Context, labels []string) error {
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			return apperrors.NewValidationError("tag labels must not be blank")
		}

		err := s.tagRepo.Create(ctx, &entities.Tag{Libelle: label})
		if err == nil {
			continue
		}
		if apperrors.IsType(err, apperrors.ErrorTypeConflict) {
			log.Printf("tag %q already registered, skipping", label)
			continue
		}
		return err
	}
	return nil
}

func validatePlace(place *entities.Place) error {
	if strings.TrimSpace(place.Name) == "" {
		return apperrors.NewValidationError("place name is required")
	}
	if strings.TrimSpace(place.Category) == "" {
		return apperrors.NewValidationError("place category is required")
	}
	if place.Latitude < -90 || place.Latitude > 90 {
		return apperrors.NewValidationError("latitude must be between -90 and 90")
	}
	if place.Longitude < -180 || place.Longitude > 180 {
		return apperrors.NewValidationError("longitude must be between -180 and 180")
	}
	return nil
}
