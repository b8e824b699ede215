package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// ListeService handles business logic for curated lists
type ListeService struct {
	repo      repositories.ListeRepository
	placeRepo repositories.PlaceRepository
}

// NewListeService creates a new list service
func NewListeService(repo repositories.ListeRepository, placeRepo repositories.PlaceRepository) *ListeService {
	return &ListeService{
		repo:      repo,
		placeRepo: placeRepo,
	}
}

// Create validates and creates a new list. The name is checked against the
// existing lists case-insensitively; the unique index backs this up against
// races.
func (s *ListeService) Create(ctx context.Context, liste *entities.Liste) error {
	if strings.TrimSpace(liste.Name) == "" {
		return apperrors.NewValidationError("list name is required")
	}

	existing, err := s.repo.GetByName(ctx, liste.Name)
	if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.NewConflictError(fmt.Sprintf("a list named %q already exists", liste.Name))
	}

	now := time.Now().UTC()
	liste.CreatedAt = now
	liste.UpdatedAt = now
	if liste.PlaceIDs == nil {
		liste.PlaceIDs = []primitive.ObjectID{}
	}

	return s.repo.Create(ctx, liste)
}

// GetByID retrieves a list by ID
func (s *ListeService) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Liste, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves all lists
func (s *ListeService) GetAll(ctx context.Context) ([]*entities.Liste, error) {
	return s.repo.GetAll(ctx)
}

// GetPublic retrieves all public lists
func (s *ListeService) GetPublic(ctx context.Context) ([]*entities.Liste, error) {
	return s.repo.GetPublic(ctx)
}

// GetByOwnerID retrieves the lists created by a user
func (s *ListeService) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*entities.Liste, error) {
	return s.repo.GetByOwnerID(ctx, ownerID)
}

// Update renames or re-describes a list. The owner and the place-id set are
// carried over from the stored document.
func (s *ListeService) Update(ctx context.Context, id primitive.ObjectID, name, description string, isPrivate bool) (*entities.Liste, error) {
	liste, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("list name is required")
	}

	if !strings.EqualFold(name, liste.Name) {
		existing, err := s.repo.GetByName(ctx, name)
		if err != nil && !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.NewConflictError(fmt.Sprintf("a list named %q already exists", name))
		}
	}

	liste.Name = name
	liste.Description = description
	liste.IsPrivate = isPrivate
	liste.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, liste); err != nil {
		return nil, err
	}
	return liste, nil
}

// SetPrivate flips the visibility flag of a list
func (s *ListeService) SetPrivate(ctx context.Context, id primitive.ObjectID, private bool) error {
	return s.repo.SetPrivate(ctx, id, private)
}

// AddPlace adds a place reference to a list. The place must exist; adding a
// place that is already present is a no-op.
func (s *ListeService) AddPlace(ctx context.Context, listeID, placeID primitive.ObjectID) error {
	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		return err
	}
	return s.repo.AddPlace(ctx, listeID, placeID)
}

// RemovePlace removes a place reference from a list
func (s *ListeService) RemovePlace(ctx context.Context, listeID, placeID primitive.ObjectID) error {
	return s.repo.RemovePlace(ctx, listeID, placeID)
}

// GetPlaces resolves the place documents referenced by a list. References
// to since-deleted places are skipped rather than failing the whole read.
func (s *ListeService) GetPlaces(ctx context.Context, listeID primitive.ObjectID) ([]*entities.Place, error) {
	liste, err := s.repo.GetByID(ctx, listeID)
	if err != nil {
		return nil, err
	}

	places := []*entities.Place{}
	for _, placeID := range liste.PlaceIDs {
		place, err := s.placeRepo.GetByID(ctx, placeID)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				continue
			}
			return nil, err
		}
		places = append(places, place)
	}
	return places, nil
}

// Delete deletes a list
func (s *ListeService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
