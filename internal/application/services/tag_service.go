package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placewise/backend/internal/domain/entities"
	"github.com/placewise/backend/internal/domain/repositories"
	apperrors "github.com/placewise/backend/pkg/errors"
)

// TagService handles business logic for tags
type TagService struct {
	repo      repositories.TagRepository
	placeRepo repositories.PlaceRepository
}

// NewTagService creates a new tag service
func NewTagService(repo repositories.TagRepository, placeRepo repositories.PlaceRepository) *TagService {
	return &TagService{
		repo:      repo,
		placeRepo: placeRepo,
	}
}

// Create validates and creates a new tag
func (s *TagService) Create(ctx context.Context, tag *entities.Tag) error {
	if strings.TrimSpace(tag.Libelle) == "" {
		return apperrors.NewValidationError("tag label is required")
	}
	return s.repo.Create(ctx, tag)
}

// GetByID retrieves a tag by ID
func (s *TagService) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves all tags
func (s *TagService) GetAll(ctx context.Context) ([]*entities.Tag, error) {
	return s.repo.GetAll(ctx)
}

// Update renames a tag
func (s *TagService) Update(ctx context.Context, tag *entities.Tag) error {
	if strings.TrimSpace(tag.Libelle) == "" {
		return apperrors.NewValidationError("tag label is required")
	}
	return s.repo.Update(ctx, tag)
}

// Delete deletes a tag and strips its label from every place's tag set
func (s *TagService) Delete(ctx context.Context, id primitive.ObjectID) error {
	tag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	return s.placeRepo.RemoveTagFromAll(ctx, tag.Libelle)
}
