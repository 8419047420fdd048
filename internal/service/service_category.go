package service

import (
	"context"
	"fmt"

	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/store"
	"github.com/IvanovPete/test-backend/internal/validators"
	"github.com/IvanovPete/test-backend/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewCategoryService(categories store.CategoryRepository, validator validators.Validator, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categories,
		validator:          validator,
		logger:             logger,
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepository.ListCategories(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int64) (models.Category, error) {
	return s.categoryRepository.GetCategory(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, identity *models.User, category models.CategoryCreate) (models.Category, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(nil, identity, ActionCreate); err != nil {
		log.Warn().Str("func", "*categoryService.Create").Msg("anonymous category creation")
		return models.Category{}, err
	}

	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.categoryRepository.CreateCategory(ctx, models.Category{Name: category.Name})
	if err != nil {
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}

	log.Info().Str("func", "*categoryService.Create").Int64("category_id", created.ID).Msg("category created")
	return created, nil
}

// Delete needs an identity but no ownership: categories have no author.
func (s *categoryService) Delete(ctx context.Context, identity *models.User, id int64) error {
	log := logger.FromContext(ctx)

	if err := Authenticate(identity); err != nil {
		log.Warn().Str("func", "*categoryService.Delete").Int64("category_id", id).Msg("anonymous category deletion")
		return err
	}

	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("category deletion failed: %w", err)
	}

	log.Info().Str("func", "*categoryService.Delete").Int64("category_id", id).Msg("category deleted")
	return nil
}
