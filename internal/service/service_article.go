package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/store"
	"github.com/IvanovPete/test-backend/internal/validators"
	"github.com/IvanovPete/test-backend/models"
)

// articleService checks, in order: identity, existence, ownership, payload,
// category reference. Only then does it write.
type articleService struct {
	articleRepository  store.ArticleRepository
	categoryRepository store.CategoryRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewArticleService(articles store.ArticleRepository, categories store.CategoryRepository, validator validators.Validator, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepository:  articles,
		categoryRepository: categories,
		validator:          validator,
		logger:             logger,
	}
}

func (s *articleService) List(ctx context.Context) ([]models.Article, error) {
	return s.articleRepository.ListArticles(ctx)
}

func (s *articleService) Get(ctx context.Context, id int64) (models.Article, error) {
	return s.articleRepository.GetArticle(ctx, id)
}

func (s *articleService) Create(ctx context.Context, identity *models.User, article models.ArticleCreate) (models.Article, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(nil, identity, ActionCreate); err != nil {
		log.Warn().Str("func", "*articleService.Create").Msg("anonymous article creation")
		return models.Article{}, err
	}

	if err := s.validator.Validate(ctx, article); err != nil {
		return models.Article{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// on create, zero means "no category"
	if article.CategoryID != nil && *article.CategoryID != 0 {
		if err := s.resolveCategory(ctx, *article.CategoryID); err != nil {
			return models.Article{}, err
		}
	}

	article.AuthorID = identity.UserID
	created, err := s.articleRepository.CreateArticle(ctx, article)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return models.Article{}, ErrUnknownCategory
	}
	if err != nil {
		return models.Article{}, fmt.Errorf("article creation failed: %w", err)
	}

	log.Info().Str("func", "*articleService.Create").Int64("article_id", created.ID).Int64("user_id", identity.UserID).Msg("article created")
	return created, nil
}

// Update applies a partial update. Omitted fields keep their values.
func (s *articleService) Update(ctx context.Context, identity *models.User, update models.ArticleUpdate) (models.Article, error) {
	log := logger.FromContext(ctx)

	if err := Authenticate(identity); err != nil {
		log.Warn().Str("func", "*articleService.Update").Int64("article_id", update.ID).Msg("anonymous article update")
		return models.Article{}, err
	}

	current, err := s.articleRepository.GetArticle(ctx, update.ID)
	if err != nil {
		return models.Article{}, err
	}

	if err = Authorize(current, identity, ActionUpdate); err != nil {
		log.Warn().Str("func", "*articleService.Update").Int64("article_id", update.ID).Int64("user_id", identity.UserID).Msg("article update by non-author")
		return models.Article{}, err
	}

	if err = s.validator.Validate(ctx, update); err != nil {
		return models.Article{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// a supplied category_id, zero included, must name an existing category
	if update.CategoryID != nil {
		if err = s.resolveCategory(ctx, *update.CategoryID); err != nil {
			return models.Article{}, err
		}
	}

	updated, err := s.articleRepository.UpdateArticle(ctx, update)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return models.Article{}, ErrUnknownCategory
	}
	if err != nil {
		return models.Article{}, fmt.Errorf("article update failed: %w", err)
	}

	log.Info().Str("func", "*articleService.Update").Int64("article_id", updated.ID).Msg("article updated")
	return updated, nil
}

func (s *articleService) Delete(ctx context.Context, identity *models.User, id int64) error {
	log := logger.FromContext(ctx)

	if err := Authenticate(identity); err != nil {
		log.Warn().Str("func", "*articleService.Delete").Int64("article_id", id).Msg("anonymous article deletion")
		return err
	}

	current, err := s.articleRepository.GetArticle(ctx, id)
	if err != nil {
		return err
	}

	if err = Authorize(current, identity, ActionDelete); err != nil {
		log.Warn().Str("func", "*articleService.Delete").Int64("article_id", id).Int64("user_id", identity.UserID).Msg("article deletion by non-author")
		return err
	}

	if err = s.articleRepository.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("article deletion failed: %w", err)
	}

	log.Info().Str("func", "*articleService.Delete").Int64("article_id", id).Msg("article deleted")
	return nil
}

// resolveCategory reports ErrUnknownCategory when categoryID references no
// category.
func (s *articleService) resolveCategory(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return ErrUnknownCategory
	}

	_, err := s.categoryRepository.GetCategory(ctx, categoryID)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return ErrUnknownCategory
	}
	return err
}
