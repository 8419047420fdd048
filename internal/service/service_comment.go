package service

import (
	"context"
	"fmt"

	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/store"
	"github.com/IvanovPete/test-backend/internal/validators"
	"github.com/IvanovPete/test-backend/models"
)

// commentService mirrors articleService. A comment on a missing article is
// a not-found error, unlike an article with a missing category.
type commentService struct {
	commentRepository store.CommentRepository
	articleRepository store.ArticleRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewCommentService(comments store.CommentRepository, articles store.ArticleRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: comments,
		articleRepository: articles,
		validator:         validator,
		logger:            logger,
	}
}

func (s *commentService) List(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepository.ListComments(ctx)
}

func (s *commentService) Get(ctx context.Context, id int64) (models.Comment, error) {
	return s.commentRepository.GetComment(ctx, id)
}

func (s *commentService) Create(ctx context.Context, identity *models.User, comment models.CommentCreate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(nil, identity, ActionCreate); err != nil {
		log.Warn().Str("func", "*commentService.Create").Msg("anonymous comment creation")
		return models.Comment{}, err
	}

	if err := s.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// ids start at 1; anything else can never resolve
	if comment.ArticleID <= 0 {
		return models.Comment{}, store.ErrArticleNotFound
	}
	if _, err := s.articleRepository.GetArticle(ctx, comment.ArticleID); err != nil {
		return models.Comment{}, err
	}

	comment.AuthorID = identity.UserID
	created, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	log.Info().Str("func", "*commentService.Create").Int64("comment_id", created.ID).Int64("user_id", identity.UserID).Msg("comment created")
	return created, nil
}

func (s *commentService) Update(ctx context.Context, identity *models.User, update models.CommentUpdate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := Authenticate(identity); err != nil {
		log.Warn().Str("func", "*commentService.Update").Int64("comment_id", update.ID).Msg("anonymous comment update")
		return models.Comment{}, err
	}

	current, err := s.commentRepository.GetComment(ctx, update.ID)
	if err != nil {
		return models.Comment{}, err
	}

	if err = Authorize(current, identity, ActionUpdate); err != nil {
		log.Warn().Str("func", "*commentService.Update").Int64("comment_id", update.ID).Int64("user_id", identity.UserID).Msg("comment update by non-author")
		return models.Comment{}, err
	}

	if err = s.validator.Validate(ctx, update); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.commentRepository.UpdateComment(ctx, update)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment update failed: %w", err)
	}

	log.Info().Str("func", "*commentService.Update").Int64("comment_id", updated.ID).Msg("comment updated")
	return updated, nil
}

func (s *commentService) Delete(ctx context.Context, identity *models.User, id int64) error {
	log := logger.FromContext(ctx)

	if err := Authenticate(identity); err != nil {
		log.Warn().Str("func", "*commentService.Delete").Int64("comment_id", id).Msg("anonymous comment deletion")
		return err
	}

	current, err := s.commentRepository.GetComment(ctx, id)
	if err != nil {
		return err
	}

	if err = Authorize(current, identity, ActionDelete); err != nil {
		log.Warn().Str("func", "*commentService.Delete").Int64("comment_id", id).Int64("user_id", identity.UserID).Msg("comment deletion by non-author")
		return err
	}

	if err = s.commentRepository.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("comment deletion failed: %w", err)
	}

	log.Info().Str("func", "*commentService.Delete").Int64("comment_id", id).Msg("comment deleted")
	return nil
}
