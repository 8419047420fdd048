package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/models"
)

// articleRepository is the database/sql implementation of
// [ArticleRepository]. Reads join users and categories so every returned
// [models.Article] is complete.
type articleRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateArticle inserts the article and returns its joined view.
// A category id that does not reference an existing category is reported as
// [ErrCategoryNotFound].
func (r *articleRepository) CreateArticle(ctx context.Context, article models.ArticleCreate) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateArticleQuery(r.db.builder, article, now())
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.CreateArticle").Msg("failed to build query")
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			log.Warn().Str("func", "*articleRepository.CreateArticle").Msg("article references missing row")
			return models.Article{}, ErrCategoryNotFound
		}

		log.Err(err).Str("func", "*articleRepository.CreateArticle").Int64("author_id", article.AuthorID).Msg("failed to insert article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.GetArticle(ctx, id)
}

func (r *articleRepository) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectArticlesQuery(r.db.builder).Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.GetArticle").Msg("failed to build query")
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Article{}, ErrArticleNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.GetArticle").Int64("article_id", id).Msg("failed to select article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return article, nil
}

// ListArticles returns every article, newest first.
func (r *articleRepository) ListArticles(ctx context.Context) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectArticlesQuery(r.db.builder).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0, 50)
	for rows.Next() {
		article, scanErr := scanArticle(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*articleRepository.ListArticles").Msg("failed to scan article row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticles").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return articles, nil
}

// UpdateArticle applies a partial update and returns the refreshed view.
func (r *articleRepository) UpdateArticle(ctx context.Context, update models.ArticleUpdate) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateArticleQuery(r.db.builder, update, now())
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.UpdateArticle").Msg("failed to build query")
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Article{}, ErrCategoryNotFound
		}

		log.Err(err).Str("func", "*articleRepository.UpdateArticle").Int64("article_id", update.ID).Msg("failed to update article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = expectAffected(result, ErrArticleNotFound); err != nil {
		return models.Article{}, err
	}

	return r.GetArticle(ctx, update.ID)
}

// DeleteArticle removes the article together with its comments.
func (r *articleRepository) DeleteArticle(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.Article{}.TableName(), id)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.DeleteArticle").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.DeleteArticle").Int64("article_id", id).Msg("failed to delete article")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrArticleNotFound)
}
