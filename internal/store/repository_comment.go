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

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment inserts the comment and returns its joined view.
// A missing parent article is reported as [ErrArticleNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.CommentCreate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateCommentQuery(r.db.builder, comment, now())
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("failed to build query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Comment{}, ErrArticleNotFound
		}

		log.Err(err).Str("func", "*commentRepository.CreateComment").Int64("article_id", comment.ArticleID).Msg("failed to insert comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.GetComment(ctx, id)
}

func (r *commentRepository) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsQuery(r.db.builder).Where(sq.Eq{"cm.id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("failed to build query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetComment").Int64("comment_id", id).Msg("failed to select comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return comment, nil
}

// ListComments returns every comment, newest first.
func (r *commentRepository) ListComments(ctx context.Context) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsQuery(r.db.builder).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 50)
	for rows.Next() {
		comment, scanErr := scanComment(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.ListComments").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCommentQuery(r.db.builder, update, now())
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("failed to build query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Int64("comment_id", update.ID).Msg("failed to update comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = expectAffected(result, ErrCommentNotFound); err != nil {
		return models.Comment{}, err
	}

	return r.GetComment(ctx, update.ID)
}

func (r *commentRepository) DeleteComment(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.Comment{}.TableName(), id)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Int64("comment_id", id).Msg("failed to delete comment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrCommentNotFound)
}
