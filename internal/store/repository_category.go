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

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory inserts a category. Names are unique; a duplicate is
// reported as [ErrCategoryAlreadyExists].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if category.CreatedAt.IsZero() {
		category.CreatedAt = now()
	}

	query, args, err := buildCreateCategoryQuery(r.db.builder, category)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("failed to build query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			return models.Category{}, ErrCategoryAlreadyExists
		}

		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("failed to insert category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCategoriesQuery(r.db.builder).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetCategory").Msg("failed to build query")
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetCategory").Int64("category_id", id).Msg("failed to select category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCategoriesQuery(r.db.builder).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		category, scanErr := scanCategory(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*categoryRepository.ListCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// DeleteCategory removes a category. Articles referencing it keep existing
// with a NULL category (ON DELETE SET NULL).
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.Category{}.TableName(), id)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrCategoryNotFound)
}
