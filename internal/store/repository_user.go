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

// userRepository is the database/sql implementation of [UserRepository].
// It handles account creation, lookup and token storage against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with server-assigned
// fields (UserID, CreatedAt). The token column starts out NULL.
//
// A unique violation on username is reported as [ErrUsernameAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user, now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUsername returns the user registered under username or
// [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

// FindUserByToken returns the user currently holding token or
// [ErrUserNotFound]. An empty token never matches.
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUserNotFound
	}
	return r.findUser(ctx, "*userRepository.FindUserByToken", sq.Eq{"token": token})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, pred sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, pred)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to select user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// SetToken stores token as the user's current bearer token, replacing any
// previous one. A collision with another user's token is reported as
// [ErrTokenAlreadyExists].
func (r *userRepository) SetToken(ctx context.Context, userID int64, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetTokenQuery(r.db.builder, userID, token)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetToken").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Warn().Str("func", "*userRepository.SetToken").Int64("user_id", userID).Msg("token collision")
			return ErrTokenAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.SetToken").Int64("user_id", userID).Msg("failed to update token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrUserNotFound)
}

// DeleteUser removes the account. Articles and comments of the user are
// removed by the ON DELETE CASCADE rules of the schema.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.User{}.TableName(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrUserNotFound)
}
