package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/IvanovPete/test-backend/internal/config"
	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/store"
	"github.com/IvanovPete/test-backend/internal/validators"
	"github.com/IvanovPete/test-backend/models"
)

// tokenIssueAttempts bounds how many fresh tokens are tried when the store
// reports a collision.
const tokenIssueAttempts = 2

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are opaque random strings
// kept in the users table.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// passwordHashCost is the bcrypt cost used at registration.
	passwordHashCost int

	// generateToken returns a new random token.
	generateToken func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with credential parameters from cfg.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	tokenBytes := cfg.TokenBytes
	return &authService{
		userRepository:   userRepository,
		validator:        validator,
		passwordHashCost: cfg.PasswordHashCost,
		generateToken: func() (string, error) {
			return randomToken(tokenBytes)
		},
		logger: logger,
	}
}

// Register creates a new user account and issues its first token.
//
// Returns the token or:
//   - ErrInvalidDataProvided if the credentials are malformed.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
//   - ErrTokenIssuance if no unique token could be stored.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (string, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Register").Msg("invalid credentials provided")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return "", fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", creds.Username).Msg("user creation ended with error")
		return "", fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(ctx, user.UserID)
	if err != nil {
		return "", err
	}

	log.Info().Str("func", "*authService.Register").Int64("user_id", user.UserID).Msg("user registered")
	return token, nil
}

// Login authenticates an existing user.
//
// The stored token is returned unchanged if one exists; otherwise a token is
// issued. Unknown usernames and wrong passwords both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Login").Msg("invalid credentials provided")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "*authService.Login").Str("username", creds.Username).Msg("login for unknown user")
		return "", ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return "", fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Warn().Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("wrong password")
		return "", ErrWrongPassword
	}

	if user.HasToken() {
		return user.Token, nil
	}

	return a.issueToken(ctx, user.UserID)
}

// RegenerateToken replaces the identity's token. The previous token stops
// resolving immediately.
func (a *authService) RegenerateToken(ctx context.Context, identity *models.User) (string, error) {
	if err := Authenticate(identity); err != nil {
		logger.FromContext(ctx).Warn().Str("func", "*authService.RegenerateToken").Msg("anonymous token regeneration")
		return "", err
	}

	return a.issueToken(ctx, identity.UserID)
}

// ResolveToken maps token to its owner. Any failure, including a storage
// error, resolves to no identity and is logged.
func (a *authService) ResolveToken(ctx context.Context, token string) (*models.User, bool) {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil, false
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "*authService.ResolveToken").Msg("token does not match any user")
		} else {
			log.Err(err).Str("func", "*authService.ResolveToken").Msg("token lookup failed")
		}
		return nil, false
	}

	return &user, true
}

func (a *authService) DeleteAccount(ctx context.Context, identity *models.User) error {
	log := logger.FromContext(ctx)

	if err := Authenticate(identity); err != nil {
		log.Warn().Str("func", "*authService.DeleteAccount").Msg("anonymous account deletion")
		return err
	}

	if err := a.userRepository.DeleteUser(ctx, identity.UserID); err != nil {
		log.Err(err).Str("func", "*authService.DeleteAccount").Int64("user_id", identity.UserID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	log.Info().Str("func", "*authService.DeleteAccount").Int64("user_id", identity.UserID).Msg("account deleted")
	return nil
}

// issueToken stores a fresh token for userID. A collision is retried with
// another token; running out of attempts yields ErrTokenIssuance.
func (a *authService) issueToken(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= tokenIssueAttempts; attempt++ {
		token, err := a.generateToken()
		if err != nil {
			log.Err(err).Str("func", "*authService.issueToken").Msg("token generation failed")
			return "", fmt.Errorf("%w: %w", ErrTokenIssuance, err)
		}

		err = a.userRepository.SetToken(ctx, userID, token)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, store.ErrTokenAlreadyExists) {
			log.Err(err).Str("func", "*authService.issueToken").Int64("user_id", userID).Msg("token storing failed")
			return "", fmt.Errorf("token storing failed: %w", err)
		}

		log.Warn().Str("func", "*authService.issueToken").Int("attempt", attempt).Msg("token collision")
	}

	return "", ErrTokenIssuance
}

// randomToken returns n random bytes encoded as unpadded base64url.
func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
