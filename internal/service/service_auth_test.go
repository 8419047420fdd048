package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanovPete/test-backend/internal/config"
	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/store"
	"github.com/IvanovPete/test-backend/internal/validators"
	"github.com/IvanovPete/test-backend/models"
)

func newTestAuthService(repo *mockUserRepository, tokens ...string) *authService {
	i := 0
	return &authService{
		userRepository:   repo,
		validator:        validators.NewBlogValidator(),
		passwordHashCost: bcrypt.MinCost,
		generateToken: func() (string, error) {
			if i >= len(tokens) {
				return "", fmt.Errorf("no more tokens")
			}
			token := tokens[i]
			i++
			return token, nil
		},
		logger: logger.Nop(),
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestNewAuthService_GeneratesRandomTokens(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, validators.NewBlogValidator(), config.App{TokenBytes: 32, PasswordHashCost: bcrypt.MinCost}, logger.Nop())
	a := svc.(*authService)

	first, err := a.generateToken()
	require.NoError(t, err)
	second, err := a.generateToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	raw, err := base64.RawURLEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestAuthService_Register_Success(t *testing.T) {
	var stored models.User
	var tokenFor int64
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 7
			return user, nil
		},
		setTokenFn: func(_ context.Context, userID int64, _ string) error {
			tokenFor = userID
			return nil
		},
	}
	svc := newTestAuthService(repo, "tok-1")

	token, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, int64(7), tokenFor)
	assert.Equal(t, "alice", stored.Username)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestAuthService_Register_InvalidCredentials(t *testing.T) {
	called := false
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			called = true
			return user, nil
		},
	}
	svc := newTestAuthService(repo, "tok-1")

	for _, creds := range []models.Credentials{
		{Username: "", Password: "secret"},
		{Username: "alice", Password: ""},
		{Username: "   ", Password: "secret"},
	} {
		_, err := svc.Register(context.Background(), creds)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
	assert.False(t, called, "repository must not be reached with invalid credentials")
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	svc := newTestAuthService(repo, "tok-1")

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash := mustHash(t, "secret")

	tests := []struct {
		name      string
		creds     models.Credentials
		findUser  func(ctx context.Context, username string) (models.User, error)
		tokens    []string
		wantToken string
		wantErr   error
	}{
		{
			name:  "existing token is returned unchanged",
			creds: models.Credentials{Username: "alice", Password: "secret"},
			findUser: func(_ context.Context, _ string) (models.User, error) {
				return models.User{UserID: 1, Username: "alice", PasswordHash: hash, Token: "stored"}, nil
			},
			tokens:    []string{"fresh"},
			wantToken: "stored",
		},
		{
			name:  "token is issued when none exists",
			creds: models.Credentials{Username: "alice", Password: "secret"},
			findUser: func(_ context.Context, _ string) (models.User, error) {
				return models.User{UserID: 1, Username: "alice", PasswordHash: hash}, nil
			},
			tokens:    []string{"fresh"},
			wantToken: "fresh",
		},
		{
			name:  "wrong password",
			creds: models.Credentials{Username: "alice", Password: "nope"},
			findUser: func(_ context.Context, _ string) (models.User, error) {
				return models.User{UserID: 1, Username: "alice", PasswordHash: hash, Token: "stored"}, nil
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:  "unknown user",
			creds: models.Credentials{Username: "ghost", Password: "secret"},
			findUser: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, store.ErrUserNotFound
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:  "storage failure",
			creds: models.Credentials{Username: "alice", Password: "secret"},
			findUser: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, errStorage
			},
			wantErr: errStorage,
		},
		{
			name:    "blank username",
			creds:   models.Credentials{Username: "", Password: "secret"},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(&mockUserRepository{findUserByUsernameFn: tt.findUser}, tt.tokens...)

			token, err := svc.Login(context.Background(), tt.creds)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_RegenerateToken(t *testing.T) {
	var stored string
	repo := &mockUserRepository{
		setTokenFn: func(_ context.Context, userID int64, token string) error {
			assert.Equal(t, alice.UserID, userID)
			stored = token
			return nil
		},
	}
	svc := newTestAuthService(repo, "new-token")

	token, err := svc.RegenerateToken(context.Background(), alice)

	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
	assert.Equal(t, "new-token", stored)
}

func TestAuthService_RegenerateToken_Anonymous(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, "new-token")

	_, err := svc.RegenerateToken(context.Background(), nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_IssueToken_RetriesOnCollision(t *testing.T) {
	var attempts []string
	repo := &mockUserRepository{
		setTokenFn: func(_ context.Context, _ int64, token string) error {
			attempts = append(attempts, token)
			if token == "taken" {
				return store.ErrTokenAlreadyExists
			}
			return nil
		},
	}
	svc := newTestAuthService(repo, "taken", "free")

	token, err := svc.RegenerateToken(context.Background(), alice)

	require.NoError(t, err)
	assert.Equal(t, "free", token)
	assert.Equal(t, []string{"taken", "free"}, attempts)
}

func TestAuthService_IssueToken_GivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &mockUserRepository{
		setTokenFn: func(_ context.Context, _ int64, _ string) error {
			return store.ErrTokenAlreadyExists
		},
	}
	svc := newTestAuthService(repo, "a", "b", "c")

	_, err := svc.RegenerateToken(context.Background(), alice)

	assert.ErrorIs(t, err, ErrTokenIssuance)
}

func TestAuthService_IssueToken_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		setTokenFn: func(_ context.Context, _ int64, _ string) error {
			return errStorage
		},
	}
	svc := newTestAuthService(repo, "a", "b")

	_, err := svc.RegenerateToken(context.Background(), alice)

	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrTokenIssuance)
}

func TestAuthService_ResolveToken(t *testing.T) {
	repo := &mockUserRepository{
		findUserByTokenFn: func(_ context.Context, token string) (models.User, error) {
			switch token {
			case "alice-token":
				return models.User{UserID: 1, Username: "alice", Token: token}, nil
			case "broken":
				return models.User{}, errStorage
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	user, ok := svc.ResolveToken(context.Background(), "alice-token")
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	for _, token := range []string{"", "unknown", "broken"} {
		user, ok = svc.ResolveToken(context.Background(), token)
		assert.False(t, ok, token)
		assert.Nil(t, user, token)
	}
}

func TestAuthService_DeleteAccount(t *testing.T) {
	var deleted int64
	repo := &mockUserRepository{
		deleteUserFn: func(_ context.Context, userID int64) error {
			deleted = userID
			return nil
		},
	}
	svc := newTestAuthService(repo)

	require.NoError(t, svc.DeleteAccount(context.Background(), bob))
	assert.Equal(t, bob.UserID, deleted)

	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), nil), ErrUnauthorized)
}

func TestRandomToken(t *testing.T) {
	token, err := randomToken(16)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
}
