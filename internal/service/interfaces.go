package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/IvanovPete/test-backend/models"
)

// AuthService owns accounts and their bearer tokens.
type AuthService interface {
	// Register creates an account and returns its first token.
	Register(ctx context.Context, creds models.Credentials) (string, error)
	// Login verifies the password and returns the user's token, issuing one
	// only if none exists yet.
	Login(ctx context.Context, creds models.Credentials) (string, error)
	// RegenerateToken replaces the identity's token with a fresh one.
	RegenerateToken(ctx context.Context, identity *models.User) (string, error)
	// ResolveToken maps a bearer token to its user. Unknown tokens resolve to
	// no identity.
	ResolveToken(ctx context.Context, token string) (*models.User, bool)
	// DeleteAccount removes the identity together with its articles and
	// comments.
	DeleteAccount(ctx context.Context, identity *models.User) error
}

// ArticleService is CRUD over articles. identity is nil for anonymous calls.
type ArticleService interface {
	List(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, id int64) (models.Article, error)
	Create(ctx context.Context, identity *models.User, article models.ArticleCreate) (models.Article, error)
	Update(ctx context.Context, identity *models.User, update models.ArticleUpdate) (models.Article, error)
	Delete(ctx context.Context, identity *models.User, id int64) error
}

// CommentService is CRUD over comments. identity is nil for anonymous calls.
type CommentService interface {
	List(ctx context.Context) ([]models.Comment, error)
	Get(ctx context.Context, id int64) (models.Comment, error)
	Create(ctx context.Context, identity *models.User, comment models.CommentCreate) (models.Comment, error)
	Update(ctx context.Context, identity *models.User, update models.CommentUpdate) (models.Comment, error)
	Delete(ctx context.Context, identity *models.User, id int64) error
}

// CategoryService manages categories. Any authenticated user may create or
// delete one.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (models.Category, error)
	Create(ctx context.Context, identity *models.User, category models.CategoryCreate) (models.Category, error)
	Delete(ctx context.Context, identity *models.User, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
