package store

import (
	"context"

	"github.com/IvanovPete/test-backend/models"
)

// UserRepository persists accounts and their bearer tokens.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	SetToken(ctx context.Context, userID int64, token string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// CategoryRepository persists article categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// ArticleRepository persists articles. Reads return the joined view with
// author username and category.
type ArticleRepository interface {
	CreateArticle(ctx context.Context, article models.ArticleCreate) (models.Article, error)
	GetArticle(ctx context.Context, id int64) (models.Article, error)
	ListArticles(ctx context.Context) ([]models.Article, error)
	UpdateArticle(ctx context.Context, update models.ArticleUpdate) (models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

// CommentRepository persists comments. Reads return the joined view with
// author username and article title.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.CommentCreate) (models.Comment, error)
	GetComment(ctx context.Context, id int64) (models.Comment, error)
	ListComments(ctx context.Context) ([]models.Comment, error)
	UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
