package service

import (
	"context"
	"errors"

	"github.com/IvanovPete/test-backend/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByTokenFn    func(ctx context.Context, token string) (models.User, error)
	setTokenFn           func(ctx context.Context, userID int64, token string) error
	deleteUserFn         func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	user.UserID = 1
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	if m.findUserByTokenFn != nil {
		return m.findUserByTokenFn(ctx, token)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) SetToken(ctx context.Context, userID int64, token string) error {
	if m.setTokenFn != nil {
		return m.setTokenFn(ctx, userID, token)
	}
	return nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.CategoryRepository
// ─────────────────────────────────────────────

type mockCategoryRepository struct {
	createCategoryFn func(ctx context.Context, category models.Category) (models.Category, error)
	getCategoryFn    func(ctx context.Context, id int64) (models.Category, error)
	listCategoriesFn func(ctx context.Context) ([]models.Category, error)
	deleteCategoryFn func(ctx context.Context, id int64) error
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, category)
	}
	category.ID = 1
	return category, nil
}

func (m *mockCategoryRepository) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	if m.getCategoryFn != nil {
		return m.getCategoryFn(ctx, id)
	}
	return models.Category{ID: id}, nil
}

func (m *mockCategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ArticleRepository
// ─────────────────────────────────────────────

type mockArticleRepository struct {
	createArticleFn func(ctx context.Context, article models.ArticleCreate) (models.Article, error)
	getArticleFn    func(ctx context.Context, id int64) (models.Article, error)
	listArticlesFn  func(ctx context.Context) ([]models.Article, error)
	updateArticleFn func(ctx context.Context, update models.ArticleUpdate) (models.Article, error)
	deleteArticleFn func(ctx context.Context, id int64) error
}

func (m *mockArticleRepository) CreateArticle(ctx context.Context, article models.ArticleCreate) (models.Article, error) {
	if m.createArticleFn != nil {
		return m.createArticleFn(ctx, article)
	}
	return models.Article{ID: 1, Title: article.Title, Content: article.Content, AuthorID: article.AuthorID}, nil
}

func (m *mockArticleRepository) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	if m.getArticleFn != nil {
		return m.getArticleFn(ctx, id)
	}
	return models.Article{ID: id}, nil
}

func (m *mockArticleRepository) ListArticles(ctx context.Context) ([]models.Article, error) {
	if m.listArticlesFn != nil {
		return m.listArticlesFn(ctx)
	}
	return nil, nil
}

func (m *mockArticleRepository) UpdateArticle(ctx context.Context, update models.ArticleUpdate) (models.Article, error) {
	if m.updateArticleFn != nil {
		return m.updateArticleFn(ctx, update)
	}
	return models.Article{ID: update.ID}, nil
}

func (m *mockArticleRepository) DeleteArticle(ctx context.Context, id int64) error {
	if m.deleteArticleFn != nil {
		return m.deleteArticleFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.CommentRepository
// ─────────────────────────────────────────────

type mockCommentRepository struct {
	createCommentFn func(ctx context.Context, comment models.CommentCreate) (models.Comment, error)
	getCommentFn    func(ctx context.Context, id int64) (models.Comment, error)
	listCommentsFn  func(ctx context.Context) ([]models.Comment, error)
	updateCommentFn func(ctx context.Context, update models.CommentUpdate) (models.Comment, error)
	deleteCommentFn func(ctx context.Context, id int64) error
}

func (m *mockCommentRepository) CreateComment(ctx context.Context, comment models.CommentCreate) (models.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, comment)
	}
	return models.Comment{ID: 1, ArticleID: comment.ArticleID, AuthorID: comment.AuthorID, Content: comment.Content}, nil
}

func (m *mockCommentRepository) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	if m.getCommentFn != nil {
		return m.getCommentFn(ctx, id)
	}
	return models.Comment{ID: id}, nil
}

func (m *mockCommentRepository) ListComments(ctx context.Context) ([]models.Comment, error) {
	if m.listCommentsFn != nil {
		return m.listCommentsFn(ctx)
	}
	return nil, nil
}

func (m *mockCommentRepository) UpdateComment(ctx context.Context, update models.CommentUpdate) (models.Comment, error) {
	if m.updateCommentFn != nil {
		return m.updateCommentFn(ctx, update)
	}
	return models.Comment{ID: update.ID, Content: update.Content}, nil
}

func (m *mockCommentRepository) DeleteComment(ctx context.Context, id int64) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var errStorage = errors.New("storage error")

var (
	alice = &models.User{UserID: 1, Username: "alice"}
	bob   = &models.User{UserID: 2, Username: "bob"}
)

func ptr[T any](v T) *T {
	return &v
}
