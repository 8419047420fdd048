package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/store"
	"github.com/IvanovPete/test-backend/internal/validators"
	"github.com/IvanovPete/test-backend/models"
)

func newTestArticleService(articles *mockArticleRepository, categories *mockCategoryRepository) *articleService {
	if categories == nil {
		categories = &mockCategoryRepository{}
	}
	return &articleService{
		articleRepository:  articles,
		categoryRepository: categories,
		validator:          validators.NewBlogValidator(),
		logger:             logger.Nop(),
	}
}

func aliceArticle(_ context.Context, id int64) (models.Article, error) {
	return models.Article{ID: id, Title: "Hello", Content: "World", AuthorID: alice.UserID, AuthorUsername: "alice"}, nil
}

func TestArticleService_List_Get(t *testing.T) {
	articles := &mockArticleRepository{
		listArticlesFn: func(_ context.Context) ([]models.Article, error) {
			return []models.Article{{ID: 2}, {ID: 1}}, nil
		},
		getArticleFn: func(_ context.Context, id int64) (models.Article, error) {
			if id == 1 {
				return models.Article{ID: 1}, nil
			}
			return models.Article{}, store.ErrArticleNotFound
		},
	}
	svc := newTestArticleService(articles, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, store.ErrArticleNotFound)
}

func TestArticleService_Create_SetsAuthorFromIdentity(t *testing.T) {
	articles := &mockArticleRepository{
		createArticleFn: func(_ context.Context, article models.ArticleCreate) (models.Article, error) {
			assert.Equal(t, alice.UserID, article.AuthorID)
			return models.Article{ID: 1, Title: article.Title, AuthorID: article.AuthorID}, nil
		},
	}
	svc := newTestArticleService(articles, nil)

	created, err := svc.Create(context.Background(), alice, models.ArticleCreate{Title: "Hello", Content: "World", AuthorID: 999})

	require.NoError(t, err)
	assert.Equal(t, alice.UserID, created.AuthorID)
}

func TestArticleService_Create_Errors(t *testing.T) {
	missingCategory := &mockCategoryRepository{
		getCategoryFn: func(_ context.Context, _ int64) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNotFound
		},
	}

	tests := []struct {
		name       string
		identity   *models.User
		article    models.ArticleCreate
		categories *mockCategoryRepository
		wantErr    error
	}{
		{
			name:     "anonymous beats invalid payload",
			identity: nil,
			article:  models.ArticleCreate{},
			wantErr:  ErrUnauthorized,
		},
		{
			name:     "blank title",
			identity: alice,
			article:  models.ArticleCreate{Title: " ", Content: "World"},
			wantErr:  validators.ErrEmptyTitle,
		},
		{
			name:     "blank content",
			identity: alice,
			article:  models.ArticleCreate{Title: "Hello"},
			wantErr:  ErrInvalidDataProvided,
		},
		{
			name:       "unknown category",
			identity:   alice,
			article:    models.ArticleCreate{Title: "Hello", Content: "World", CategoryID: ptr(int64(42))},
			categories: missingCategory,
			wantErr:    ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles := &mockArticleRepository{
				createArticleFn: func(_ context.Context, _ models.ArticleCreate) (models.Article, error) {
					t.Fatal("CreateArticle must not be called")
					return models.Article{}, nil
				},
			}
			svc := newTestArticleService(articles, tt.categories)

			_, err := svc.Create(context.Background(), tt.identity, tt.article)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestArticleService_Create_ZeroCategoryMeansNone(t *testing.T) {
	categories := &mockCategoryRepository{
		getCategoryFn: func(_ context.Context, _ int64) (models.Category, error) {
			t.Fatal("GetCategory must not be called for category 0")
			return models.Category{}, nil
		},
	}
	svc := newTestArticleService(&mockArticleRepository{}, categories)

	_, err := svc.Create(context.Background(), alice, models.ArticleCreate{Title: "Hello", Content: "World", CategoryID: ptr(int64(0))})

	require.NoError(t, err)
}

func TestArticleService_Create_CategoryRemovedConcurrently(t *testing.T) {
	articles := &mockArticleRepository{
		createArticleFn: func(_ context.Context, _ models.ArticleCreate) (models.Article, error) {
			return models.Article{}, store.ErrCategoryNotFound
		},
	}
	svc := newTestArticleService(articles, nil)

	_, err := svc.Create(context.Background(), alice, models.ArticleCreate{Title: "Hello", Content: "World", CategoryID: ptr(int64(3))})

	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestArticleService_Update(t *testing.T) {
	tests := []struct {
		name     string
		identity *models.User
		update   models.ArticleUpdate
		getFn    func(ctx context.Context, id int64) (models.Article, error)
		wantErr  error
		wantCall bool
	}{
		{
			name:     "owner",
			identity: alice,
			update:   models.ArticleUpdate{ID: 1, Title: ptr("New")},
			getFn:    aliceArticle,
			wantCall: true,
		},
		{
			name:     "owner moves to existing category",
			identity: alice,
			update:   models.ArticleUpdate{ID: 1, CategoryID: ptr(int64(2))},
			getFn:    aliceArticle,
			wantCall: true,
		},
		{
			name:     "category zero must resolve on update",
			identity: alice,
			update:   models.ArticleUpdate{ID: 1, CategoryID: ptr(int64(0))},
			getFn:    aliceArticle,
			wantErr:  ErrUnknownCategory,
		},
		{
			name:     "negative category",
			identity: alice,
			update:   models.ArticleUpdate{ID: 1, CategoryID: ptr(int64(-1))},
			getFn:    aliceArticle,
			wantErr:  ErrUnknownCategory,
		},
		{
			name:     "anonymous",
			identity: nil,
			update:   models.ArticleUpdate{ID: 1, Title: ptr("New")},
			getFn:    aliceArticle,
			wantErr:  ErrUnauthorized,
		},
		{
			name:     "non-owner",
			identity: bob,
			update:   models.ArticleUpdate{ID: 1, Title: ptr("New")},
			getFn:    aliceArticle,
			wantErr:  ErrForbidden,
		},
		{
			name:     "non-owner with invalid payload is still forbidden",
			identity: bob,
			update:   models.ArticleUpdate{ID: 1, Title: ptr("")},
			getFn:    aliceArticle,
			wantErr:  ErrForbidden,
		},
		{
			name:     "missing article",
			identity: alice,
			update:   models.ArticleUpdate{ID: 404, Title: ptr("New")},
			getFn: func(_ context.Context, _ int64) (models.Article, error) {
				return models.Article{}, store.ErrArticleNotFound
			},
			wantErr: store.ErrArticleNotFound,
		},
		{
			name:     "owner with blank title",
			identity: alice,
			update:   models.ArticleUpdate{ID: 1, Title: ptr("")},
			getFn:    aliceArticle,
			wantErr:  ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			articles := &mockArticleRepository{
				getArticleFn: tt.getFn,
				updateArticleFn: func(_ context.Context, update models.ArticleUpdate) (models.Article, error) {
					called = true
					return models.Article{ID: update.ID, AuthorID: alice.UserID}, nil
				},
			}
			svc := newTestArticleService(articles, nil)

			_, err := svc.Update(context.Background(), tt.identity, tt.update)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCall, called)
		})
	}
}

func TestArticleService_Update_UnknownCategory(t *testing.T) {
	categories := &mockCategoryRepository{
		getCategoryFn: func(_ context.Context, _ int64) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNotFound
		},
	}
	svc := newTestArticleService(&mockArticleRepository{getArticleFn: aliceArticle}, categories)

	_, err := svc.Update(context.Background(), alice, models.ArticleUpdate{ID: 1, CategoryID: ptr(int64(9))})

	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestArticleService_Delete(t *testing.T) {
	var deleted []int64
	articles := &mockArticleRepository{
		getArticleFn: aliceArticle,
		deleteArticleFn: func(_ context.Context, id int64) error {
			deleted = append(deleted, id)
			return nil
		},
	}
	svc := newTestArticleService(articles, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), nil, 1), ErrUnauthorized)
	assert.ErrorIs(t, svc.Delete(context.Background(), bob, 1), ErrForbidden)
	assert.Empty(t, deleted)

	require.NoError(t, svc.Delete(context.Background(), alice, 1))
	assert.Equal(t, []int64{1}, deleted)
}

func TestArticleService_Delete_StorageError(t *testing.T) {
	articles := &mockArticleRepository{
		getArticleFn: aliceArticle,
		deleteArticleFn: func(_ context.Context, _ int64) error {
			return errStorage
		},
	}
	svc := newTestArticleService(articles, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), alice, 1), errStorage)
}
