package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/IvanovPete/test-backend/models"
)

var userColumns = []string{"id", "username", "password_hash", "token", "created_at"}

var categoryColumns = []string{"id", "name", "created_at"}

var articleViewColumns = []string{
	"a.id",
	"a.title",
	"a.content",
	"a.author_id",
	"u.username",
	"c.id",
	"c.name",
	"c.created_at",
	"a.created_at",
	"a.updated_at",
}

var commentViewColumns = []string{
	"cm.id",
	"cm.article_id",
	"a.title",
	"cm.author_id",
	"u.username",
	"cm.content",
	"cm.created_at",
	"cm.updated_at",
}

func returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// users

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User, createdAt time.Time) (string, []any, error) {
	return b.Insert("users").
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, createdAt).
		Suffix(returning(userColumns...)).
		ToSql()
}

// buildFindUserQuery selects a single user matching pred, e.g.
// sq.Eq{"username": "alice"}.
func buildFindUserQuery(b sq.StatementBuilderType, pred sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(pred).
		ToSql()
}

func buildSetTokenQuery(b sq.StatementBuilderType, userID int64, token string) (string, []any, error) {
	return b.Update("users").
		Set("token", token).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildDeleteByIDQuery is shared by every table keyed by "id".
func buildDeleteByIDQuery(b sq.StatementBuilderType, table string, id int64) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// categories

func buildCreateCategoryQuery(b sq.StatementBuilderType, category models.Category) (string, []any, error) {
	return b.Insert("categories").
		Columns("name", "created_at").
		Values(category.Name, category.CreatedAt).
		Suffix(returning(categoryColumns...)).
		ToSql()
}

func buildSelectCategoriesQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(categoryColumns...).
		From("categories").
		OrderBy("id ASC")
}

// articles

func buildCreateArticleQuery(b sq.StatementBuilderType, article models.ArticleCreate, createdAt time.Time) (string, []any, error) {
	return b.Insert("articles").
		Columns("title", "content", "author_id", "category_id", "created_at", "updated_at").
		Values(article.Title, article.Content, article.AuthorID, nullableID(article.CategoryID), createdAt, createdAt).
		Suffix(returning("id")).
		ToSql()
}

// buildSelectArticlesQuery returns the joined article view, newest first.
func buildSelectArticlesQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(articleViewColumns...).
		From("articles a").
		Join("users u ON u.id = a.author_id").
		LeftJoin("categories c ON c.id = a.category_id").
		OrderBy("a.created_at DESC", "a.id DESC")
}

// buildUpdateArticleQuery writes only the fields present in update.
// updated_at is always refreshed.
func buildUpdateArticleQuery(b sq.StatementBuilderType, update models.ArticleUpdate, updatedAt time.Time) (string, []any, error) {
	clauses := map[string]any{"updated_at": updatedAt}
	if update.Title != nil {
		clauses["title"] = *update.Title
	}
	if update.Content != nil {
		clauses["content"] = *update.Content
	}
	if update.CategoryID != nil {
		clauses["category_id"] = *update.CategoryID
	}

	return b.Update("articles").
		SetMap(clauses).
		Where(sq.Eq{"id": update.ID}).
		ToSql()
}

// comments

func buildCreateCommentQuery(b sq.StatementBuilderType, comment models.CommentCreate, createdAt time.Time) (string, []any, error) {
	return b.Insert("comments").
		Columns("article_id", "author_id", "content", "created_at", "updated_at").
		Values(comment.ArticleID, comment.AuthorID, comment.Content, createdAt, createdAt).
		Suffix(returning("id")).
		ToSql()
}

// buildSelectCommentsQuery returns the joined comment view, newest first.
func buildSelectCommentsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(commentViewColumns...).
		From("comments cm").
		Join("articles a ON a.id = cm.article_id").
		Join("users u ON u.id = cm.author_id").
		OrderBy("cm.created_at DESC", "cm.id DESC")
}

func buildUpdateCommentQuery(b sq.StatementBuilderType, update models.CommentUpdate, updatedAt time.Time) (string, []any, error) {
	return b.Update("comments").
		Set("content", update.Content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": update.ID}).
		ToSql()
}

// nullableID maps a missing or zero reference to SQL NULL. Only creation
// accepts zero as "no category".
func nullableID(id *int64) any {
	if id == nil || *id == 0 {
		return nil
	}
	return *id
}
