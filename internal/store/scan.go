package store

import (
	"database/sql"
	"fmt"

	"github.com/IvanovPete/test-backend/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user  models.User
		token sql.NullString
	)

	err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &token, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	user.Token = token.String

	return user, nil
}

func scanCategory(row rowScanner) (models.Category, error) {
	var category models.Category
	err := row.Scan(&category.ID, &category.Name, &category.CreatedAt)
	return category, err
}

func scanArticle(row rowScanner) (models.Article, error) {
	var (
		article           models.Article
		categoryID        sql.NullInt64
		categoryName      sql.NullString
		categoryCreatedAt sql.NullTime
	)

	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.AuthorID,
		&article.AuthorUsername,
		&categoryID,
		&categoryName,
		&categoryCreatedAt,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return models.Article{}, err
	}

	if categoryID.Valid {
		article.Category = &models.Category{
			ID:        categoryID.Int64,
			Name:      categoryName.String,
			CreatedAt: categoryCreatedAt.Time,
		}
	}

	return article, nil
}

func scanComment(row rowScanner) (models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.ID,
		&comment.ArticleID,
		&comment.ArticleTitle,
		&comment.AuthorID,
		&comment.AuthorUsername,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	return comment, err
}

// expectAffected returns notFound when a DML statement matched no row.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
