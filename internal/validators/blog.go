package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/IvanovPete/test-backend/models"
)

// Column limits of the schema.
const (
	MaxUsernameLength     = 150
	MaxTitleLength        = 200
	MaxCategoryNameLength = 100

	// bcrypt ignores everything past 72 bytes
	MaxPasswordBytes = 72
)

// BlogValidator implements the Validator interface for every payload the
// API accepts: credentials, article, comment and category requests.
// Values and pointers are both accepted.
type BlogValidator struct {
}

func NewBlogValidator() Validator {
	return &BlogValidator{}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value)

	case models.ArticleCreate:
		return v.validateArticleCreate(ctx, value)
	case *models.ArticleCreate:
		return v.validateArticleCreate(ctx, *value)

	case models.ArticleUpdate:
		return v.validateArticleUpdate(ctx, value)
	case *models.ArticleUpdate:
		return v.validateArticleUpdate(ctx, *value)

	case models.CommentCreate:
		return v.validateCommentCreate(ctx, value)
	case *models.CommentCreate:
		return v.validateCommentCreate(ctx, *value)

	case models.CommentUpdate:
		return v.validateCommentUpdate(ctx, value)
	case *models.CommentUpdate:
		return v.validateCommentUpdate(ctx, *value)

	case models.CategoryCreate:
		return v.validateCategoryCreate(ctx, value)
	case *models.CategoryCreate:
		return v.validateCategoryCreate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateCredentials(ctx context.Context, creds models.Credentials) error {
	if isBlank(creds.Username) {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(creds.Username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if creds.Password == "" {
		return ErrEmptyPassword
	}
	if len(creds.Password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	return nil
}

func (v *BlogValidator) validateArticleCreate(ctx context.Context, article models.ArticleCreate) error {
	if err := validateTitle(article.Title); err != nil {
		return err
	}
	if isBlank(article.Content) {
		return ErrEmptyContent
	}
	// zero means "no category"
	if article.CategoryID != nil && *article.CategoryID < 0 {
		return ErrInvalidCategoryID
	}

	return nil
}

// validateArticleUpdate checks only the fields present in the update.
// Whether a given category_id resolves is decided against storage.
func (v *BlogValidator) validateArticleUpdate(ctx context.Context, update models.ArticleUpdate) error {
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Content != nil && isBlank(*update.Content) {
		return ErrEmptyContent
	}

	return nil
}

// validateCommentCreate leaves article_id to the article lookup, so an
// unresolvable article is always reported as not found.
func (v *BlogValidator) validateCommentCreate(ctx context.Context, comment models.CommentCreate) error {
	if isBlank(comment.Content) {
		return ErrEmptyContent
	}
	return nil
}

func (v *BlogValidator) validateCommentUpdate(ctx context.Context, update models.CommentUpdate) error {
	if isBlank(update.Content) {
		return ErrEmptyContent
	}
	return nil
}

func (v *BlogValidator) validateCategoryCreate(ctx context.Context, category models.CategoryCreate) error {
	if isBlank(category.Name) {
		return ErrEmptyCategoryName
	}
	if utf8.RuneCountInString(category.Name) > MaxCategoryNameLength {
		return ErrCategoryNameTooLong
	}

	return nil
}

func validateTitle(title string) error {
	if isBlank(title) {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
