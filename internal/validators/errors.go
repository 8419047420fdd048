package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyUsername       = errors.New("username is required")
	ErrUsernameTooLong     = errors.New("username is too long")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooLong     = errors.New("password is too long")
	ErrEmptyTitle          = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title is too long")
	ErrEmptyContent        = errors.New("content is required")
	ErrInvalidCategoryID   = errors.New("invalid category id")
	ErrEmptyCategoryName   = errors.New("category name is required")
	ErrCategoryNameTooLong = errors.New("category name is too long")
)
