package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrTokenAlreadyExists is returned when a freshly generated token
	// collides with the token of another user.
	ErrTokenAlreadyExists = errors.New("token already exists")

	// ErrCategoryAlreadyExists is returned when a category with the same name
	// already exists.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrArticleNotFound is returned when an article id does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrCommentNotFound is returned when a comment id does not exist.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name it
	// cannot open.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
