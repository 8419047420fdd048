package store

import "github.com/IvanovPete/test-backend/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	ArticleRepository  ArticleRepository
	CommentRepository  CommentRepository
}

// NewStorages builds all repositories on top of a single connection pool.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		ArticleRepository:  NewArticleRepository(db, logger),
		CommentRepository:  NewCommentRepository(db, logger),
	}
}
