package service

import (
	"fmt"

	"github.com/IvanovPete/test-backend/internal/config"
	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/store"
	"github.com/IvanovPete/test-backend/internal/validators"
)

type Services struct {
	AuthService     AuthService
	ArticleService  ArticleService
	CommentService  CommentService
	CategoryService CategoryService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewBlogValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		ArticleService:  NewArticleService(storages.ArticleRepository, storages.CategoryRepository, validator, logger),
		CommentService:  NewCommentService(storages.CommentRepository, storages.ArticleRepository, validator, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, validator, logger),
		AppInfoService:  appInfoService,
	}, nil
}
