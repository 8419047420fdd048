package service

import (
	"context"

	"github.com/IvanovPete/test-backend/internal/config"
	"github.com/IvanovPete/test-backend/internal/logger"
)

// appInfoService reports build information of the running server.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg carries no
// version; the /api/version endpoint has nothing to report otherwise.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("creating app info service")
	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
