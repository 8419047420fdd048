package http

import (
	"time"

	"github.com/IvanovPete/test-backend/internal/config"
	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/observability"
	"github.com/IvanovPete/test-backend/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *observability.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *observability.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Dur("request_timeout", cfg.RequestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
