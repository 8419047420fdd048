package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/IvanovPete/test-backend/internal/config"
	myHTTP "github.com/IvanovPete/test-backend/internal/handler/http"
	"github.com/IvanovPete/test-backend/internal/logger"
	"github.com/IvanovPete/test-backend/internal/observability"
	"github.com/IvanovPete/test-backend/internal/server"
	"github.com/IvanovPete/test-backend/internal/service"
	"github.com/IvanovPete/test-backend/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := myHTTP.NewHandler(services, observability.NewMetrics(), cfg.Server, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
