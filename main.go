// main.go
package main

import (
	"context"
	"log"

	"travel-agency/cmd"
	"travel-agency/internal/booking"
	"travel-agency/internal/catalog"
	"travel-agency/internal/data/entity"
	"travel-agency/internal/data/repository"
	"travel-agency/internal/remote"
	"travel-agency/internal/usecase"
	"travel-agency/internal/wire"
	"travel-agency/pkg/database"
	"travel-agency/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("catalog_source", config.Catalog.Source),
		zap.String("backend", config.Backend.BaseURL),
	)

	seed, err := catalog.NewSeedSource()
	if err != nil {
		logger.Fatal("Failed to read seed catalog", zap.Error(err))
	}
	seedPackages, _ := seed.Packages(context.Background())
	seedPosts, _ := seed.BlogPosts(context.Background())
	store := catalog.NewStore(seedPackages, seedPosts)

	client := remote.NewClient(config.Backend.BaseURL, config.Backend.Timeout, logger)
	packages := remote.NewResource[entity.Package](client, "/api/packages", logger)

	var source catalog.Source = seed
	switch config.Catalog.Source {
	case utils.CatalogSourceBackend:
		source = catalog.NewBackendSource(packages, seed)
	case utils.CatalogSourcePostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		source = repository.NewRepository(db, logger)
	}

	var submitter booking.Submitter = booking.LocalSubmitter{}
	if config.Booking.RemoteSubmit {
		submitter = remote.NewBookingSubmitter(client)
	}

	// Wire all dependencies
	app := wire.Wiring(usecase.Deps{
		Store:        store,
		Source:       source,
		Packages:     packages,
		Destinations: remote.NewResource[entity.Destination](client, "/api/destinations", logger),
		Categories:   remote.NewResource[entity.Category](client, "/api/categories", logger),
		Homepage:     remote.NewHomepageClient(client),
		Submitter:    submitter,
	}, config, logger)

	ctx := context.Background()
	app.Service.Init(ctx, logger)

	// Start server
	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
	}
}
