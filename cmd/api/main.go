package main

import (
	"log"

	"engagemate/internal/api"
	"engagemate/internal/config"
	"engagemate/internal/database"
	"engagemate/internal/discovery"
	"engagemate/internal/engage"
	"engagemate/internal/events"
	"engagemate/internal/logger"
	"engagemate/internal/settings"
	"engagemate/internal/store"
	"engagemate/internal/store/local"
	"engagemate/internal/store/relational"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)
	defer logger.Sync()

	// The local store always backs settings and the generated-comment
	// collection; the relational schema has no comment table.
	localStore, err := local.Open(cfg.LocalStorePath, logger)
	if err != nil {
		logger.Fatal("Failed to open local store: %v", err)
	}
	defer localStore.Close()

	// Exactly one product backend is selected at composition time.
	var products store.ProductStore = localStore
	if cfg.StorageBackend == "database" {
		db, err := database.New(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()
		products = relational.New(db.DB, logger)
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.KafkaBrokers != "" {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers, logger)
		defer kp.Close()
		publisher = kp
	}

	settingsService := settings.NewService(localStore, cfg.RedditUserAgent)
	searcher := discovery.NewSimulated(logger, discovery.DefaultDelay)
	manager := engage.NewManager(localStore, engage.NewCanned(engage.DefaultDelay), publisher, logger)

	server := api.New(cfg, logger, api.Deps{
		Products:  products,
		Manager:   manager,
		Settings:  settingsService,
		Searcher:  searcher,
		Publisher: publisher,
	})

	logger.Info("Starting API server on port %s", cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
