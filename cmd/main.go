package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coffeecorner/internal/handler"
	"coffeecorner/internal/repositories"
	"coffeecorner/internal/router"
	"coffeecorner/internal/service"
	"coffeecorner/pkg/database"
	"coffeecorner/pkg/envconfig"
	"coffeecorner/pkg/flags"
	"coffeecorner/pkg/kvstore"
	"coffeecorner/pkg/logger"
	"coffeecorner/pkg/shutdownsetup"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()

	// Validate flag configuration
	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting Coffee Corner application",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level)

	// Open the key-value store backend
	storageConfig := envconfig.LoadStorageConfig()
	if flagConfig.Storage != "" {
		storageConfig.Driver = flagConfig.Storage
	}
	if flagConfig.DBPath != "" {
		storageConfig.SQLitePath = flagConfig.DBPath
	}

	store, err := openStore(storageConfig, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open key-value store", "driver", storageConfig.Driver, "error", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error("Failed to close key-value store", "error", err)
		}
	}()

	appLogger.Info("Key-value store ready", "driver", storageConfig.Driver)

	// Initialize repositories with the store and logger
	appRepo := repositories.NewAppRepository(store, appLogger)
	catalogRepo := repositories.NewCatalogRepository(store, appLogger)
	cartRepo := repositories.NewCartRepository(store, appLogger)
	favoritesRepo := repositories.NewFavoritesRepository(store, appLogger)
	userRepo := repositories.NewUserRepository(store, appLogger)
	settingsRepo := repositories.NewSettingsRepository(store, appLogger)

	// Seed catalog data on first run. A failed first-run seed is fatal.
	bootCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := appRepo.Initialize(bootCtx); err != nil {
		appLogger.Fatal("Failed to initialize app data", "error", err)
	}

	// Initialize services and load their slices into memory
	systemPrefersDark := envconfig.GetEnv("SYSTEM_THEME", "light") == "dark"

	catalogService := service.NewCatalogService(catalogRepo, appLogger)
	cartService := service.NewCartService(cartRepo, appLogger)
	favoritesService := service.NewFavoritesService(favoritesRepo, appLogger)
	sessionService := service.NewSessionService(userRepo, settingsRepo, appLogger)
	settingsService := service.NewSettingsService(settingsRepo, systemPrefersDark, appLogger)
	checkoutService := service.NewCheckoutService(cartService, sessionService, appLogger)

	catalogService.Load(bootCtx)
	cartService.Load(bootCtx)
	favoritesService.Load(bootCtx)
	sessionService.Load(bootCtx)
	settingsService.Load(bootCtx)

	// Initialize handlers with logger
	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)
	cartHandler := handler.NewCartHandler(cartService, catalogService, checkoutService, appLogger)
	favoritesHandler := handler.NewFavoritesHandler(favoritesService, appLogger)
	sessionHandler := handler.NewSessionHandler(sessionService, appLogger)
	settingsHandler := handler.NewSettingsHandler(settingsService, appRepo, cartService, favoritesService, sessionService, appLogger)

	mux := router.NewRouter(catalogHandler, cartHandler, favoritesHandler, sessionHandler, settingsHandler)

	httpHandler := appLogger.HTTPMiddleware(mux)

	initialPort := flagConfig.Port
	if initialPort == "" {
		initialPort = envconfig.GetEnv("PORT", "8080")
	}
	host := envconfig.GetEnv("HOST", "localhost")

	port := initialPort

	server := &http.Server{
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger)
	}
}

// openStore builds the configured key-value store backend.
func openStore(config envconfig.StorageConfig, appLogger *logger.Logger) (kvstore.Store, error) {
	switch config.Driver {
	case "memory":
		return kvstore.NewMemoryStore(), nil
	case "sqlite":
		return kvstore.NewSQLiteStore(config.SQLitePath, appLogger)
	case "postgres":
		db, err := database.NewConnection(envconfig.LoadDatabaseConfig(), appLogger)
		if err != nil {
			return nil, err
		}
		if err := db.HealthCheck(); err != nil {
			db.Close()
			return nil, err
		}
		return kvstore.NewPostgresStore(db, appLogger)
	case "redis":
		return kvstore.NewRedisStore(config.RedisURL, appLogger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Driver)
	}
}
