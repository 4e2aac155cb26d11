package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridloom/gridloom/internal/bootstrap"
	"github.com/gridloom/gridloom/internal/catalog"
	"github.com/gridloom/gridloom/internal/config"
	"github.com/gridloom/gridloom/internal/database"
	"github.com/gridloom/gridloom/internal/handler"
	"github.com/gridloom/gridloom/internal/market"
	"github.com/gridloom/gridloom/internal/server"
	"github.com/gridloom/gridloom/internal/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. Initialize logging (stdout + session file)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// 3. Connect to the database and apply pending migrations
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.Migrate(dbPool); err != nil {
		return err
	}

	// 4. Initialize repositories and sync the item catalog
	repos := bootstrap.InitializeRepositories(dbPool)

	ctx := context.Background()
	if err := bootstrap.SyncCatalog(ctx, repos.Catalog, cfg.ItemsConfigPath); err != nil {
		return err
	}

	// 5. Initialize the event system
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	// 6. Initialize services. Post-commit events go through the resilient
	// publisher so a slow handler never blocks a request.
	catalogService := catalog.NewService(repos.Catalog, repos.Market)
	userService := user.NewService(repos.Account, catalogService, resilientPublisher,
		user.WithCache(cfg.CacheSize, cfg.CacheTTL))
	marketService := market.NewService(repos.Market, catalogService, resilientPublisher)

	// 7. Register event handlers
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:    eventBus,
		UserService: userService,
	}); err != nil {
		return err
	}

	// 8. Initialize request validation and the HTTP server
	handler.InitValidator()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
		DBPool:         dbPool,
		UserService:    userService,
		MarketService:  marketService,
		CatalogService: catalogService,
	})

	// 9. Start serving and wait for a shutdown signal
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: resilientPublisher,
	})

	return nil
}
