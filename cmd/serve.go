package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/biomed-search/api"
	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/internal/database"
	"github.com/killallgit/biomed-search/internal/metrics"
	"github.com/killallgit/biomed-search/internal/services/auth"
	"github.com/killallgit/biomed-search/internal/services/history"
	"github.com/killallgit/biomed-search/internal/services/search"
	"github.com/killallgit/biomed-search/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Biomed Search API server with the configured settings.

The database schema is migrated on startup. Token validation is enabled
when a JWKS URL, a signing secret or a dev token is configured.

Example:
  biomed-search serve
  biomed-search serve --port 9090
  biomed-search serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags win over config values
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	server, err := buildServer(cfg, db, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Info("server is ready to handle requests", zap.String("address", server.Address()))

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case runErr = <-serverErr:
		log.Error("server stopped unexpectedly", zap.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("server gracefully stopped")
	return runErr
}

// buildServer wires the services behind the HTTP API
func buildServer(cfg *config.Config, db *database.DB, log *zap.Logger) (*api.Server, error) {
	deps := &types.Dependencies{
		DB:     db,
		Logger: log,
		Config: cfg,
		SearchService: search.NewService(db.DB,
			search.WithLogger(log),
			search.WithRecorder(metrics.NewSearchRecorder(search.CollectionNames(), search.SchemaNames())),
		),
	}

	if cfg.History.Enabled {
		historyService, err := history.NewService(history.NewRepository(db.DB), cfg.History.PoolSize,
			history.WithLogger(log),
			history.WithWriteTimeout(cfg.History.WriteTimeout),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start history service: %w", err)
		}
		deps.HistoryService = historyService
	}

	authService, err := auth.NewService(auth.Config{
		JWKSURL:        cfg.Auth.JWKSURL,
		Secret:         cfg.Auth.JWTSecret,
		DevAuthEnabled: cfg.Auth.DevAuthEnabled,
		DevAuthToken:   cfg.Auth.DevAuthToken,
	})
	switch {
	case errors.Is(err, auth.ErrNoVerifier):
		log.Warn("no token verifier configured, all requests are anonymous")
	case err != nil:
		if deps.HistoryService != nil {
			deps.HistoryService.Close()
		}
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	default:
		deps.TokenValidator = authService
	}

	server := api.NewServer(cfg.Server, log)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}
	return server, nil
}
