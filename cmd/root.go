package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/biomed-search/internal/database"
	"github.com/killallgit/biomed-search/pkg/config"
	"github.com/killallgit/biomed-search/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "biomed-search",
	Short: "Biomed Search API server",
	Long: `Biomed Search API - search across biomedical collections

This API serves a single search surface over several record collections
and renders results in the shape each client asks for.

Collections:
  • clinical_study    clinical studies with their data products
  • scientific_paper  published papers with role-based visibility
  • data_domain       dataset metadata and schemas

Authenticated callers also get a search history and saved searches.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.json", rootCmd.PersistentFlags().Lookup("json-logs"))
}

// loadConfig loads the configuration when a command needs it.
// Commands call this lazily so version and help work without a settings file.
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}
	return config.GetConfig()
}

// newLogger builds the process logger from the logging settings
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Environment, cfg.Logging.Level, cfg.Logging.JSON)
}

// connectDatabase opens the configured database without touching its schema
func connectDatabase(cfg config.DatabaseConfig) (*database.DB, error) {
	db, err := database.Initialize(database.Config{
		Path:            cfg.Path,
		MaxOpenConns:    cfg.MaxConnections,
		MaxIdleConns:    cfg.MaxIdleConnections,
		ConnMaxLifetime: cfg.ConnectionMaxLifetime,
		LogQueries:      cfg.LogQueries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// openDatabase connects to the configured database and brings its schema up to date
func openDatabase(cfg config.DatabaseConfig) (*database.DB, error) {
	db, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
