package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Biomed Search API.

The schema is derived from the persisted models, so applying it is
idempotent: missing tables and columns are created, nothing is dropped.

Available subcommands:
  up      - Create or update every table
  status  - Show each table and its row count`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update every table",
	Long: `Create or update the tables for every persisted model.

This brings the configured database up to date. Running it twice is safe.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows table status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

This lists every table the service expects, whether it exists,
and how many rows it holds.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Fprintf(cmd.OutOrStdout(), "Database schema is up to date (%s)\n", cfg.Database.Path)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := connectDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tables, err := db.Status()
	if err != nil {
		return fmt.Errorf("failed to read table status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, t := range tables {
		state := "missing"
		if t.Exists {
			state = fmt.Sprintf("%d rows", t.Rows)
		}
		fmt.Fprintf(out, "  %-28s %s\n", t.Table, state)
	}
	return nil
}
