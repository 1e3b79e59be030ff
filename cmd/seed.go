package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/biomed-search/internal/seed"
)

var seedFile string

// seedCmd loads fixture records into the database
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture records",
	Long: `Insert the studies, papers and data domains from a YAML fixture.

The schema is migrated first and every record is inserted in a single
transaction, so a bad fixture leaves the database unchanged.

Example:
  biomed-search seed --file config/seed.yaml`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "config/seed.yaml", "fixture file to load")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fixture, err := seed.Load(seedFile)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	counts, err := seed.Apply(cmd.Context(), db.DB, fixture)
	if err != nil {
		return fmt.Errorf("failed to apply fixture: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d studies, %d data products, %d papers, %d data domains\n",
		counts.Studies, counts.DataProducts, counts.Papers, counts.Domains)
	return nil
}
