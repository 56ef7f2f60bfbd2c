package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"jwisniewski/listingscraper/config"
	"jwisniewski/listingscraper/internal/scraper"
	"jwisniewski/listingscraper/internal/sheet"
	"jwisniewski/listingscraper/logger"
	"jwisniewski/listingscraper/services/batch"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "listingscraper <input.xlsx> [output.xlsx]",
		Short: "Scrape listing pages referenced by a spreadsheet",
		Long: `listingscraper reads listing URLs from the first column of an xlsx
spreadsheet, fetches each page sequentially, extracts the title, mileage,
price and description, and writes an augmented spreadsheet with those
columns filled in. Fetch failures are recorded per row and never abort
the batch.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	inputPath := args[0]
	outputPath := defaultOutputPath(inputPath, cfg.OutputSuffix)
	if len(args) == 2 {
		outputPath = args[1]
	}

	log.Info().
		Str("environment", cfg.Environment).
		Dur("throttle", cfg.Throttle).
		Str("input", inputPath).
		Msg("Starting batch scrape")

	table, err := sheet.Read(inputPath)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(scraper.New(cfg), cfg.Throttle)
	runner.Run(table)

	if err := table.Write(outputPath); err != nil {
		return err
	}

	log.Info().
		Int("rows", table.RowCount()).
		Str("output", outputPath).
		Msg("Batch scrape finished")
	return nil
}

// defaultOutputPath appends the suffix to the input file name, before
// the extension
func defaultOutputPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + suffix + ext
}
