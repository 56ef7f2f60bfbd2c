package batch

import (
	"strings"
	"time"

	"jwisniewski/listingscraper/internal/scraper"
	"jwisniewski/listingscraper/internal/sheet"
	"jwisniewski/listingscraper/logger"
)

// Output column names. They stay stable across runs so that re-running
// against an already augmented sheet reuses the columns instead of
// duplicating them.
const (
	ColTitle       = "Title"
	ColMileage     = "Przebieg"
	ColPrice       = "Price"
	ColDescription = "Description"
	ColError       = "Error"
)

// PageScraper extracts listing fields for a single URL
type PageScraper interface {
	ScrapeListing(url string) scraper.ListingResult
}

// Runner drives the scraper over every row of a table, one fetch in
// flight at a time
type Runner struct {
	scraper  PageScraper
	throttle time.Duration
	log      *logger.Logger
}

// NewRunner creates a new batch runner
func NewRunner(s PageScraper, throttle time.Duration) *Runner {
	return &Runner{
		scraper:  s,
		throttle: throttle,
		log:      logger.ForBatch(),
	}
}

// Run processes every row with a non-empty URL in the first column and
// merges the scraped fields into the row. Rows with an empty URL cell
// are skipped entirely. A failed fetch is recorded in the row's Error
// cell and never aborts the run. After all rows, the mileage and price
// columns are coerced to nullable integers.
func (r *Runner) Run(table *sheet.Table) {
	titleCol := table.EnsureColumn(ColTitle)
	mileageCol := table.EnsureColumn(ColMileage)
	priceCol := table.EnsureColumn(ColPrice)
	descriptionCol := table.EnsureColumn(ColDescription)
	errorCol := table.EnsureColumn(ColError)

	for row := 0; row < table.RowCount(); row++ {
		url := strings.TrimSpace(table.CellString(row, 0))
		if url == "" {
			continue
		}

		r.log.Info().Int("row", row).Str("url", url).Msg("Scraping listing")

		result := r.scraper.ScrapeListing(url)
		if result.Error != "" {
			r.log.Warn().
				Int("row", row).
				Str("url", url).
				Str("error", result.Error).
				Msg("Listing failed")
		}

		table.SetCell(row, titleCol, result.Title)
		table.SetCell(row, mileageCol, intCell(result.Mileage))
		table.SetCell(row, priceCol, intCell(result.Price))
		table.SetCell(row, descriptionCol, result.Description)
		table.SetCell(row, errorCol, result.Error)

		// Courtesy pause between fetches
		time.Sleep(r.throttle)
	}

	table.CoerceInt(ColMileage)
	table.CoerceInt(ColPrice)
}

// intCell converts an optional integer into a table cell value
func intCell(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
