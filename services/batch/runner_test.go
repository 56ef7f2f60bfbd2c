package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jwisniewski/listingscraper/internal/scraper"
	"jwisniewski/listingscraper/internal/sheet"
)

// MockScraper implements the PageScraper interface for testing
type MockScraper struct {
	results map[string]scraper.ListingResult
	calls   []string
}

// Ensure MockScraper implements PageScraper
var _ PageScraper = (*MockScraper)(nil)

func (m *MockScraper) ScrapeListing(url string) scraper.ListingResult {
	m.calls = append(m.calls, url)
	return m.results[url]
}

func newTable(urls ...interface{}) *sheet.Table {
	table := &sheet.Table{Headers: []string{"URL", "Note"}}
	for i, url := range urls {
		table.Rows = append(table.Rows, []interface{}{url, i})
	}
	return table
}

func TestRunMergesResults(t *testing.T) {
	mileage := 150000
	price := 49900
	mock := &MockScraper{results: map[string]scraper.ListingResult{
		"https://example.com/offer/1": {
			Title:       "BMW 320d",
			Mileage:     &mileage,
			Price:       &price,
			Description: "Pierwszy właściciel.",
		},
	}}

	table := newTable("https://example.com/offer/1")
	NewRunner(mock, 0).Run(table)

	assert.Equal(t, []string{"URL", "Note", "Title", "Przebieg", "Price", "Description", "Error"}, table.Headers)
	assert.Equal(t, "BMW 320d", table.Cell(0, 2))
	assert.Equal(t, 150000, table.Cell(0, 3))
	assert.Equal(t, 49900, table.Cell(0, 4))
	assert.Equal(t, "Pierwszy właściciel.", table.Cell(0, 5))
	assert.Equal(t, "", table.Cell(0, 6))
}

func TestRunSkipsEmptyURLRows(t *testing.T) {
	mock := &MockScraper{results: map[string]scraper.ListingResult{
		"https://example.com/offer/1": {Title: "Offer 1"},
	}}

	table := newTable("https://example.com/offer/1", "", "   ")
	NewRunner(mock, 0).Run(table)

	// Only the first row was fetched
	assert.Equal(t, []string{"https://example.com/offer/1"}, mock.calls)

	// Skipped rows were not widened with output cells
	assert.Len(t, table.Rows[1], 2)
	assert.Len(t, table.Rows[2], 2)
}

func TestRunContinuesAfterRowError(t *testing.T) {
	price := 1000
	mock := &MockScraper{results: map[string]scraper.ListingResult{
		"https://example.com/offer/1": {Error: "[network] fetch failed"},
		"https://example.com/offer/2": {Title: "Offer 2", Price: &price},
	}}

	table := newTable("https://example.com/offer/1", "https://example.com/offer/2")
	NewRunner(mock, 0).Run(table)

	require.Len(t, mock.calls, 2)

	// Failed row: error recorded, other fields empty/nil
	assert.Equal(t, "[network] fetch failed", table.Cell(0, 6))
	assert.Equal(t, "", table.Cell(0, 2))
	assert.Nil(t, table.Cell(0, 4))

	// Following row scraped normally
	assert.Equal(t, "Offer 2", table.Cell(1, 2))
	assert.Equal(t, 1000, table.Cell(1, 4))
	assert.Equal(t, "", table.Cell(1, 6))
}

func TestRunReusesExistingColumns(t *testing.T) {
	mock := &MockScraper{results: map[string]scraper.ListingResult{
		"https://example.com/offer/1": {Title: "fresh"},
	}}

	// Simulate a sheet augmented by a previous run
	table := &sheet.Table{
		Headers: []string{"URL", "Title", "Przebieg", "Price", "Description", "Error"},
		Rows: [][]interface{}{
			{"https://example.com/offer/1", "stale", "1", "2", "old", "old error"},
		},
	}

	NewRunner(mock, 0).Run(table)

	assert.Len(t, table.Headers, 6)
	assert.Equal(t, "fresh", table.Cell(0, 1))
	assert.Nil(t, table.Cell(0, 2))
	assert.Equal(t, "", table.Cell(0, 5))
}

func TestRunIsIdempotentOnStableResults(t *testing.T) {
	mileage := 120500
	mock := &MockScraper{results: map[string]scraper.ListingResult{
		"https://example.com/offer/1": {Title: "Offer 1", Mileage: &mileage},
	}}

	table := newTable("https://example.com/offer/1")
	runner := NewRunner(mock, 0)

	runner.Run(table)
	first := make([]interface{}, len(table.Rows[0]))
	copy(first, table.Rows[0])

	runner.Run(table)

	assert.Equal(t, first, table.Rows[0])
}
