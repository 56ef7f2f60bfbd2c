package scraper

import (
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"jwisniewski/listingscraper/config"
	"jwisniewski/listingscraper/helpers"
	"jwisniewski/listingscraper/logger"
	scrapeerrors "jwisniewski/listingscraper/pkg/errors"
)

// Scraper extracts listing fields from single pages over plain HTTP
type Scraper struct {
	client    *http.Client
	userAgent string
	selectors Selectors
	log       *logger.Logger
}

// New creates a new scraper from the application configuration
func New(cfg *config.Config) *Scraper {
	return &Scraper{
		client:    helpers.NewClient(cfg.FetchTimeout),
		userAgent: cfg.UserAgent,
		selectors: Selectors{
			Description:  cfg.DescriptionSelector,
			Price:        cfg.PriceSelector,
			Mileage:      cfg.MileageSelector,
			DetailRow:    cfg.DetailSelector,
			MileageLabel: cfg.MileageLabel,
		},
		log: logger.ForScraper(),
	}
}

// ScrapeListing fetches a listing page and extracts its fields. It never
// returns an error to the caller: transport and HTTP failures are captured
// in the result's Error field with the other fields left at their zero values.
func (s *Scraper) ScrapeListing(url string) ListingResult {
	body, err := helpers.FetchPage(s.client, url, s.userAgent)
	if err != nil {
		scrapeErr := scrapeerrors.NewNetwork(url, "fetch failed", err)
		s.log.Warn().Str("url", url).Err(err).Msg("Fetch failed")
		return ListingResult{Error: scrapeErr.Error()}
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		scrapeErr := scrapeerrors.NewParsing(url, "HTML parse failed", err)
		s.log.Warn().Str("url", url).Err(err).Msg("HTML parse failed")
		return ListingResult{Error: scrapeErr.Error()}
	}

	return s.ParseListing(doc)
}
