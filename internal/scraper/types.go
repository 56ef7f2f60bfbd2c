package scraper

import "github.com/PuerkitoBio/goquery"

// ListingResult represents the fields scraped from a single listing page.
// A non-empty Error means the other fields hold their zero values.
type ListingResult struct {
	Title       string
	Mileage     *int
	Price       *int
	Description string
	Error       string
}

// Selectors contains CSS selectors for various elements in a listing page
type Selectors struct {
	// Description is the container whose paragraphs form the seller description
	Description string
	// Price is the price element
	Price string
	// Mileage is the data-attribute-tagged mileage element
	Mileage string
	// DetailRow is the generic label/value detail container
	DetailRow string
	// MileageLabel is the label text identifying the odometer reading
	MileageLabel string
}

// FieldStrategy extracts a single field's raw text from a document.
// Strategies for one field are tried in order; the first non-empty
// result wins.
type FieldStrategy func(doc *goquery.Document) string
