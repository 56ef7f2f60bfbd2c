package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// applyStrategies applies a series of strategies to a document and
// returns the first non-empty result
func applyStrategies(doc *goquery.Document, strategies []FieldStrategy) string {
	for _, strategy := range strategies {
		if strategy == nil {
			continue
		}
		if result := strategy(doc); result != "" {
			return result
		}
	}
	return ""
}

// ParseListing extracts all listing fields from a parsed page
func (s *Scraper) ParseListing(doc *goquery.Document) ListingResult {
	return ListingResult{
		Title: s.extractTitle(doc),
		Mileage: ParseDigits(applyStrategies(doc, []FieldStrategy{
			s.mileageElement,
			s.detailRowScan,
		})),
		Price: ParseDigits(applyStrategies(doc, []FieldStrategy{
			s.priceElement,
		})),
		Description: applyStrategies(doc, []FieldStrategy{
			s.descriptionParagraphs,
			s.metaDescription,
		}),
	}
}

// extractTitle returns the page title text, trimmed
func (s *Scraper) extractTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// descriptionParagraphs joins the paragraphs of the description
// container with newlines
func (s *Scraper) descriptionParagraphs(doc *goquery.Document) string {
	container := doc.Find(s.selectors.Description).First()
	if container.Length() == 0 {
		return ""
	}

	var paragraphs []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, "\n")
}

// metaDescription falls back to the meta description content attribute
func (s *Scraper) metaDescription(doc *goquery.Document) string {
	content, _ := doc.Find("meta[name='description']").First().Attr("content")
	return strings.TrimSpace(content)
}

// priceElement returns the raw price element text
func (s *Scraper) priceElement(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(s.selectors.Price).First().Text())
}

// mileageElement returns the raw text of the data-attribute-tagged
// mileage element
func (s *Scraper) mileageElement(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(s.selectors.Mileage).First().Text())
}

// detailRowScan scans the generic detail containers for a label/value
// paragraph pair whose label contains the mileage marker
func (s *Scraper) detailRowScan(doc *goquery.Document) string {
	var value string
	doc.Find(s.selectors.DetailRow).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		paragraphs := row.Find("p")
		if paragraphs.Length() < 2 {
			return true
		}

		label := strings.TrimSpace(paragraphs.Eq(0).Text())
		if strings.Contains(label, s.selectors.MileageLabel) {
			value = strings.TrimSpace(paragraphs.Eq(1).Text())
			return false
		}
		return true
	})
	return value
}
