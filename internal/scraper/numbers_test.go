package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *int
	}{
		{"plain number", "49900", intPtr(49900)},
		{"spaced price with currency", "49 900 zł", intPtr(49900)},
		{"mileage with unit", "150 000 km", intPtr(150000)},
		{"surrounding whitespace", "  123 456  ", intPtr(123456)},
		{"thousands separators", "1,234,567", intPtr(1234567)},
		{"empty string", "", nil},
		{"no digits", "brak danych", nil},
		{"only punctuation", " - ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseDigits(tt.input)
			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}

func intPtr(v int) *int {
	return &v
}
