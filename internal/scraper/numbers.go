package scraper

import (
	"regexp"
	"strconv"
)

// nonDigitRe matches every character that is not a decimal digit
var nonDigitRe = regexp.MustCompile(`[^0-9]`)

// ParseDigits strips every non-digit character from text and parses the
// remaining digits as an integer. It returns nil if no digits remain.
func ParseDigits(text string) *int {
	if text == "" {
		return nil
	}

	digits := nonDigitRe.ReplaceAllString(text, "")
	if digits == "" {
		return nil
	}

	value, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &value
}
