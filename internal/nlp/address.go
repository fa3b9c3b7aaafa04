package nlp

import (
	"regexp"

	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/berrythewa/copycopy/internal/types"
)

var streetAddress = regexp.MustCompile(`(?i)\b\d{1,6}\s+(?:[a-z0-9.'-]+\s+){0,4}` +
	`(?:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|way|` +
	`place|pl|terrace|parkway|pkwy|circle|cir|highway|hwy|square|sq)\b\.?` +
	`(?:,?\s+(?:apt|suite|ste|unit|#)\.?\s*[a-z0-9-]+)?` +
	`(?:,\s*[a-z][a-z .'-]*)?` +
	`(?:,\s*[a-z]{2}\s+\d{5}(?:-\d{4})?)?`)

// AddressFinder finds street addresses of the "number street suffix" shape,
// optionally followed by unit, city and state with ZIP code.
type AddressFinder struct{}

func NewAddressFinder() *AddressFinder {
	return &AddressFinder{}
}

func (a *AddressFinder) Find(text string) ([]entity.DataMatch, error) {
	return findAll(streetAddress, text, types.EntityAddress), nil
}

func findAll(re *regexp.Regexp, text string, tag types.Entity) []entity.DataMatch {
	var matches []entity.DataMatch
	for _, loc := range re.FindAllStringIndex(text, -1) {
		matches = append(matches, entity.DataMatch{Entity: tag, Start: loc[0], End: loc[1]})
	}
	return matches
}
