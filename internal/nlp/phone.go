package nlp

import (
	"regexp"

	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used to parse numbers written without a country code
const DefaultRegion = "US"

var phoneCandidate = regexp.MustCompile(`\+?\(?\d[\d\s().-]{5,}\d`)

// PhoneFinder finds phone numbers that are valid for their region
type PhoneFinder struct {
	region string
}

// NewPhoneFinder creates a finder that parses local numbers for region
func NewPhoneFinder(region string) *PhoneFinder {
	if region == "" {
		region = DefaultRegion
	}
	return &PhoneFinder{region: region}
}

func (p *PhoneFinder) Find(text string) ([]entity.DataMatch, error) {
	var matches []entity.DataMatch
	for _, loc := range phoneCandidate.FindAllStringIndex(text, -1) {
		num, err := phonenumbers.Parse(text[loc[0]:loc[1]], p.region)
		if err != nil || !phonenumbers.IsValidNumber(num) {
			continue
		}
		matches = append(matches, entity.DataMatch{
			Entity: types.EntityPhoneNumber,
			Start:  loc[0],
			End:    loc[1],
		})
	}
	return matches, nil
}
