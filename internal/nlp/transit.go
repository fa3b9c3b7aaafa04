package nlp

import (
	"regexp"

	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/berrythewa/copycopy/internal/types"
)

// flight designators: optional "Flight" then a two-character airline code
// and 1-4 digits. Group 1 is the prefix, group 2 the airline code.
var flightNumber = regexp.MustCompile(`\b(?:([Ff]light)\s+)?([A-Z]{2}|[A-Z][0-9]|[0-9][A-Z])\s?\d{1,4}[A-Z]?\b`)

// airlineCodes are the carriers accepted without a "Flight" prefix. Codes
// that are also everyday abbreviations (OK, PS, TV, AM, AS, ...) are left
// out so "OK 2" or "PS 5" stay plain text.
var airlineCodes = map[string]struct{}{
	"AA": {}, "AC": {}, "AF": {}, "AY": {}, "AZ": {}, "B6": {}, "BA": {},
	"CA": {}, "CX": {}, "CZ": {}, "DL": {}, "EI": {}, "EK": {}, "ET": {},
	"EY": {}, "F9": {}, "FR": {}, "G3": {}, "HA": {}, "IB": {}, "JL": {},
	"KE": {}, "KL": {}, "LH": {}, "LX": {}, "MH": {}, "MU": {}, "NH": {},
	"NK": {}, "NZ": {}, "OZ": {}, "QF": {}, "QR": {}, "SK": {}, "SQ": {},
	"SV": {}, "TG": {}, "TK": {}, "TP": {}, "U2": {}, "UA": {}, "VS": {},
	"W6": {}, "WN": {}, "WS": {}, "6E": {},
}

// TransitFinder finds airline flight designators such as "UA 123" or
// "Flight LH400".
type TransitFinder struct{}

func NewTransitFinder() *TransitFinder {
	return &TransitFinder{}
}

func (t *TransitFinder) Find(text string) ([]entity.DataMatch, error) {
	var matches []entity.DataMatch
	for _, loc := range flightNumber.FindAllStringSubmatchIndex(text, -1) {
		prefixed := loc[2] >= 0
		if _, known := airlineCodes[text[loc[4]:loc[5]]]; !prefixed && !known {
			continue
		}
		matches = append(matches, entity.DataMatch{Entity: types.EntityTransitInfo, Start: loc[0], End: loc[1]})
	}
	return matches, nil
}
