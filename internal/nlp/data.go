// Package nlp provides the locale-aware capabilities the entity cascade
// relies on: a data detector for phone numbers, dates, postal addresses and
// transit information, a language identifier and a named-entity recognizer.
package nlp

import (
	"errors"
	"sort"

	"github.com/berrythewa/copycopy/internal/entity"
	"go.uber.org/zap"
)

// Finder locates one family of data inside a text
type Finder interface {
	Find(text string) ([]entity.DataMatch, error)
}

// DataDetector merges the matches of several finders ordered by position.
// A failing finder is skipped; an error is returned only if every finder
// failed.
type DataDetector struct {
	finders []Finder
	logger  *zap.Logger
}

// NewDataDetector creates a detector over the given finders
func NewDataDetector(logger *zap.Logger, finders ...Finder) *DataDetector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataDetector{finders: finders, logger: logger}
}

// Find implements entity.DataDetector
func (d *DataDetector) Find(text string) ([]entity.DataMatch, error) {
	var (
		matches []entity.DataMatch
		errs    []error
	)
	for _, f := range d.finders {
		found, err := f.Find(text)
		if err != nil {
			d.logger.Debug("Finder failed", zap.Error(err))
			errs = append(errs, err)
			continue
		}
		matches = append(matches, found...)
	}
	if len(errs) > 0 && len(errs) == len(d.finders) {
		return nil, errors.Join(errs...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End > matches[j].End
	})
	return matches, nil
}
