// Package entity assigns a semantic tag to plain text.
//
// Detection is a fixed cascade of matchers evaluated in order: pattern
// detectors, structural format detectors, the locale-aware data detector,
// language identification and named-entity recognition. The first matcher
// that reports a tag wins. The order is data (see Detector.Names) so it
// can be inspected and tested directly.
package entity

import (
	"strings"

	"github.com/berrythewa/copycopy/internal/types"
	"go.uber.org/zap"
)

// Sample is the input handed to every matcher
type Sample struct {
	Text string // trimmed text
	Raw  string // text as it was received
}

// Matcher is a single step of the cascade
type Matcher interface {
	Name() string
	Match(s Sample) (types.Entity, bool)
}

// Detection is the tag chosen for a text and the matcher that chose it
type Detection struct {
	Entity  types.Entity `json:"entity"`
	Matcher string       `json:"matcher,omitempty"`
}

// Config wires the detector. Nil capabilities disable their stage.
type Config struct {
	Thresholds Thresholds
	Limits     Limits

	Data     DataDetector
	Language LanguageIdentifier
	Names    NamedEntityRecognizer

	Logger *zap.Logger
}

// Detector runs the entity cascade. It holds no mutable state and is safe
// for concurrent use.
type Detector struct {
	matchers   []Matcher
	thresholds Thresholds
	limits     Limits
	logger     *zap.Logger
}

// New builds a detector with the stock pattern and structural detectors
// followed by whichever capability stages are configured.
func New(cfg Config) *Detector {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Detector{
		thresholds: cfg.Thresholds.withDefaults(),
		limits:     cfg.Limits.withDefaults(),
		logger:     logger,
	}

	for _, m := range compilePatterns(patternSpecs, logger) {
		d.matchers = append(d.matchers, capped(m, d.limits.MaxPatternInput))
	}
	for _, m := range structuralMatchers(d.thresholds) {
		d.matchers = append(d.matchers, capped(m, d.limits.MaxStructuralInput))
	}
	if cfg.Data != nil {
		d.matchers = append(d.matchers, &dataStage{
			detector: cfg.Data,
			coverage: d.thresholds.Coverage,
			maxInput: d.limits.MaxLanguageInput,
			logger:   logger,
		})
	}
	if cfg.Language != nil {
		d.matchers = append(d.matchers, &languageStage{
			identifier: cfg.Language,
			confidence: d.thresholds.LanguageConfidence,
			minLength:  d.thresholds.MinLanguageLength,
			maxInput:   d.limits.MaxLanguageInput,
			logger:     logger,
		})
	}
	if cfg.Names != nil {
		d.matchers = append(d.matchers, &namesStage{
			recognizer: cfg.Names,
			density:    d.thresholds.NameDensity,
			maxInput:   d.limits.MaxLanguageInput,
			logger:     logger,
		})
	}

	return d
}

// Detect returns the entity tag for text, or EntityNone
func (d *Detector) Detect(text string) types.Entity {
	return d.Trace(text).Entity
}

// Trace is Detect plus the name of the matcher that fired
func (d *Detector) Trace(text string) Detection {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Detection{Entity: types.EntityNone}
	}

	s := Sample{Text: trimmed, Raw: text}
	for _, m := range d.matchers {
		if tag, ok := m.Match(s); ok {
			d.logger.Debug("Entity detected",
				zap.String("matcher", m.Name()),
				zap.String("entity", string(tag)),
				zap.Int("length", len(trimmed)))
			return Detection{Entity: tag, Matcher: m.Name()}
		}
	}
	return Detection{Entity: types.EntityNone}
}

// Names lists the matchers in evaluation order
func (d *Detector) Names() []string {
	names := make([]string, 0, len(d.matchers))
	for _, m := range d.matchers {
		names = append(names, m.Name())
	}
	return names
}

// Thresholds returns the effective thresholds
func (d *Detector) Thresholds() Thresholds {
	return d.thresholds
}

// cappedMatcher skips texts longer than max bytes
type cappedMatcher struct {
	Matcher
	max int
}

func capped(m Matcher, max int) Matcher {
	return &cappedMatcher{Matcher: m, max: max}
}

func (c *cappedMatcher) Match(s Sample) (types.Entity, bool) {
	if len(s.Text) > c.max {
		return types.EntityNone, false
	}
	return c.Matcher.Match(s)
}
