package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/berrythewa/copycopy/internal/types"
	"go.uber.org/zap"
)

// dataStage accepts the earliest data-detector match when it spans more
// than the coverage threshold of the text. Texts above maxInput are not
// searched since coverage over a prefix would be meaningless.
type dataStage struct {
	detector DataDetector
	coverage float64
	maxInput int
	logger   *zap.Logger
}

func (d *dataStage) Name() string { return "data_detector" }

func (d *dataStage) Match(s Sample) (types.Entity, bool) {
	if len(s.Text) > d.maxInput {
		return types.EntityNone, false
	}

	matches, err := d.detector.Find(s.Text)
	if err != nil {
		d.logger.Debug("Data detector failed", zap.Error(err))
		return types.EntityNone, false
	}

	first, ok := earliest(matches, len(s.Text))
	if !ok {
		return types.EntityNone, false
	}

	span := utf8.RuneCountInString(s.Text[first.Start:first.End])
	total := utf8.RuneCountInString(s.Text)
	if float64(span)/float64(total) <= d.coverage {
		return types.EntityNone, false
	}
	return first.Entity, true
}

// earliest returns the valid match with the lowest start offset, preferring
// the longer span when two start at the same offset.
func earliest(matches []DataMatch, size int) (DataMatch, bool) {
	var best DataMatch
	found := false
	for _, m := range matches {
		if m.Entity.IsNone() || m.Start < 0 || m.End > size || m.Start >= m.End {
			continue
		}
		if !found || m.Start < best.Start || (m.Start == best.Start && m.End > best.End) {
			best, found = m, true
		}
	}
	return best, found
}

// languageStage reports non-English text identified with high confidence
type languageStage struct {
	identifier LanguageIdentifier
	confidence float64
	minLength  int
	maxInput   int
	logger     *zap.Logger
}

func (l *languageStage) Name() string { return "language" }

func (l *languageStage) Match(s Sample) (types.Entity, bool) {
	if utf8.RuneCountInString(s.Text) <= l.minLength {
		return types.EntityNone, false
	}

	lang, err := l.identifier.Identify(truncate(s.Text, l.maxInput))
	if err != nil {
		l.logger.Debug("Language identification failed", zap.Error(err))
		return types.EntityNone, false
	}

	code := strings.ToLower(lang.Code)
	if code == "" || code == "und" || code == "en" {
		return types.EntityNone, false
	}
	if lang.Confidence <= l.confidence {
		return types.EntityNone, false
	}
	return types.EntityForeignLanguage, true
}

// namesStage tags the text with the dominant name category when that
// category holds more than the density threshold of all words.
//
// Equal counts resolve to the category encountered first in the text, so
// the outcome depends on word order and on the recognizer's tagging.
type namesStage struct {
	recognizer NamedEntityRecognizer
	density    float64
	maxInput   int
	logger     *zap.Logger
}

func (n *namesStage) Name() string { return "named_entity" }

func (n *namesStage) Match(s Sample) (types.Entity, bool) {
	words, err := n.recognizer.TagWords(truncate(s.Text, n.maxInput))
	if err != nil {
		n.logger.Debug("Named entity recognition failed", zap.Error(err))
		return types.EntityNone, false
	}
	if len(words) == 0 {
		return types.EntityNone, false
	}

	counts := make(map[NameCategory]int)
	var order []NameCategory
	for _, w := range words {
		if w.Category == NameNone {
			continue
		}
		if _, seen := counts[w.Category]; !seen {
			order = append(order, w.Category)
		}
		counts[w.Category]++
	}

	var top NameCategory
	best := 0
	for _, c := range order {
		if counts[c] > best {
			top, best = c, counts[c]
		}
	}
	if best == 0 {
		return types.EntityNone, false
	}

	if float64(best)/float64(len(words)) <= n.density {
		return types.EntityNone, false
	}
	return top.entity(), true
}

// truncate cuts s to at most max bytes without splitting a rune
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
