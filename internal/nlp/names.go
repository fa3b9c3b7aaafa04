package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/jdkato/prose/v2"
)

// entityLabels maps prose's entity labels onto name categories
var entityLabels = map[string]entity.NameCategory{
	"PERSON":       entity.NamePersonal,
	"GPE":          entity.NamePlace,
	"LOC":          entity.NamePlace,
	"ORG":          entity.NameOrganization,
	"ORGANIZATION": entity.NameOrganization,
}

// ProseRecognizer tags words using prose's entity extractor, then relabels
// spans a small gazetteer recognizes. The extractor alone misses standalone
// names such as "London" or "Apple Inc".
type ProseRecognizer struct{}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// TagWords implements entity.NamedEntityRecognizer
func (p *ProseRecognizer) TagWords(text string) ([]entity.TaggedWord, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("tag words: %w", err)
	}

	var words []entity.TaggedWord
	for _, tok := range doc.Tokens() {
		if isWord(tok.Text) {
			words = append(words, entity.TaggedWord{Word: tok.Text})
		}
	}

	// Entities are reported in text order; walk the words once and label
	// each entity's words where they next occur.
	next := 0
	for _, ent := range doc.Entities() {
		category, ok := entityLabels[ent.Label]
		if !ok {
			continue
		}
		for _, part := range strings.Fields(ent.Text) {
			for i := next; i < len(words); i++ {
				if words[i].Word == part {
					words[i].Category = category
					next = i + 1
					break
				}
			}
		}
	}
	labelKnownNames(words)
	return words, nil
}

// isWord reports whether a token contains a letter or digit
func isWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
