package entity

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/berrythewa/copycopy/internal/types"
)

var (
	base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
	percentEscape  = regexp.MustCompile(`%[0-9A-Fa-f]{2}`)
	markdownLink   = regexp.MustCompile(`\[[^\]\n]*\]\(`)
)

var markdownMarkers = []string{"# ", "## ", "```", "**", "__", "!["}

var codeMarkers = []string{
	"func ", "def ", "function ", "class ", "import ", "const ", "let ", "var ",
	"if (", "if(", "for (", "for(", "while (", "while(",
	"return ", "=> ", "->", "::", "public ", "private ", "static ",
}

// structuralFunc adapts a predicate into a Matcher
type structuralFunc struct {
	name string
	tag  types.Entity
	fn   func(text string) bool
}

func (f structuralFunc) Name() string { return f.name }

func (f structuralFunc) Match(s Sample) (types.Entity, bool) {
	if f.fn(s.Text) {
		return f.tag, true
	}
	return types.EntityNone, false
}

func structuralMatchers(t Thresholds) []Matcher {
	return []Matcher{
		structuralFunc{name: "json", tag: types.EntityJSON, fn: isJSON},
		structuralFunc{name: "base64", tag: types.EntityBase64, fn: func(text string) bool {
			return isBase64(text, t.MinBase64Length)
		}},
		structuralFunc{name: "url_encoded", tag: types.EntityURLEncoded, fn: isURLEncoded},
		structuralFunc{name: "markdown", tag: types.EntityMarkdown, fn: func(text string) bool {
			return isMarkdown(text, t.MinMarkdownLength)
		}},
		structuralFunc{name: "code_snippet", tag: types.EntityCodeSnippet, fn: isCode},
	}
}

func isJSON(text string) bool {
	if len(text) < 2 {
		return false
	}
	first, last := text[0], text[len(text)-1]
	if !(first == '{' && last == '}') && !(first == '[' && last == ']') {
		return false
	}
	return json.Valid([]byte(text))
}

func isBase64(text string, minLength int) bool {
	compact := strings.NewReplacer("\r", "", "\n", "").Replace(text)
	if len(compact) < minLength || !base64Alphabet.MatchString(compact) {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(compact)
	return err == nil && len(decoded) > 0
}

func isURLEncoded(text string) bool {
	if !percentEscape.MatchString(text) {
		return false
	}
	decoded, err := url.PathUnescape(text)
	return err == nil && decoded != text
}

func isMarkdown(text string, minLength int) bool {
	if utf8.RuneCountInString(text) <= minLength {
		return false
	}
	for _, marker := range markdownMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return markdownLink.MatchString(text)
}

func isCode(text string) bool {
	for _, marker := range codeMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
