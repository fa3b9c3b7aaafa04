package suggest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	ErrNotText      = errors.New("decoded data is not valid UTF-8 text")
	ErrNothingToDo  = errors.New("transform leaves the text unchanged")
	ansiEscape      = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	markdownToHTML  = goldmark.New(goldmark.WithExtensions(extension.GFM))
	base64Encodings = []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
)

// StripANSI removes terminal color and cursor escape sequences
func StripANSI(text string) string {
	return ansiEscape.ReplaceAllString(text, "")
}

// PrettyJSON re-indents a JSON document with two spaces
func PrettyJSON(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(text)), "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DecodeBase64 decodes padded or unpadded, standard or URL-safe base64.
// Line breaks in the input are ignored. The result must be text.
func DecodeBase64(text string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, text)

	var lastErr error
	for _, enc := range base64Encodings {
		data, err := enc.DecodeString(clean)
		if err != nil {
			lastErr = err
			continue
		}
		if !utf8.Valid(data) {
			return "", ErrNotText
		}
		return string(data), nil
	}
	return "", lastErr
}

// DecodeURLEncoded resolves %XX escapes. "+" is left alone.
func DecodeURLEncoded(text string) (string, error) {
	decoded, err := url.PathUnescape(text)
	if err != nil {
		return "", err
	}
	if decoded == text {
		return "", ErrNothingToDo
	}
	return decoded, nil
}

// RenderMarkdown converts GitHub-flavored markdown to HTML
func RenderMarkdown(text string) (string, error) {
	var buf bytes.Buffer
	if err := markdownToHTML.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
