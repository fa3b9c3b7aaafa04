package actions

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ProcessTemplate expands the action's placeholders with text:
//
//	{text}, {TEXT}                  the text as copied
//	{text:encoded}, {TEXT:ENCODED}  percent-encoded for a URL query
//	{text:trimmed}                  without surrounding whitespace
//	{linecount}                     number of newline-separated lines
//	{charcount}                     number of characters
//
// Placeholders are replaced in a single pass, so placeholders appearing in
// text itself are left alone.
func (a CustomAction) ProcessTemplate(text string) string {
	encoded := QueryEscape(text)
	r := strings.NewReplacer(
		"{text}", text,
		"{TEXT}", text,
		"{text:encoded}", encoded,
		"{TEXT:ENCODED}", encoded,
		"{text:trimmed}", strings.TrimSpace(text),
		"{linecount}", strconv.Itoa(LineCount(text)),
		"{charcount}", strconv.Itoa(utf8.RuneCountInString(text)),
	)
	return r.Replace(a.Template)
}

// LineCount counts the components between newline characters. Every
// newline rune separates, so "a\r\nb" has three components.
func LineCount(text string) int {
	n := 1
	for _, r := range text {
		if isNewline(r) {
			n++
		}
	}
	return n
}

func isNewline(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

const upperhex = "0123456789ABCDEF"

// QueryEscape percent-encodes every byte outside the set allowed in a URL
// query. Unlike url.QueryEscape, spaces become %20 and the sub-delimiters
// "&", "=", "+" and "?" are kept.
func QueryEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if queryAllowed(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func queryAllowed(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!$&'()*+,-./:;=?@_~", c) >= 0
}
