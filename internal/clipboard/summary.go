package clipboard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/berrythewa/copycopy/internal/types"
)

func filesSummary(count int, exts []string) string {
	if len(exts) == 0 {
		return fmt.Sprintf("%d file(s)", count)
	}
	return fmt.Sprintf("%d file(s) (%s)", count, strings.Join(exts, ", "))
}

func urlSummary(host string) string {
	if host == "" {
		return "URL"
	}
	return "URL — " + host
}

func imageSummary(width, height int) string {
	return fmt.Sprintf("Image %d×%d", width, height)
}

// textSummary shows at most max characters of text; the count is always
// that of the full text
func textSummary(text string, max int) string {
	count := utf8.RuneCountInString(text)
	short := text
	if count > max {
		short = string([]rune(text)[:max]) + "…"
	}
	return fmt.Sprintf("Text (%d chars): %s", count, short)
}

func richTextSummary(format types.RichTextFormat) string {
	return fmt.Sprintf("Rich text (%s)", format.Label())
}

func unknownSummary(formats []string) string {
	if len(formats) == 0 {
		return "Unknown content"
	}
	return "Unknown types: " + strings.Join(formats, ", ")
}
