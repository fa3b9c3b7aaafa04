package format

import (
	"fmt"
	"strings"

	"github.com/berrythewa/copycopy/internal/suggest"
	"github.com/berrythewa/copycopy/internal/types"
)

// Formatter renders classification results for the terminal
type Formatter struct {
	options Options
}

// New creates a new formatter with the given options
func New(opts Options) *Formatter {
	return &Formatter{options: opts}
}

// NewDefault creates a new formatter with default options
func NewDefault() *Formatter {
	return New(DefaultOptions())
}

// FormatResult formats one classification result
func (f *Formatter) FormatResult(r *types.Result) string {
	if r == nil {
		return ColorizeIf("No content", Gray, f.options.UseColors)
	}

	header := f.formatHeader(r)
	if f.options.Compact {
		return header + " " + f.preview(r.Summary)
	}

	parts := []string{header, "  " + BoldIf(r.Summary, f.options.UseColors)}
	if !r.Entity.IsNone() {
		parts = append(parts, formatStatLine("Entity", r.Entity.DisplayName(), f.options))
	}
	if f.options.ShowDetails {
		parts = append(parts, f.formatDetails(r)...)
	}
	return strings.Join(parts, "\n")
}

// Separator returns the rule printed between results
func (f *Formatter) Separator() string {
	return CreateSeparator(f.options)
}

// FormatSuggestions lists suggestions with their target
func (f *Formatter) FormatSuggestions(list []suggest.Suggestion) string {
	if len(list) == 0 {
		return ColorizeIf("No suggestions", Gray, f.options.UseColors)
	}

	width := 0
	for _, s := range list {
		if w := displayWidth(s.Title); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(list))
	for i, s := range list {
		title := PadRight(s.Title, width)
		line := fmt.Sprintf("%2d. %s", i+1, ColorizeIf(title, BrightCyan, f.options.UseColors))

		detail := s.Subtitle
		switch {
		case s.Argument != "" && s.Argument != s.Subtitle:
			detail = s.Argument
		case len(s.Paths) > 0 && detail == "":
			detail = strings.Join(s.Paths, ", ")
		}
		if detail != "" {
			line += "  " + DimIf(f.preview(detail), f.options.UseColors)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// FormatStats formats classification statistics
func (f *Formatter) FormatStats(stats *EntityStats) string {
	return FormatStats(stats, f.options)
}

func (f *Formatter) formatHeader(r *types.Result) string {
	var parts []string
	if f.options.UseIcons {
		if icon, ok := KindIcons[r.Kind]; ok {
			parts = append(parts, icon)
		}
	}
	parts = append(parts, ColorizeIf(string(r.Kind), KindColors[r.Kind], f.options.UseColors))
	if f.options.Compact && !r.Entity.IsNone() {
		parts = append(parts, DimIf("["+string(r.Entity)+"]", f.options.UseColors))
	}
	return strings.Join(parts, " ")
}

// formatDetails returns the kind-specific lines of a result
func (f *Formatter) formatDetails(r *types.Result) []string {
	var lines []string
	stat := func(label, value string) {
		lines = append(lines, formatStatLine(label, value, f.options))
	}

	switch r.Kind {
	case types.KindFileReferences:
		for _, p := range r.FilePaths {
			stat("Path", f.preview(p))
		}
		if len(r.Extensions) > 0 {
			stat("Extensions", strings.Join(r.Extensions, ", "))
		}
	case types.KindURL:
		stat("URL", f.preview(r.URL))
		stat("Host", r.Host)
	case types.KindImage:
		stat("Size", fmt.Sprintf("%d×%d", r.ImageWidth, r.ImageHeight))
	case types.KindPlainText:
		text := TruncateLines(r.Text, f.options.MaxLines)
		if box := CreateBox("Text", text, f.options); box != "" {
			lines = append(lines, IndentText(box, "  "))
		}
	case types.KindRichText:
		stat("Format", r.RichText.Label())
	}

	if len(r.Formats) > 0 {
		stat("Formats", strings.Join(r.Formats, ", "))
	}
	if r.ChangeCount != 0 {
		stat("Change count", fmt.Sprintf("%d", r.ChangeCount))
	}
	return lines
}

func (f *Formatter) preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return TruncateText(text, f.options.MaxWidth)
}

// FormatResult formats a single result with given options
func FormatResult(r *types.Result, opts Options) string {
	return New(opts).FormatResult(r)
}

// FormatSuggestions formats suggestions with given options
func FormatSuggestions(list []suggest.Suggestion, opts Options) string {
	return New(opts).FormatSuggestions(list)
}
