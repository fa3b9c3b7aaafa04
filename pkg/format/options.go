package format

import "github.com/berrythewa/copycopy/internal/types"

// Options controls formatting behavior
type Options struct {
	UseColors   bool
	UseIcons    bool
	MaxWidth    int  // Max display width of previews (0 = no limit)
	MaxLines    int  // Max lines of text shown (0 = no limit)
	ShowDetails bool // Show kind-specific fields below the summary
	Compact     bool // One line per result
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		UseColors:   true,
		UseIcons:    true,
		MaxWidth:    80,
		MaxLines:    10,
		ShowDetails: true,
	}
}

// PlainOptions returns options for output that is not a terminal
func PlainOptions() Options {
	opts := DefaultOptions()
	opts.UseColors = false
	opts.UseIcons = false
	return opts
}

// KindIcons maps content kinds to Unicode icons
var KindIcons = map[types.Kind]string{
	types.KindFileReferences: "📁",
	types.KindURL:            "🔗",
	types.KindImage:          "🖼️",
	types.KindPlainText:      "📝",
	types.KindRichText:       "📄",
	types.KindUnknown:        "❔",
}

// KindColors maps content kinds to colors
var KindColors = map[types.Kind]string{
	types.KindFileReferences: Yellow,
	types.KindURL:            Blue,
	types.KindImage:          Magenta,
	types.KindPlainText:      Cyan,
	types.KindRichText:       Green,
	types.KindUnknown:        Gray,
}
