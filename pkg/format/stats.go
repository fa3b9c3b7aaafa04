package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/berrythewa/copycopy/internal/types"
	"github.com/mattn/go-runewidth"
)

// EntityStats counts classifications over a batch of inputs
type EntityStats struct {
	Total    int                  `json:"total"`
	Bytes    int64                `json:"bytes"`
	ByKind   map[types.Kind]int   `json:"by_kind"`
	ByEntity map[types.Entity]int `json:"by_entity"`
}

// NewEntityStats returns empty statistics
func NewEntityStats() *EntityStats {
	return &EntityStats{
		ByKind:   make(map[types.Kind]int),
		ByEntity: make(map[types.Entity]int),
	}
}

// Add records one result of an input of size bytes
func (s *EntityStats) Add(r *types.Result, size int) {
	s.Total++
	s.Bytes += int64(size)
	s.ByKind[r.Kind]++
	if r.IsText() {
		s.ByEntity[r.Entity]++
	}
}

// FormatStats formats statistics for display. Rows are ordered by count,
// then by name.
func FormatStats(stats *EntityStats, opts Options) string {
	parts := []string{
		ColorizeIf("Classification Statistics", BrightBlue, opts.UseColors),
		"",
		formatStatLine("Total inputs", fmt.Sprintf("%d", stats.Total), opts),
		formatStatLine("Total size", FormatSize(stats.Bytes), opts),
	}

	if len(stats.ByKind) > 0 {
		rows := make(map[string]int, len(stats.ByKind))
		icons := make(map[string]string, len(stats.ByKind))
		for k, n := range stats.ByKind {
			rows[string(k)] = n
			if opts.UseIcons {
				icons[string(k)] = KindIcons[k]
			}
		}
		parts = append(parts, "", formatSubHeader("By kind", opts))
		parts = append(parts, formatCounts(rows, icons, stats.Total, opts)...)
	}

	if len(stats.ByEntity) > 0 {
		rows := make(map[string]int, len(stats.ByEntity))
		texts := 0
		for e, n := range stats.ByEntity {
			rows[e.DisplayName()] = n
			texts += n
		}
		parts = append(parts, "", formatSubHeader("By entity", opts))
		parts = append(parts, formatCounts(rows, nil, texts, opts)...)
	}

	return strings.Join(parts, "\n")
}

func formatCounts(rows map[string]int, icons map[string]string, total int, opts Options) []string {
	names := make([]string, 0, len(rows))
	width := 0
	for name := range rows {
		names = append(names, name)
		if w := displayWidth(name); w > width {
			width = w
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if rows[names[i]] != rows[names[j]] {
			return rows[names[i]] > rows[names[j]]
		}
		return names[i] < names[j]
	})

	lines := make([]string, 0, len(names))
	for _, name := range names {
		icon := ""
		if i := icons[name]; i != "" {
			icon = i + " "
		}
		pct := 0.0
		if total > 0 {
			pct = float64(rows[name]) * 100 / float64(total)
		}
		lines = append(lines, fmt.Sprintf("  %s%s %5d  %5.1f%%", icon, PadRight(name, width), rows[name], pct))
	}
	return lines
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// formatStatLine formats a statistics line with label and value
func formatStatLine(label, value string, opts Options) string {
	if opts.UseColors {
		return fmt.Sprintf("  %s%s:%s %s", BrightCyan, label, Reset, value)
	}
	return fmt.Sprintf("  %s: %s", label, value)
}

// formatSubHeader formats a section subheader
func formatSubHeader(title string, opts Options) string {
	return ColorizeIf(title, BrightBlue, opts.UseColors)
}
