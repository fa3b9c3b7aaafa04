package entity

import (
	"regexp"
	"strings"

	"github.com/berrythewa/copycopy/internal/types"
	"go.uber.org/zap"
)

// patternExpr is one anchored alternative of a pattern detector. normalize,
// when set, rewrites the text before it is matched.
type patternExpr struct {
	expr      string
	normalize func(string) string
}

// patternSpec describes a whole-string pattern detector
type patternSpec struct {
	name  string
	tag   types.Entity
	exprs []patternExpr
	// accept is an extra guard evaluated before any expression
	accept func(Sample) bool
}

const currencyAmount = `(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?`

const ipv4Octet = `(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])`

// patternSpecs is the fixed evaluation order of the pattern detectors.
// Inputs matching more than one entry resolve to the earliest one.
var patternSpecs = []patternSpec{
	{
		name:  "email",
		tag:   types.EntityEmail,
		exprs: exprs(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`),
	},
	{
		name:  "hex_color",
		tag:   types.EntityHexColor,
		exprs: exprs(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`),
	},
	{
		name: "rgb_color",
		tag:  types.EntityHexColor,
		exprs: exprs(`(?i)^rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*` +
			`(?:,\s*(?:\d+(?:\.\d+)?|\.\d+)%?\s*)?\)$`),
	},
	{
		name:  "uuid",
		tag:   types.EntityUUID,
		exprs: exprs(`^[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}$`),
	},
	{
		name:  "ipv4",
		tag:   types.EntityIPAddress,
		exprs: exprs(`^` + ipv4Octet + `(?:\.` + ipv4Octet + `){3}$`),
	},
	{
		name:  "git_sha",
		tag:   types.EntityGitSHA,
		exprs: exprs(`^[0-9a-f]{7,40}$`),
		accept: func(s Sample) bool {
			return !strings.Contains(s.Raw, " ")
		},
	},
	{
		name:  "coordinates",
		tag:   types.EntityCoordinates,
		exprs: exprs(`^-?\d{1,3}\.\d+, ?-?\d{1,3}\.\d+$`),
	},
	{
		name:  "hashtag",
		tag:   types.EntityHashtag,
		exprs: exprs(`^#\p{L}[\p{L}\p{N}_]*$`),
	},
	{
		name:  "mention",
		tag:   types.EntityMention,
		exprs: exprs(`^@\p{L}[\p{L}\p{N}_]*$`),
	},
	{
		name: "currency",
		tag:  types.EntityCurrency,
		exprs: exprs(`^(?:[$€£¥] ?` + currencyAmount + `|` + currencyAmount + ` ?[$€£¥])$`),
	},
	{
		name:  "file_path",
		tag:   types.EntityFilePath,
		exprs: exprs(`^(?:/[^/\x00\n]+)+/?$|^~(?:/[^/\x00\n]+)*/?$`),
	},
	{
		name: "tracking_number",
		tag:  types.EntityTrackingNumber,
		exprs: []patternExpr{
			{expr: `(?i)^1Z[0-9A-Z]{16}$`},
			{expr: `^\d{12,22}$`, normalize: stripSpaces},
			{expr: `^[A-Z]{2}\d{9}[A-Z]{2}$`},
		},
	},
}

func exprs(patterns ...string) []patternExpr {
	out := make([]patternExpr, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, patternExpr{expr: p})
	}
	return out
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

type compiledExpr struct {
	re        *regexp.Regexp
	normalize func(string) string
}

// patternMatcher is a compiled pattern detector. A detector whose
// expressions all failed to compile is disabled and never matches.
type patternMatcher struct {
	name   string
	tag    types.Entity
	exprs  []compiledExpr
	accept func(Sample) bool
}

func compilePatterns(specs []patternSpec, logger *zap.Logger) []Matcher {
	matchers := make([]Matcher, 0, len(specs))
	for _, spec := range specs {
		matchers = append(matchers, compilePattern(spec, logger))
	}
	return matchers
}

func compilePattern(spec patternSpec, logger *zap.Logger) *patternMatcher {
	m := &patternMatcher{name: spec.name, tag: spec.tag, accept: spec.accept}
	for _, e := range spec.exprs {
		re, err := regexp.Compile(e.expr)
		if err != nil {
			logger.Debug("Pattern detector disabled",
				zap.String("matcher", spec.name),
				zap.String("expr", e.expr),
				zap.Error(err))
			continue
		}
		m.exprs = append(m.exprs, compiledExpr{re: re, normalize: e.normalize})
	}
	return m
}

func (m *patternMatcher) Name() string { return m.name }

// Disabled reports whether none of the expressions compiled
func (m *patternMatcher) Disabled() bool { return len(m.exprs) == 0 }

func (m *patternMatcher) Match(s Sample) (types.Entity, bool) {
	if m.accept != nil && !m.accept(s) {
		return types.EntityNone, false
	}
	for _, e := range m.exprs {
		text := s.Text
		if e.normalize != nil {
			text = e.normalize(text)
		}
		if e.re.MatchString(text) {
			return m.tag, true
		}
	}
	return types.EntityNone, false
}
