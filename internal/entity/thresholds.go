package entity

const (
	defaultCoverage           = 0.6
	defaultNameDensity        = 0.5
	defaultLanguageConfidence = 0.8
	defaultMinLanguageLength  = 10
	defaultMinMarkdownLength  = 20
	defaultMinBase64Length    = 20

	defaultMaxPatternInput    = 256 * 1024
	defaultMaxStructuralInput = 1024 * 1024
	defaultMaxLanguageInput   = 16 * 1024
)

// Thresholds holds the empirically chosen cut-offs of the cascade.
// Ratios are exclusive: a value must be strictly greater to pass.
type Thresholds struct {
	// Coverage is the share of the text a data-detector match must span
	Coverage float64 `json:"coverage" yaml:"coverage"`
	// NameDensity is the share of words the dominant name category must hold
	NameDensity float64 `json:"name_density" yaml:"name_density"`
	// LanguageConfidence is the minimum score of a non-English hypothesis
	LanguageConfidence float64 `json:"language_confidence" yaml:"language_confidence"`

	MinLanguageLength int `json:"min_language_length" yaml:"min_language_length"`
	MinMarkdownLength int `json:"min_markdown_length" yaml:"min_markdown_length"`
	MinBase64Length   int `json:"min_base64_length" yaml:"min_base64_length"`
}

// Limits bounds how much text each family of detectors looks at
type Limits struct {
	// MaxPatternInput skips pattern detectors for longer texts (bytes)
	MaxPatternInput int `json:"max_pattern_input" yaml:"max_pattern_input"`
	// MaxStructuralInput skips structural detectors for longer texts (bytes)
	MaxStructuralInput int `json:"max_structural_input" yaml:"max_structural_input"`
	// MaxLanguageInput caps what the data, language and name stages analyze (bytes)
	MaxLanguageInput int `json:"max_language_input" yaml:"max_language_input"`
}

// DefaultThresholds returns the stock thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		Coverage:           defaultCoverage,
		NameDensity:        defaultNameDensity,
		LanguageConfidence: defaultLanguageConfidence,
		MinLanguageLength:  defaultMinLanguageLength,
		MinMarkdownLength:  defaultMinMarkdownLength,
		MinBase64Length:    defaultMinBase64Length,
	}
}

// DefaultLimits returns the stock input caps
func DefaultLimits() Limits {
	return Limits{
		MaxPatternInput:    defaultMaxPatternInput,
		MaxStructuralInput: defaultMaxStructuralInput,
		MaxLanguageInput:   defaultMaxLanguageInput,
	}
}

func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.Coverage <= 0 {
		t.Coverage = d.Coverage
	}
	if t.NameDensity <= 0 {
		t.NameDensity = d.NameDensity
	}
	if t.LanguageConfidence <= 0 {
		t.LanguageConfidence = d.LanguageConfidence
	}
	if t.MinLanguageLength <= 0 {
		t.MinLanguageLength = d.MinLanguageLength
	}
	if t.MinMarkdownLength <= 0 {
		t.MinMarkdownLength = d.MinMarkdownLength
	}
	if t.MinBase64Length <= 0 {
		t.MinBase64Length = d.MinBase64Length
	}
	return t
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxPatternInput <= 0 {
		l.MaxPatternInput = d.MaxPatternInput
	}
	if l.MaxStructuralInput <= 0 {
		l.MaxStructuralInput = d.MaxStructuralInput
	}
	if l.MaxLanguageInput <= 0 {
		l.MaxLanguageInput = d.MaxLanguageInput
	}
	return l
}
