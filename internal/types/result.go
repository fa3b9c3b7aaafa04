package types

// Result is the outcome of classifying one payload. It is built once and
// never modified afterwards.
type Result struct {
	ChangeCount int64  `json:"change_count"`
	Kind        Kind   `json:"kind"`
	Summary     string `json:"summary"`
	Entity      Entity `json:"entity,omitempty"`

	// Kind-specific fields
	URL         string         `json:"url,omitempty"`
	Host        string         `json:"host,omitempty"`
	FilePaths   []string       `json:"file_paths,omitempty"`
	Extensions  []string       `json:"extensions,omitempty"`
	Text        string         `json:"text,omitempty"`
	RichText    RichTextFormat `json:"rich_text,omitempty"`
	ImageWidth  int            `json:"image_width,omitempty"`
	ImageHeight int            `json:"image_height,omitempty"`
	Formats     []string       `json:"formats,omitempty"`
}

// IsText reports whether the result carries text content
func (r *Result) IsText() bool {
	return r != nil && (r.Kind == KindPlainText || r.Kind == KindRichText)
}

// ActionText returns the text custom action templates are expanded with:
// the plain text when present, otherwise the URL.
func (r *Result) ActionText() string {
	if r == nil {
		return ""
	}
	if r.Text != "" {
		return r.Text
	}
	return r.URL
}
