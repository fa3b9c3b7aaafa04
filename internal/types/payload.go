package types

import "time"

// Payload is one capture of the clipboard as handed over by the monitoring
// collaborator. Any combination of representations may be present.
type Payload struct {
	// ChangeCount is passed through to the result untouched
	ChangeCount int64 `json:"change_count"`

	FileURLs []string `json:"file_urls,omitempty"` // file paths or file:// URLs
	URL      string   `json:"url,omitempty"`       // first URL representation, if any
	Image    []byte   `json:"image,omitempty"`     // encoded bitmap (PNG, TIFF, ...)
	RTF      []byte   `json:"rtf,omitempty"`
	HTML     []byte   `json:"html,omitempty"`
	Text     string   `json:"text,omitempty"`

	// Formats holds the raw format identifiers advertised by the clipboard
	Formats []string `json:"formats,omitempty"`

	Captured time.Time `json:"captured"`
}

// HasText reports whether a plain-text representation is present
func (p *Payload) HasText() bool {
	return p != nil && p.Text != ""
}

// Size returns the total number of bytes across all representations
func (p *Payload) Size() int64 {
	if p == nil {
		return 0
	}
	n := len(p.URL) + len(p.Image) + len(p.RTF) + len(p.HTML) + len(p.Text)
	for _, f := range p.FileURLs {
		n += len(f)
	}
	return int64(n)
}
