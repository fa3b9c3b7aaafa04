package types

// Kind is the top-level classification of a clipboard capture
type Kind string

const (
	KindFileReferences Kind = "fileURLs"
	KindURL            Kind = "url"
	KindImage          Kind = "image"
	KindPlainText      Kind = "plainText"
	KindRichText       Kind = "richText"
	KindUnknown        Kind = "unknown"
)

// Kinds lists every kind in classification priority order
var Kinds = []Kind{
	KindFileReferences,
	KindURL,
	KindImage,
	KindPlainText,
	KindRichText,
	KindUnknown,
}

// RichTextFormat identifies which rich-text representation was found
type RichTextFormat string

const (
	RichTextNone RichTextFormat = ""
	RichTextRTF  RichTextFormat = "rtf"
	RichTextHTML RichTextFormat = "html"
)

// Label returns the short upper-case name used in summaries
func (f RichTextFormat) Label() string {
	switch f {
	case RichTextRTF:
		return "RTF"
	case RichTextHTML:
		return "HTML"
	default:
		return ""
	}
}
