package clipboard

import (
	"strings"

	"github.com/berrythewa/copycopy/internal/types"
	"go.uber.org/zap"
)

const (
	// DefaultSummaryLength is the number of characters of text shown in summaries
	DefaultSummaryLength = 140
	// DefaultMaxFormats is the number of format identifiers listed for unknown content
	DefaultMaxFormats = 5
)

// EntityDetector tags plain text with an entity
type EntityDetector interface {
	Detect(text string) types.Entity
}

// Options configures a Classifier
type Options struct {
	SummaryLength int
	MaxFormats    int
	// Entities tags plain text; nil leaves the entity unset
	Entities EntityDetector
	Logger   *zap.Logger
}

// Classifier decides the kind of a clipboard payload and, for plain text,
// its entity. It is stateless and safe for concurrent use.
type Classifier struct {
	summaryLength int
	maxFormats    int
	entities      EntityDetector
	logger        *zap.Logger
}

// NewClassifier creates a classifier
func NewClassifier(opts Options) *Classifier {
	c := &Classifier{
		summaryLength: opts.SummaryLength,
		maxFormats:    opts.MaxFormats,
		entities:      opts.Entities,
		logger:        opts.Logger,
	}
	if c.summaryLength <= 0 {
		c.summaryLength = DefaultSummaryLength
	}
	if c.maxFormats <= 0 {
		c.maxFormats = DefaultMaxFormats
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Classify returns a fresh result for p. Kinds are tried in a fixed order:
// files, web URL, image, plain text, rich text, unknown.
func (c *Classifier) Classify(p *types.Payload) *types.Result {
	if p == nil {
		p = &types.Payload{}
	}

	result := c.classify(p)
	result.ChangeCount = p.ChangeCount

	c.logger.Debug("Payload classified",
		zap.Int64("change_count", p.ChangeCount),
		zap.String("kind", string(result.Kind)),
		zap.String("entity", string(result.Entity)))
	return result
}

func (c *Classifier) classify(p *types.Payload) *types.Result {
	if len(p.FileURLs) > 0 {
		paths := filePaths(p.FileURLs)
		exts := extensions(paths)
		return &types.Result{
			Kind:       types.KindFileReferences,
			Summary:    filesSummary(len(paths), exts),
			FilePaths:  paths,
			Extensions: exts,
		}
	}

	if u, ok := webURL(p.URL); ok {
		return &types.Result{
			Kind:    types.KindURL,
			Summary: urlSummary(u.Hostname()),
			URL:     u.String(),
			Host:    u.Hostname(),
		}
	}

	if len(p.Image) > 0 {
		if w, h, ok := imageSize(p.Image); ok {
			return &types.Result{
				Kind:        types.KindImage,
				Summary:     imageSummary(w, h),
				ImageWidth:  w,
				ImageHeight: h,
			}
		}
		c.logger.Debug("Ignoring undecodable image", zap.Int("size", len(p.Image)))
	}

	// Any non-empty text is plain text, even when it is only whitespace
	if p.HasText() {
		trimmed := strings.TrimSpace(p.Text)
		if u, ok := DetectURL(trimmed); ok {
			return &types.Result{
				Kind:    types.KindURL,
				Summary: urlSummary(u.Hostname()),
				URL:     u.String(),
				Host:    u.Hostname(),
			}
		}

		result := &types.Result{
			Kind:    types.KindPlainText,
			Summary: textSummary(trimmed, c.summaryLength),
			Text:    trimmed,
			Entity:  types.EntityNone,
		}
		if c.entities != nil {
			result.Entity = c.entities.Detect(trimmed)
		}
		return result
	}

	if format := richTextFormat(p); format != types.RichTextNone {
		return &types.Result{
			Kind:     types.KindRichText,
			Summary:  richTextSummary(format),
			RichText: format,
		}
	}

	formats := distinctFormats(p.Formats, c.maxFormats)
	return &types.Result{
		Kind:    types.KindUnknown,
		Summary: unknownSummary(formats),
		Formats: formats,
	}
}

// richTextFormat checks RTF before HTML
func richTextFormat(p *types.Payload) types.RichTextFormat {
	switch {
	case len(p.RTF) > 0:
		return types.RichTextRTF
	case len(p.HTML) > 0:
		return types.RichTextHTML
	default:
		return types.RichTextNone
	}
}
