package clipboard

import (
	"os"
	"strings"

	"github.com/berrythewa/copycopy/internal/types"
	"go.uber.org/zap"
)

// DefaultMaxPayloadBytes is the largest payload the processor lets through
const DefaultMaxPayloadBytes = 100 * 1024 * 1024

// ConcealedFormats are advertised by password managers for secrets that
// must not be inspected
var ConcealedFormats = []string{
	"org.nspasteboard.ConcealedType",
	"org.nspasteboard.TransientType",
	"com.agilebits.onepassword",
}

type PayloadFilter func(*types.Payload) bool
type PayloadTransformer func(*types.Payload) *types.Payload

// Processor prepares payloads before classification by running
// transformers then filters. A nil result means the payload is dropped.
type Processor struct {
	filters      []PayloadFilter
	transformers []PayloadTransformer
	logger       *zap.Logger
	MaxSizeBytes int64
}

// NewProcessor creates a processor with the default size limit
func NewProcessor(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		logger:       logger,
		MaxSizeBytes: DefaultMaxPayloadBytes,
	}
}

func (p *Processor) AddFilter(filter PayloadFilter) {
	p.filters = append(p.filters, filter)
}

func (p *Processor) AddTransformer(transformer PayloadTransformer) {
	p.transformers = append(p.transformers, transformer)
}

// Process applies the size limit, transformers and filters in that order
func (p *Processor) Process(payload *types.Payload) *types.Payload {
	if payload == nil {
		return nil
	}

	if size := payload.Size(); p.MaxSizeBytes > 0 && size > p.MaxSizeBytes {
		p.logger.Debug("Payload exceeds maximum size",
			zap.Int64("max_size_bytes", p.MaxSizeBytes),
			zap.Int64("payload_size_bytes", size))
		return nil
	}

	for _, transform := range p.transformers {
		payload = transform(payload)
		if payload == nil {
			return nil
		}
	}

	for _, filter := range p.filters {
		if !filter(payload) {
			p.logger.Debug("Payload filtered out", zap.Int64("change_count", payload.ChangeCount))
			return nil
		}
	}
	return payload
}

// ExcludeFormatsFilter drops payloads advertising any of the given formats
func ExcludeFormatsFilter(formats ...string) PayloadFilter {
	excluded := make(map[string]struct{}, len(formats))
	for _, f := range formats {
		excluded[f] = struct{}{}
	}
	return func(payload *types.Payload) bool {
		for _, f := range payload.Formats {
			if _, ok := excluded[f]; ok {
				return false
			}
		}
		return true
	}
}

// TrimTransformer trims whitespace around the URL and file references.
// Plain text is left untouched since entity detection inspects the raw text.
func TrimTransformer() PayloadTransformer {
	return func(payload *types.Payload) *types.Payload {
		payload.URL = strings.TrimSpace(payload.URL)
		refs := payload.FileURLs[:0]
		for _, ref := range payload.FileURLs {
			if ref = strings.TrimSpace(ref); ref != "" {
				refs = append(refs, ref)
			}
		}
		payload.FileURLs = refs
		return payload
	}
}

// ExistingFilesTransformer drops file references that cannot be stat'ed.
// When none of them exist the references are kept as they are.
func ExistingFilesTransformer(logger *zap.Logger) PayloadTransformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(payload *types.Payload) *types.Payload {
		if len(payload.FileURLs) == 0 {
			return payload
		}
		valid := make([]string, 0, len(payload.FileURLs))
		for _, ref := range payload.FileURLs {
			if _, err := os.Stat(filePath(ref)); err != nil {
				logger.Debug("Skipping inaccessible file", zap.String("path", ref), zap.Error(err))
				continue
			}
			valid = append(valid, ref)
		}
		if len(valid) > 0 {
			payload.FileURLs = valid
		}
		return payload
	}
}
