package nlp

import (
	"github.com/berrythewa/copycopy/internal/entity"
	"go.uber.org/zap"
)

// Options selects which capabilities are backed by real implementations
type Options struct {
	Region       string
	DataDetector bool
	Language     bool
	Names        bool
}

// DefaultOptions enables every capability for the US region
func DefaultOptions() Options {
	return Options{Region: DefaultRegion, DataDetector: true, Language: true, Names: true}
}

// Capabilities is the set handed to the entity detector
type Capabilities struct {
	Data     entity.DataDetector
	Language entity.LanguageIdentifier
	Names    entity.NamedEntityRecognizer
}

// New builds the capabilities selected by opts. Disabled ones are backed by
// no-op implementations.
func New(opts Options, logger *zap.Logger) Capabilities {
	if logger == nil {
		logger = zap.NewNop()
	}

	caps := Capabilities{
		Data:     NopDataDetector{},
		Language: NopLanguageIdentifier{},
		Names:    NopRecognizer{},
	}
	if opts.DataDetector {
		caps.Data = NewDataDetector(logger,
			NewPhoneFinder(opts.Region),
			NewDateFinder(),
			NewAddressFinder(),
			NewTransitFinder(),
		)
	}
	if opts.Language {
		caps.Language = NewWhatlangIdentifier()
	}
	if opts.Names {
		caps.Names = NewProseRecognizer()
	}

	logger.Debug("NLP capabilities configured",
		zap.String("region", opts.Region),
		zap.Bool("data_detector", opts.DataDetector),
		zap.Bool("language", opts.Language),
		zap.Bool("names", opts.Names))
	return caps
}

// NopDataDetector implements entity.DataDetector but never finds anything
type NopDataDetector struct{}

func (NopDataDetector) Find(string) ([]entity.DataMatch, error) { return nil, nil }

// NopLanguageIdentifier implements entity.LanguageIdentifier and always
// reports an undetermined language
type NopLanguageIdentifier struct{}

func (NopLanguageIdentifier) Identify(string) (entity.Language, error) {
	return entity.Language{}, nil
}

// NopRecognizer implements entity.NamedEntityRecognizer and tags nothing
type NopRecognizer struct{}

func (NopRecognizer) TagWords(string) ([]entity.TaggedWord, error) { return nil, nil }
