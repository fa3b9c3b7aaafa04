package nlp

import (
	"github.com/abadojack/whatlanggo"
	"github.com/berrythewa/copycopy/internal/entity"
	"golang.org/x/text/language"
)

// WhatlangIdentifier identifies the dominant language with whatlanggo's
// trigram model and reports it as a BCP 47 base language.
type WhatlangIdentifier struct{}

func NewWhatlangIdentifier() *WhatlangIdentifier {
	return &WhatlangIdentifier{}
}

// Identify implements entity.LanguageIdentifier. Text whose script or
// language cannot be determined yields an empty code.
func (w *WhatlangIdentifier) Identify(text string) (entity.Language, error) {
	info := whatlanggo.Detect(text)
	if info.Script == nil {
		return entity.Language{}, nil
	}

	iso := info.Lang.Iso6393()
	if iso == "" {
		return entity.Language{}, nil
	}

	return entity.Language{Code: baseLanguage(iso), Confidence: info.Confidence}, nil
}

// baseLanguage shortens an ISO 639-3 code to its canonical BCP 47 form
// ("fra" -> "fr"). Unknown codes are returned unchanged.
func baseLanguage(iso string) string {
	base, err := language.ParseBase(iso)
	if err != nil {
		return iso
	}
	return base.String()
}
