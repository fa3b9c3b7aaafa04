package entity

import "github.com/berrythewa/copycopy/internal/types"

// DataMatch is one span found by a DataDetector. Start and End are byte
// offsets into the text that was searched.
type DataMatch struct {
	Entity types.Entity
	Start  int
	End    int
}

// DataDetector finds locale-aware data (phone numbers, dates, postal
// addresses, transit information) anywhere inside a text.
type DataDetector interface {
	Find(text string) ([]DataMatch, error)
}

// Language is a best-guess language hypothesis. An empty Code means the
// language could not be determined.
type Language struct {
	Code       string  // BCP 47 base language, e.g. "en", "fr"
	Confidence float64 // 0.0 - 1.0
}

// LanguageIdentifier returns the dominant language of a text
type LanguageIdentifier interface {
	Identify(text string) (Language, error)
}

// NameCategory is the name type assigned to a single word
type NameCategory string

const (
	NameNone         NameCategory = ""
	NamePersonal     NameCategory = "personalName"
	NamePlace        NameCategory = "placeName"
	NameOrganization NameCategory = "organizationName"
)

// TaggedWord is a word-level token with its name type. Recognizers return
// words only: whitespace and punctuation tokens are left out.
type TaggedWord struct {
	Word     string
	Category NameCategory
}

// NamedEntityRecognizer tags every word of a text with a name category
type NamedEntityRecognizer interface {
	TagWords(text string) ([]TaggedWord, error)
}

func (c NameCategory) entity() types.Entity {
	switch c {
	case NamePersonal:
		return types.EntityPersonalName
	case NamePlace:
		return types.EntityPlaceName
	case NameOrganization:
		return types.EntityOrganizationName
	default:
		return types.EntityNone
	}
}
