package nlp

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFinder struct {
	matches []entity.DataMatch
	err     error
}

func (s stubFinder) Find(string) ([]entity.DataMatch, error) { return s.matches, s.err }

func TestDataDetectorMerge(t *testing.T) {
	t.Run("orders by position", func(t *testing.T) {
		d := NewDataDetector(nil,
			stubFinder{matches: []entity.DataMatch{{Entity: types.EntityDate, Start: 10, End: 14}}},
			stubFinder{matches: []entity.DataMatch{
				{Entity: types.EntityPhoneNumber, Start: 0, End: 4},
				{Entity: types.EntityAddress, Start: 0, End: 8},
			}},
		)
		got, err := d.Find("whatever")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, types.EntityAddress, got[0].Entity)
		assert.Equal(t, types.EntityPhoneNumber, got[1].Entity)
		assert.Equal(t, types.EntityDate, got[2].Entity)
	})

	t.Run("failing finder is skipped", func(t *testing.T) {
		d := NewDataDetector(nil,
			stubFinder{err: errors.New("boom")},
			stubFinder{matches: []entity.DataMatch{{Entity: types.EntityDate, Start: 0, End: 4}}},
		)
		got, err := d.Find("text")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("all finders failing", func(t *testing.T) {
		d := NewDataDetector(nil, stubFinder{err: errors.New("boom")})
		_, err := d.Find("text")
		assert.Error(t, err)
	})
}

func TestPhoneFinder(t *testing.T) {
	p := NewPhoneFinder("")

	text := "+1 201 555 0123"
	got, err := p.Find(text)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.DataMatch{Entity: types.EntityPhoneNumber, Start: 0, End: len(text)}, got[0])

	got, err = p.Find("no digits in here")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDateFinder(t *testing.T) {
	d := NewDateFinder()
	d.now = func() time.Time { return time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC) }

	got, err := d.Find("tomorrow")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.EntityDate, got[0].Entity)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, len("tomorrow"), got[0].End)
}

func TestAddressFinder(t *testing.T) {
	text := "1600 Pennsylvania Avenue, Washington, DC 20500"
	got, err := NewAddressFinder().Find(text)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, len(text), got[0].End)
	assert.Equal(t, types.EntityAddress, got[0].Entity)

	got, err = NewAddressFinder().Find("nothing to see")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransitFinder(t *testing.T) {
	tests := []string{"UA 123", "Flight LH400", "BA2490", "flight XY12"}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			got, err := NewTransitFinder().Find(text)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, entity.DataMatch{Entity: types.EntityTransitInfo, Start: 0, End: len(text)}, got[0])
		})
	}
}

func TestTransitFinderRejectsAbbreviations(t *testing.T) {
	caps := New(Options{Region: DefaultRegion, DataDetector: true}, nil)
	d := entity.New(entity.Config{Data: caps.Data})

	for _, text := range []string{"Q3 2024", "OK 2", "PS 5", "TV 2", "MP 3"} {
		t.Run(text, func(t *testing.T) {
			got, err := NewTransitFinder().Find(text)
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.NotEqual(t, types.EntityTransitInfo, d.Detect(text))
		})
	}
}

func TestBaseLanguage(t *testing.T) {
	assert.Equal(t, "fr", baseLanguage("fra"))
	assert.Equal(t, "en", baseLanguage("eng"))
	assert.Equal(t, "de", baseLanguage("deu"))
	assert.Equal(t, "not-a-code", baseLanguage("not-a-code"))
}

func TestWhatlangIdentifier(t *testing.T) {
	w := NewWhatlangIdentifier()

	got, err := w.Identify("Ceci est une phrase écrite en français pour vérifier la détection de la langue.")
	require.NoError(t, err)
	assert.Equal(t, "fr", got.Code)
	assert.Greater(t, got.Confidence, 0.0)

	got, err = w.Identify("12345 !!! ???")
	require.NoError(t, err)
	assert.Empty(t, got.Code)
}

func TestProseRecognizerSkipsPunctuation(t *testing.T) {
	words, err := NewProseRecognizer().TagWords("Hello, world!")
	require.NoError(t, err)

	var plain []string
	for _, w := range words {
		plain = append(plain, w.Word)
	}
	assert.Equal(t, []string{"Hello", "world"}, plain)
}

func TestProseRecognizerNames(t *testing.T) {
	d := entity.New(entity.Config{Names: NewProseRecognizer()})

	tests := []struct {
		text string
		want types.Entity
	}{
		{"Barack Obama", types.EntityPersonalName},
		{"Angela Merkel and Emmanuel Macron", types.EntityPersonalName},
		{"London", types.EntityPlaceName},
		{"New York City", types.EntityPlaceName},
		{"Google", types.EntityOrganizationName},
		{"Apple Inc", types.EntityOrganizationName},
		{"Apple Inc.", types.EntityOrganizationName},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestLabelKnownNames(t *testing.T) {
	tag := func(text string) []entity.NameCategory {
		var words []entity.TaggedWord
		for _, w := range strings.Fields(text) {
			words = append(words, entity.TaggedWord{Word: w})
		}
		labelKnownNames(words)
		var got []entity.NameCategory
		for _, w := range words {
			got = append(got, w.Category)
		}
		return got
	}

	assert.Equal(t, []entity.NameCategory{entity.NamePersonal, entity.NamePersonal, entity.NameNone,
		entity.NamePersonal, entity.NamePersonal}, tag("Angela Merkel and Emmanuel Macron"))
	assert.Equal(t, []entity.NameCategory{entity.NamePlace, entity.NamePlace, entity.NamePlace}, tag("New York City"))
	assert.Equal(t, []entity.NameCategory{entity.NameOrganization, entity.NameOrganization}, tag("Acme Corp"))
	assert.Equal(t, []entity.NameCategory{entity.NameNone, entity.NameNone, entity.NameNone}, tag("an apple pie"))
	assert.Equal(t, []entity.NameCategory{entity.NameNone, entity.NameNone}, tag("Mark this"))
}

func TestIsWord(t *testing.T) {
	assert.True(t, isWord("Paris"))
	assert.True(t, isWord("42"))
	assert.True(t, isWord("O'Neil"))
	assert.False(t, isWord(","))
	assert.False(t, isWord("..."))
}

func TestNewCapabilities(t *testing.T) {
	caps := New(Options{}, nil)
	assert.IsType(t, NopDataDetector{}, caps.Data)
	assert.IsType(t, NopLanguageIdentifier{}, caps.Language)
	assert.IsType(t, NopRecognizer{}, caps.Names)

	caps = New(Options{Region: "GB", DataDetector: true, Language: true, Names: true}, nil)
	assert.IsType(t, &DataDetector{}, caps.Data)
	assert.IsType(t, &WhatlangIdentifier{}, caps.Language)
	assert.IsType(t, &ProseRecognizer{}, caps.Names)
}
