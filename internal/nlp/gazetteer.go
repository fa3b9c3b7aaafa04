package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/berrythewa/copycopy/internal/entity"
)

// maxPhraseWords bounds the gazetteer phrases and person names
const maxPhraseWords = 3

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var (
	knownPlaces = set(
		"london", "paris", "berlin", "madrid", "rome", "lisbon", "amsterdam", "brussels", "vienna",
		"zurich", "geneva", "dublin", "edinburgh", "stockholm", "oslo", "copenhagen", "helsinki",
		"warsaw", "prague", "budapest", "athens", "istanbul", "moscow", "kyiv", "cairo", "lagos",
		"nairobi", "dubai", "mumbai", "delhi", "new delhi", "bangalore", "beijing", "shanghai",
		"hong kong", "tokyo", "osaka", "seoul", "singapore", "bangkok", "jakarta", "manila",
		"sydney", "melbourne", "auckland", "toronto", "montreal", "vancouver", "chicago", "boston",
		"seattle", "denver", "austin", "houston", "dallas", "miami", "atlanta", "new york",
		"new york city", "los angeles", "san francisco", "san diego", "las vegas", "washington",
		"mexico city", "rio de janeiro", "sao paulo", "buenos aires", "lima", "bogota", "santiago",
		"france", "germany", "spain", "italy", "portugal", "japan", "china", "india", "brazil",
		"canada", "mexico", "australia", "russia", "ukraine", "poland", "egypt", "kenya", "nigeria",
		"united states", "united kingdom", "south africa", "new zealand", "south korea",
		"california", "texas", "florida", "europe", "asia", "africa",
	)

	knownOrganizations = set(
		"google", "alphabet", "apple", "microsoft", "amazon", "meta", "facebook", "netflix",
		"nvidia", "intel", "ibm", "oracle", "salesforce", "adobe", "spotify", "uber", "airbnb",
		"tesla", "openai", "anthropic", "github", "gitlab", "samsung", "sony", "toyota", "siemens",
		"volkswagen", "unilever", "nestle", "walmart", "starbucks", "mcdonald's", "coca-cola",
		"pepsico", "goldman sachs", "morgan stanley", "jpmorgan", "deutsche bank", "united nations",
		"nasa", "unicef", "red cross", "world bank", "european union",
	)

	orgSuffixes = set(
		"inc", "incorporated", "corp", "corporation", "llc", "ltd", "limited", "gmbh", "ag", "sa",
		"plc", "co", "company", "group", "holdings", "bank", "university", "foundation", "institute",
	)

	givenNames = set(
		"barack", "michelle", "joe", "donald", "angela", "emmanuel", "olaf", "justin", "boris",
		"vladimir", "xi", "narendra", "elon", "jeff", "bill", "steve", "tim", "satya", "sundar",
		"mark", "sam", "larry", "sergey", "warren", "oprah", "taylor", "lionel", "cristiano",
		"serena", "roger", "john", "james", "robert", "michael", "william", "david", "richard",
		"joseph", "thomas", "charles", "daniel", "matthew", "anthony", "paul", "andrew", "peter",
		"george", "mary", "patricia", "jennifer", "linda", "elizabeth", "barbara", "susan",
		"jessica", "sarah", "karen", "emily", "emma", "olivia", "sophia", "anna", "maria", "laura",
		"julia", "marie", "pierre", "jean", "hans", "giulia", "marco", "carlos", "jose", "juan",
		"ahmed", "mohammed", "fatima", "wei", "yuki", "hiroshi", "raj", "priya", "alice", "bob",
	)
)

// labelKnownNames overrides word categories for spans it recognizes:
// capitalized runs ending in an organization suffix, gazetteer places and
// organizations, and a known given name followed by capitalized surnames.
func labelKnownNames(words []entity.TaggedWord) {
	for i := 0; i < len(words); {
		n, category := knownSpan(words[i:])
		if n == 0 {
			i++
			continue
		}
		for j := i; j < i+n; j++ {
			words[j].Category = category
		}
		i += n
	}
}

func knownSpan(words []entity.TaggedWord) (int, entity.NameCategory) {
	run := 0
	for run < len(words) && run <= maxPhraseWords && capitalized(words[run].Word) {
		run++
	}
	if run == 0 {
		return 0, entity.NameNone
	}

	for k := 1; k < run; k++ {
		if _, ok := orgSuffixes[normalize(words[k].Word)]; ok {
			return k + 1, entity.NameOrganization
		}
	}

	for n := min(run, maxPhraseWords); n > 0; n-- {
		phrase := phraseOf(words[:n])
		if _, ok := knownPlaces[phrase]; ok {
			return n, entity.NamePlace
		}
		if _, ok := knownOrganizations[phrase]; ok {
			return n, entity.NameOrganization
		}
	}

	if _, ok := givenNames[normalize(words[0].Word)]; ok && run > 1 {
		return min(run, maxPhraseWords), entity.NamePersonal
	}
	return 0, entity.NameNone
}

func phraseOf(words []entity.TaggedWord) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = normalize(w.Word)
	}
	return strings.Join(parts, " ")
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSuffix(word, "."))
}

func capitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}
