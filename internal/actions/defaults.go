package actions

import (
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/google/uuid"
)

func builtIn(id, name string, t ActionType, template string, content ContentTypeFilter) CustomAction {
	return CustomAction{
		ID:            uuid.MustParse(id),
		Name:          name,
		ActionType:    t,
		Template:      template,
		ContentFilter: content,
		SourceFilter:  SourceAny,
		EntityFilter:  EntityAny,
		SystemImage:   t.SystemImage(),
		Enabled:       true,
		BuiltIn:       true,
	}
}

// DefaultActions returns the built-in actions. IDs are fixed so stored
// copies can be matched back to their defaults.
func DefaultActions() []CustomAction {
	search := builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a01", "Search on Google", OpenURL,
		"https://www.google.com/search?q={text:encoded}", ContentText)
	search.SystemImage = "magnifyingglass"

	translate := builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a02", "Translate to English", OpenURL,
		"https://translate.google.com/?sl=auto&tl=en&text={text:encoded}", ContentText)
	translate.SystemImage = "globe"
	translate.EntityFilter = EntityFilterFor(types.EntityForeignLanguage)

	summarize := builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a03", "Summarize with ChatGPT", OpenApp,
		"Summarize this text: {text}", ContentText)
	summarize.SystemImage = "sparkles"
	summarize.Enabled = false

	compose := builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a04", "Compose Email", OpenURL,
		"mailto:{text:trimmed}", ContentText)
	compose.SystemImage = "envelope"
	compose.EntityFilter = EntityFilterFor(types.EntityEmail)

	maps := builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a05", "Open in Maps", OpenURL,
		"https://maps.apple.com/?q={text:encoded}", ContentText)
	maps.SystemImage = "map"
	maps.EntityFilter = EntityFilterFor(types.EntityCoordinates)

	track := builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a06", "Track Package", OpenURL,
		"https://parcelsapp.com/en/tracking/{text:encoded}", ContentText)
	track.SystemImage = "shippingbox"
	track.EntityFilter = EntityFilterFor(types.EntityTrackingNumber)

	strip := builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a07", "Strip ANSI Codes", StripANSI, "", ContentText)
	strip.SourceFilter = SourceTerminal

	return []CustomAction{
		search,
		translate,
		summarize,
		compose,
		maps,
		track,
		builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a08", "Save as Temp File", SaveTempFile, "", ContentText),
		strip,
		builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a09", "Reveal in Finder", RevealInFinder, "", ContentFiles),
		builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a0a", "Open File", OpenFile, "", ContentFiles),
		builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a0b", "Save Image", SaveImage, "", ContentImage),
		builtIn("6f1c2a52-0c5e-4d0b-9a55-6b7e0d1f0a0c", "Copy Link", CopyToClipboard, "{text}", ContentURL),
	}
}

// IsDefaultID reports whether id belongs to a built-in action
func IsDefaultID(id uuid.UUID) bool {
	for _, a := range DefaultActions() {
		if a.ID == id {
			return true
		}
	}
	return false
}
