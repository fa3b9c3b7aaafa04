// Package suggest turns a classified capture into the list of actions
// offered to the user. Suggestions only describe what to do; executing
// them is left to the caller.
package suggest

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/berrythewa/copycopy/internal/actions"
	"github.com/berrythewa/copycopy/internal/source"
	"github.com/berrythewa/copycopy/internal/types"

	"go.uber.org/zap"
)

const safariBundleID = "com.apple.Safari"

// Suggestion is one offered action. Argument holds the resolved input of
// Action: a URL to open, a command line, or the text to copy or save.
type Suggestion struct {
	Title       string             `json:"title"`
	Subtitle    string             `json:"subtitle,omitempty"`
	SystemImage string             `json:"system_image"`
	Action      actions.ActionType `json:"action,omitempty"`
	Argument    string             `json:"argument,omitempty"`
	Paths       []string           `json:"paths,omitempty"`
	App         string             `json:"app,omitempty"`

	// ActionID is set for suggestions coming from custom actions
	ActionID string `json:"action_id,omitempty"`
}

// Informational reports whether the suggestion has nothing to perform
func (s Suggestion) Informational() bool {
	return s.Action == ""
}

// Context is everything the engine needs about one capture
type Context struct {
	Result *types.Result
	Source source.Context
}

// ActionSource provides the enabled custom actions for a capture
type ActionSource interface {
	Enabled(kind types.Kind, ctx source.Context, entity types.Entity) ([]actions.CustomAction, error)
}

type Engine struct {
	actions ActionSource
	logger  *zap.Logger
}

// New creates an engine. A nil action source yields built-in suggestions only.
func New(src ActionSource, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{actions: src, logger: logger}
}

// Suggest returns the built-in suggestions for ctx followed by the enabled
// custom actions matching it. A custom action whose name repeats a
// built-in title is skipped.
func (e *Engine) Suggest(ctx Context) []Suggestion {
	r := ctx.Result
	if r == nil {
		return nil
	}

	out := builtIns(r, ctx.Source)
	if e.actions == nil {
		return out
	}

	custom, err := e.actions.Enabled(r.Kind, ctx.Source, r.Entity)
	if err != nil {
		e.logger.Warn("Failed to load custom actions", zap.Error(err))
		return out
	}

	seen := make(map[string]bool, len(out))
	for _, s := range out {
		seen[strings.ToLower(s.Title)] = true
	}
	for _, a := range custom {
		if seen[strings.ToLower(a.Name)] {
			continue
		}
		s, ok := fromAction(a, r)
		if !ok {
			e.logger.Debug("Skipping custom action", zap.String("name", a.Name), zap.String("kind", string(r.Kind)))
			continue
		}
		out = append(out, s)
	}
	return out
}

func builtIns(r *types.Result, ctx source.Context) []Suggestion {
	switch r.Kind {
	case types.KindURL:
		return urlSuggestions(r, ctx)
	case types.KindFileReferences:
		return fileSuggestions(r.FilePaths, ctx)
	case types.KindImage:
		return []Suggestion{{
			Title:       "Save Image…",
			Subtitle:    "Exports PNG without altering clipboard",
			SystemImage: "square.and.arrow.down",
			Action:      actions.SaveImage,
		}}
	case types.KindPlainText:
		return textSuggestions(r.Text, r.Entity, ctx)
	default:
		return []Suggestion{{
			Title:       "Show pasteboard types",
			SystemImage: "doc.text.magnifyingglass",
			Argument:    strings.Join(r.Formats, "\n"),
		}}
	}
}

func urlSuggestions(r *types.Result, ctx source.Context) []Suggestion {
	if r.URL == "" {
		return nil
	}
	out := []Suggestion{{
		Title:       "Open URL",
		Subtitle:    r.URL,
		SystemImage: "link",
		Action:      actions.OpenURL,
		Argument:    r.URL,
	}}
	if ctx == source.Browser {
		out = append(out, Suggestion{
			Title:       "Open in Safari",
			SystemImage: "safari",
			Action:      actions.OpenURL,
			Argument:    r.URL,
			App:         safariBundleID,
		})
	}
	return out
}

func fileSuggestions(paths []string, ctx source.Context) []Suggestion {
	switch len(paths) {
	case 0:
		return nil
	case 1:
		p := paths[0]
		out := []Suggestion{
			{Title: "Open file", Subtitle: filepath.Base(p), SystemImage: "doc", Action: actions.OpenFile, Paths: paths},
			{Title: "Reveal in Finder", SystemImage: "folder", Action: actions.RevealInFinder, Paths: paths},
		}
		if ctx == source.IDE || ctx == source.Terminal {
			out = append(out, Suggestion{
				Title:       "Copy path",
				Subtitle:    p,
				SystemImage: "doc.on.clipboard",
				Action:      actions.CopyToClipboard,
				Argument:    p,
			})
		}
		return out
	default:
		return []Suggestion{{
			Title:       "Reveal in Finder",
			Subtitle:    fmt.Sprintf("%d items", len(paths)),
			SystemImage: "folder",
			Action:      actions.RevealInFinder,
			Paths:       paths,
		}}
	}
}

func textSuggestions(text string, entity types.Entity, ctx source.Context) []Suggestion {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var out []Suggestion
	if hasScheme(trimmed) {
		out = append(out, Suggestion{
			Title:       "Open as URL",
			Subtitle:    trimmed,
			SystemImage: "link",
			Action:      actions.OpenURL,
			Argument:    trimmed,
		})
	}

	out = append(out,
		Suggestion{
			Title:       "Look up in Dictionary",
			SystemImage: "book",
			Action:      actions.OpenURL,
			Argument:    "dict://" + url.PathEscape(trimmed),
		},
		Suggestion{
			Title:       "Search the web",
			SystemImage: "magnifyingglass",
			Action:      actions.OpenURL,
			Argument:    "https://duckduckgo.com/?q=" + actions.QueryEscape(trimmed),
		},
		Suggestion{
			Title:       "Summarize with ChatGPT",
			SystemImage: "sparkles",
			Action:      actions.OpenURL,
			Argument:    "https://chat.openai.com/?q=" + actions.QueryEscape("Summarize this text: "+trimmed),
		},
	)

	if ctx == source.IDE || ctx == source.Terminal {
		out = append(out, Suggestion{
			Title:       "Open as temporary file",
			Subtitle:    "Writes to a temp .txt",
			SystemImage: "doc.badge.plus",
			Action:      actions.SaveTempFile,
			Argument:    trimmed,
		})
		if ctx == source.Terminal {
			out = append(out, Suggestion{
				Title:       "Strip ANSI codes",
				Subtitle:    "Remove terminal color codes",
				SystemImage: "textformat",
				Action:      actions.CopyToClipboard,
				Argument:    StripANSI(trimmed),
			})
		}
	}

	if s, ok := entitySuggestion(trimmed, entity); ok {
		out = append(out, s)
	}
	return out
}

// entitySuggestion returns the extra suggestion for a detected entity.
// Transforms that fail on the text produce nothing.
func entitySuggestion(text string, entity types.Entity) (Suggestion, bool) {
	transformed := func(title, image string, fn func(string) (string, error)) (Suggestion, bool) {
		out, err := fn(text)
		if err != nil {
			return Suggestion{}, false
		}
		return Suggestion{Title: title, SystemImage: image, Action: actions.CopyToClipboard, Argument: out}, true
	}

	switch entity {
	case types.EntityEmail:
		return Suggestion{
			Title:       "Compose email",
			Subtitle:    text,
			SystemImage: "envelope",
			Action:      actions.OpenURL,
			Argument:    "mailto:" + text,
		}, true
	case types.EntityPhoneNumber:
		return Suggestion{
			Title:       "Call",
			Subtitle:    text,
			SystemImage: "phone",
			Action:      actions.OpenURL,
			Argument:    "tel:" + dialable(text),
		}, true
	case types.EntityCoordinates:
		return Suggestion{
			Title:       "Open in Maps",
			SystemImage: "map",
			Action:      actions.OpenURL,
			Argument:    "https://maps.apple.com/?ll=" + actions.QueryEscape(strings.ReplaceAll(text, " ", "")),
		}, true
	case types.EntityJSON:
		return transformed("Pretty-print JSON", "curlybraces", PrettyJSON)
	case types.EntityBase64:
		return transformed("Decode Base64", "lock.open", DecodeBase64)
	case types.EntityURLEncoded:
		return transformed("Decode URL-encoded text", "percent", DecodeURLEncoded)
	case types.EntityMarkdown:
		return transformed("Render Markdown as HTML", "doc.richtext", RenderMarkdown)
	}
	return Suggestion{}, false
}

// fromAction resolves a custom action against a result. Actions that need
// file paths or a template input the result cannot provide are dropped.
func fromAction(a actions.CustomAction, r *types.Result) (Suggestion, bool) {
	s := Suggestion{
		Title:       a.Name,
		Subtitle:    a.ActionType.DisplayName(),
		SystemImage: a.SystemImage,
		Action:      a.ActionType,
		ActionID:    a.ID.String(),
	}
	if s.SystemImage == "" {
		s.SystemImage = a.ActionType.SystemImage()
	}

	text := r.ActionText()
	switch a.ActionType {
	case actions.RevealInFinder, actions.OpenFile:
		if len(r.FilePaths) == 0 {
			return Suggestion{}, false
		}
		s.Paths = r.FilePaths
	case actions.SaveImage:
		if r.Kind != types.KindImage {
			return Suggestion{}, false
		}
	case actions.SaveTempFile:
		s.Argument = text
	case actions.StripANSI:
		s.Argument = StripANSI(text)
	case actions.OpenApp:
		s.Argument = a.ProcessTemplate(text)
		s.App = appName(a.Template)
	default:
		s.Argument = a.ProcessTemplate(text)
	}
	if a.ActionType.RequiresTemplate() && text == "" {
		return Suggestion{}, false
	}
	return s, true
}

// appName picks the assistant app a prompt template targets
func appName(template string) string {
	lower := strings.ToLower(template)
	if !strings.Contains(lower, "chatgpt") && strings.Contains(lower, "claude") {
		return "Claude"
	}
	return "ChatGPT"
}

func hasScheme(s string) bool {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

func dialable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '+' || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
