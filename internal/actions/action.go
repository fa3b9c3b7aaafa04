// Package actions models the user-configurable quick actions offered for a
// clipboard capture and the filters deciding when each one applies.
package actions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/berrythewa/copycopy/internal/source"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/google/uuid"
)

// ActionType is what an action does with its processed template
type ActionType string

const (
	OpenURL         ActionType = "openURL"
	ShellCommand    ActionType = "shellCommand"
	OpenApp         ActionType = "openApp"
	RevealInFinder  ActionType = "revealInFinder"
	OpenFile        ActionType = "openFile"
	CopyToClipboard ActionType = "copyToClipboard"
	SaveImage       ActionType = "saveImage"
	SaveTempFile    ActionType = "saveTempFile"
	StripANSI       ActionType = "stripANSI"
)

// ActionTypes lists every action type
var ActionTypes = []ActionType{
	OpenURL, ShellCommand, OpenApp, RevealInFinder, OpenFile,
	CopyToClipboard, SaveImage, SaveTempFile, StripANSI,
}

func (t ActionType) DisplayName() string {
	switch t {
	case OpenURL:
		return "Open URL"
	case ShellCommand:
		return "Run Shell Command"
	case OpenApp:
		return "Open App"
	case RevealInFinder:
		return "Reveal in Finder"
	case OpenFile:
		return "Open File"
	case CopyToClipboard:
		return "Copy to Clipboard"
	case SaveImage:
		return "Save Image"
	case SaveTempFile:
		return "Save as Temp File"
	case StripANSI:
		return "Strip ANSI Codes"
	default:
		return string(t)
	}
}

// SystemImage is the SF Symbol name shown next to the action
func (t ActionType) SystemImage() string {
	switch t {
	case OpenURL:
		return "link"
	case ShellCommand:
		return "terminal"
	case OpenApp:
		return "app"
	case RevealInFinder:
		return "folder"
	case OpenFile:
		return "doc"
	case CopyToClipboard:
		return "doc.on.clipboard"
	case SaveImage:
		return "photo"
	case SaveTempFile:
		return "doc.badge.plus"
	case StripANSI:
		return "eraser"
	default:
		return "star"
	}
}

// RequiresTemplate reports whether the action needs a template to run
func (t ActionType) RequiresTemplate() bool {
	switch t {
	case OpenURL, ShellCommand, OpenApp, CopyToClipboard:
		return true
	default:
		return false
	}
}

func (t ActionType) Valid() bool {
	for _, a := range ActionTypes {
		if a == t {
			return true
		}
	}
	return false
}

// ContentTypeFilter restricts an action to some kinds of content
type ContentTypeFilter string

const (
	ContentAny   ContentTypeFilter = "any"
	ContentText  ContentTypeFilter = "text"
	ContentURL   ContentTypeFilter = "url"
	ContentImage ContentTypeFilter = "image"
	ContentFiles ContentTypeFilter = "files"
)

var ContentTypeFilters = []ContentTypeFilter{ContentAny, ContentText, ContentURL, ContentImage, ContentFiles}

// Matches reports whether kind passes the filter. Text covers both plain
// and rich text.
func (f ContentTypeFilter) Matches(kind types.Kind) bool {
	switch f {
	case ContentAny, "":
		return true
	case ContentText:
		return kind == types.KindPlainText || kind == types.KindRichText
	case ContentURL:
		return kind == types.KindURL
	case ContentImage:
		return kind == types.KindImage
	case ContentFiles:
		return kind == types.KindFileReferences
	default:
		return false
	}
}

// SourceContextFilter restricts an action to copies from some applications
type SourceContextFilter string

const (
	SourceAny      SourceContextFilter = "any"
	SourceTerminal SourceContextFilter = "terminal"
	SourceIDE      SourceContextFilter = "ide"
	SourceBrowser  SourceContextFilter = "browser"
)

var SourceContextFilters = []SourceContextFilter{SourceAny, SourceTerminal, SourceIDE, SourceBrowser}

func (f SourceContextFilter) Matches(ctx source.Context) bool {
	if f == SourceAny || f == "" {
		return true
	}
	return string(f) == string(ctx)
}

// EntityFilter restricts an action to one entity tag, or "any"
type EntityFilter string

const EntityAny EntityFilter = "any"

// EntityFilterFor builds a filter accepting exactly e
func EntityFilterFor(e types.Entity) EntityFilter {
	return EntityFilter(e)
}

func (f EntityFilter) Matches(e types.Entity) bool {
	if f == EntityAny || f == "" {
		return true
	}
	return types.Entity(f) == e
}

// CustomAction is a user-visible quick action
type CustomAction struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	ActionType    ActionType          `json:"action_type"`
	Template      string              `json:"template"`
	ContentFilter ContentTypeFilter   `json:"content_filter"`
	SourceFilter  SourceContextFilter `json:"source_filter"`
	EntityFilter  EntityFilter        `json:"entity_filter"`
	SystemImage   string              `json:"system_image"`
	Enabled       bool                `json:"enabled"`
	BuiltIn       bool                `json:"built_in"`
}

// New creates an enabled action with a fresh ID and permissive filters
func New(name string, actionType ActionType, template string) CustomAction {
	return CustomAction{
		ID:            uuid.New(),
		Name:          name,
		ActionType:    actionType,
		Template:      template,
		ContentFilter: ContentAny,
		SourceFilter:  SourceAny,
		EntityFilter:  EntityAny,
		SystemImage:   actionType.SystemImage(),
		Enabled:       true,
	}
}

// Matches reports whether an enabled action applies to a capture
func (a CustomAction) Matches(kind types.Kind, ctx source.Context, entity types.Entity) bool {
	return a.Enabled &&
		a.ContentFilter.Matches(kind) &&
		a.SourceFilter.Matches(ctx) &&
		a.EntityFilter.Matches(entity)
}

// Validate checks the action can be stored
func (a CustomAction) Validate() error {
	var errs []error
	if a.ID == uuid.Nil {
		errs = append(errs, errors.New("missing id"))
	}
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, errors.New("missing name"))
	}
	if !a.ActionType.Valid() {
		errs = append(errs, fmt.Errorf("unknown action type %q", a.ActionType))
	} else if a.ActionType.RequiresTemplate() && strings.TrimSpace(a.Template) == "" {
		errs = append(errs, fmt.Errorf("%s requires a template", a.ActionType.DisplayName()))
	}
	if a.EntityFilter != EntityAny && a.EntityFilter != "" {
		if _, err := types.ParseEntity(string(a.EntityFilter)); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid action %q: %w", a.Name, err)
	}
	return nil
}
