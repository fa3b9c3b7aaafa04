// Package source tells which kind of application a copy came from
package source

import (
	"fmt"
	"strings"
)

// Context is the family of the application that produced a copy
type Context string

const (
	Terminal Context = "terminal"
	IDE      Context = "ide"
	Browser  Context = "browser"
	Other    Context = "other"
)

// Contexts lists every context in detection order
var Contexts = []Context{Terminal, IDE, Browser, Other}

type appFamily struct {
	context  Context
	exact    map[string]struct{}
	prefixes []string
	hints    []string
}

func set(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

// families are checked in order; the first that recognizes the app wins
var families = []appFamily{
	{
		context: Terminal,
		exact: set(
			"com.apple.terminal",
			"com.googlecode.iterm2",
			"com.mitchellh.ghostty",
			"dev.warp.warp",
			"dev.warp.warp-stable",
			"com.github.wez.wezterm",
			"org.alacritty",
			"co.zeit.hyper",
			"net.kovidgoyal.kitty",
		),
		prefixes: []string{"com.googlecode.iterm2"},
		hints:    []string{"terminal", "iterm", "ghostty", "warp", "wezterm", "alacritty", "hyper", "kitty"},
	},
	{
		context: IDE,
		exact: set(
			"com.apple.dt.xcode",
			"com.microsoft.vscode",
			"com.jetbrains.intellij",
			"com.jetbrains.pycharm",
			"com.jetbrains.webstorm",
			"com.jetbrains.goland",
			"com.jetbrains.rubymine",
			"com.jetbrains.clion",
			"com.jetbrains.rider",
			"com.jetbrains.datagrip",
			"com.jetbrains.fleet",
			"com.sublimetext.4",
			"com.sublimetext.3",
			"com.panic.nova",
			"com.barebones.bbedit",
			"abnerworks.typora",
			"md.obsidian",
			"com.cursor.cursor",
		),
		prefixes: []string{"com.jetbrains."},
		hints: []string{
			"xcode", "vscode", "visual studio code", "intellij", "pycharm", "webstorm", "goland",
			"rubymine", "clion", "rider", "sublime", "nova", "bbedit", "cursor", "zed",
		},
	},
	{
		context: Browser,
		exact: set(
			"com.apple.safari",
			"com.google.chrome",
			"org.mozilla.firefox",
			"com.microsoft.edgemac",
			"com.brave.browser",
			"com.operasoftware.opera",
			"com.vivaldi.vivaldi",
			"company.thebrowser.browser",
		),
		hints: []string{"safari", "chrome", "firefox", "edge", "brave", "opera", "vivaldi", "arc"},
	},
}

// Detect returns the context of the app identified by bundleID and/or
// appName. Either may be empty. Bundle identifiers are matched exactly or
// by prefix, app names by case-insensitive substring.
func Detect(bundleID, appName string) Context {
	id := strings.ToLower(bundleID)
	name := strings.ToLower(appName)
	for _, f := range families {
		if f.matches(id, name) {
			return f.context
		}
	}
	return Other
}

func (f appFamily) matches(id, name string) bool {
	if id != "" {
		if _, ok := f.exact[id]; ok {
			return true
		}
		for _, p := range f.prefixes {
			if strings.HasPrefix(id, p) {
				return true
			}
		}
	}
	if name == "" {
		return false
	}
	for _, h := range f.hints {
		if strings.Contains(name, h) {
			return true
		}
	}
	return false
}

// DisplayName returns a title-cased label
func (c Context) DisplayName() string {
	switch c {
	case Terminal:
		return "Terminal"
	case IDE:
		return "IDE"
	case Browser:
		return "Browser"
	default:
		return "Other"
	}
}

// ParseContext parses a context name, ignoring case
func ParseContext(s string) (Context, error) {
	for _, c := range Contexts {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return Other, fmt.Errorf("unknown source context %q", s)
}
