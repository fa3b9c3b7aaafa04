package clipboard

import (
	"net/url"
	"path"
	"sort"
	"strings"
	"unicode"
)

// DetectURL reports whether the whole of text is a single http or https
// URL with a host. Surrounding whitespace is ignored; whitespace inside the
// text never matches.
func DetectURL(text string) (*url.URL, bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.IndexFunc(text, unicode.IsSpace) >= 0 {
		return nil, false
	}
	return webURL(text)
}

// webURL parses s and accepts only http and https URLs with a host
func webURL(s string) (*url.URL, bool) {
	if s == "" {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, false
	}
	if u.Hostname() == "" {
		return nil, false
	}
	return u, true
}

// filePaths turns file references, given either as paths or file:// URLs,
// into plain paths.
func filePaths(refs []string) []string {
	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		paths = append(paths, filePath(ref))
	}
	return paths
}

func filePath(ref string) string {
	if !strings.HasPrefix(strings.ToLower(ref), "file:") {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return ref
	}
	return u.Path
}

// extensions returns the sorted set of lower-cased, non-empty extensions
// without the leading dot
func extensions(paths []string) []string {
	seen := make(map[string]struct{})
	for _, p := range paths {
		base := path.Base(strings.TrimRight(p, "/"))
		ext := path.Ext(base)
		// dotfiles like .bashrc have no extension
		if ext == base {
			continue
		}
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if ext == "" {
			continue
		}
		seen[ext] = struct{}{}
	}

	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// distinctFormats returns up to max distinct format identifiers, sorted
func distinctFormats(formats []string, max int) []string {
	seen := make(map[string]struct{}, len(formats))
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	if len(out) > max {
		out = out[:max]
	}
	return out
}
