package watcher

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/berrythewa/copycopy/internal/types"
)

// Format identifiers advertised for dropped files, named after the
// pasteboard types a copy of the same content would carry.
const (
	FormatPlainText = "public.utf8-plain-text"
	FormatRTF       = "public.rtf"
	FormatHTML      = "public.html"
	FormatFileURL   = "public.file-url"
	FormatURL       = "public.url"
	FormatData      = "public.data"
)

var imageFormats = map[string]string{
	".png":  "public.png",
	".jpg":  "public.jpeg",
	".jpeg": "public.jpeg",
	".gif":  "com.compuserve.gif",
	".tif":  "public.tiff",
	".tiff": "public.tiff",
	".bmp":  "com.microsoft.bmp",
	".webp": "org.webmproject.webp",
}

// ReadPayload builds a capture from a file. The extension picks the
// representation:
//
//	.png .jpg .gif .tiff .bmp .webp  image
//	.rtf                             rich text (RTF)
//	.html .htm                       rich text (HTML)
//	.url                             URL on the first line
//	.files                           one file path per line
//
// Anything else is plain text when it is valid UTF-8, otherwise opaque data.
func ReadPayload(path string, maxBytes int64) (*types.Payload, error) {
	data, err := readLimited(path, maxBytes)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	p := &types.Payload{}

	if format, ok := imageFormats[ext]; ok {
		p.Image = data
		p.Formats = []string{format}
		return p, nil
	}

	switch ext {
	case ".rtf":
		p.RTF = data
		p.Formats = []string{FormatRTF}
	case ".html", ".htm":
		p.HTML = data
		p.Formats = []string{FormatHTML}
	case ".url":
		p.URL = firstLine(data)
		p.Text = p.URL
		p.Formats = []string{FormatURL, FormatPlainText}
	case ".files":
		p.FileURLs = lines(data)
		p.Formats = []string{FormatFileURL}
	default:
		if !utf8.Valid(data) {
			p.Formats = []string{FormatData}
			return p, nil
		}
		p.Text = string(data)
		p.Formats = []string{FormatPlainText}
	}
	return p, nil
}

func readLimited(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}
	return data, nil
}

func firstLine(data []byte) string {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	return strings.TrimSpace(string(line))
}

func lines(data []byte) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out
}
