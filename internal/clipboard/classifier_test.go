package clipboard

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func newTestClassifier() *Classifier {
	return NewClassifier(Options{Entities: entity.New(entity.Config{})})
}

func TestClassifyPriority(t *testing.T) {
	c := newTestClassifier()
	img := encodePNG(t, 3, 2)

	tests := []struct {
		name    string
		payload *types.Payload
		want    *types.Result
	}{
		{
			name: "files win over everything",
			payload: &types.Payload{
				ChangeCount: 7,
				FileURLs:    []string{"file:///tmp/a.TXT", "/tmp/b.png", "/tmp/c.txt", "/tmp/Makefile"},
				URL:         "https://example.com",
				Image:       img,
				Text:        "hello",
			},
			want: &types.Result{
				ChangeCount: 7,
				Kind:        types.KindFileReferences,
				Summary:     "4 file(s) (png, txt)",
				FilePaths:   []string{"/tmp/a.TXT", "/tmp/b.png", "/tmp/c.txt", "/tmp/Makefile"},
				Extensions:  []string{"png", "txt"},
			},
		},
		{
			name:    "files without extensions",
			payload: &types.Payload{FileURLs: []string{"/tmp/dir/"}},
			want: &types.Result{
				Kind:       types.KindFileReferences,
				Summary:    "1 file(s)",
				FilePaths:  []string{"/tmp/dir/"},
				Extensions: []string{},
			},
		},
		{
			name:    "web url before image",
			payload: &types.Payload{URL: "https://www.example.com/path", Image: img},
			want: &types.Result{
				Kind:    types.KindURL,
				Summary: "URL — www.example.com",
				URL:     "https://www.example.com/path",
				Host:    "www.example.com",
			},
		},
		{
			name:    "file url is not a web url",
			payload: &types.Payload{URL: "file:///etc/hosts", Image: img},
			want: &types.Result{
				Kind:        types.KindImage,
				Summary:     "Image 3×2",
				ImageWidth:  3,
				ImageHeight: 2,
			},
		},
		{
			name:    "invalid image falls through to text",
			payload: &types.Payload{Image: []byte("not an image"), Text: "hello there"},
			want: &types.Result{
				Kind:    types.KindPlainText,
				Summary: "Text (11 chars): hello there",
				Text:    "hello there",
				Entity:  types.EntityNone,
			},
		},
		{
			name:    "text promoted to url",
			payload: &types.Payload{Text: "  https://example.org/a?b=c \n"},
			want: &types.Result{
				Kind:    types.KindURL,
				Summary: "URL — example.org",
				URL:     "https://example.org/a?b=c",
				Host:    "example.org",
			},
		},
		{
			name:    "text before rich text",
			payload: &types.Payload{Text: "test@example.com", RTF: []byte(`{\rtf1}`), HTML: []byte("<b>x</b>")},
			want: &types.Result{
				Kind:    types.KindPlainText,
				Summary: "Text (16 chars): test@example.com",
				Text:    "test@example.com",
				Entity:  types.EntityEmail,
			},
		},
		{
			name:    "rtf before html",
			payload: &types.Payload{RTF: []byte(`{\rtf1}`), HTML: []byte("<b>x</b>")},
			want: &types.Result{
				Kind:     types.KindRichText,
				Summary:  "Rich text (RTF)",
				RichText: types.RichTextRTF,
			},
		},
		{
			name:    "html",
			payload: &types.Payload{HTML: []byte("<b>x</b>")},
			want: &types.Result{
				Kind:     types.KindRichText,
				Summary:  "Rich text (HTML)",
				RichText: types.RichTextHTML,
			},
		},
		{
			name:    "whitespace text is plain text",
			payload: &types.Payload{Text: " \n\t", HTML: []byte("<b>x</b>")},
			want: &types.Result{
				Kind:    types.KindPlainText,
				Summary: "Text (0 chars): ",
				Entity:  types.EntityNone,
			},
		},
		{
			name:    "url host drops the port",
			payload: &types.Payload{URL: "http://example.com:8080/status"},
			want: &types.Result{
				Kind:    types.KindURL,
				Summary: "URL — example.com",
				URL:     "http://example.com:8080/status",
				Host:    "example.com",
			},
		},
		{
			name:    "text url host drops the port",
			payload: &types.Payload{Text: " https://localhost:3000/ "},
			want: &types.Result{
				Kind:    types.KindURL,
				Summary: "URL — localhost",
				URL:     "https://localhost:3000/",
				Host:    "localhost",
			},
		},
		{
			name: "unknown lists formats",
			payload: &types.Payload{Formats: []string{
				"public.f", "public.b", "public.a", "public.b", "public.e", "public.d", "public.c",
			}},
			want: &types.Result{
				Kind:    types.KindUnknown,
				Summary: "Unknown types: public.a, public.b, public.c, public.d, public.e",
				Formats: []string{"public.a", "public.b", "public.c", "public.d", "public.e"},
			},
		},
		{
			name:    "empty payload",
			payload: &types.Payload{},
			want: &types.Result{
				Kind:    types.KindUnknown,
				Summary: "Unknown content",
				Formats: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.payload)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyNilPayload(t *testing.T) {
	got := NewClassifier(Options{}).Classify(nil)
	require.NotNil(t, got)
	assert.Equal(t, types.KindUnknown, got.Kind)
	assert.Equal(t, "Unknown content", got.Summary)
}

func TestTextSummaryTruncation(t *testing.T) {
	c := NewClassifier(Options{})
	text := strings.Repeat("é", 150)

	got := c.Classify(&types.Payload{Text: "\n" + text + "\n"})
	assert.Equal(t, types.KindPlainText, got.Kind)
	assert.Equal(t, "Text (150 chars): "+strings.Repeat("é", 140)+"…", got.Summary)
	assert.Equal(t, text, got.Text)

	exact := strings.Repeat("a", 140)
	got = c.Classify(&types.Payload{Text: exact})
	assert.Equal(t, "Text (140 chars): "+exact, got.Summary)
}

func TestFileExtensionsProperty(t *testing.T) {
	c := NewClassifier(Options{})
	inputs := [][]string{
		{"/a/b.Go", "/a/c.go", "/a/d.GO"},
		{"/x/.bashrc", "/x/archive.tar.gz", "/x/README"},
		{"file:///Users/me/Pictures/photo.JPEG"},
	}
	wants := [][]string{
		{"go"},
		{"gz"},
		{"jpeg"},
	}
	for i, in := range inputs {
		got := c.Classify(&types.Payload{FileURLs: in})
		assert.Equal(t, types.KindFileReferences, got.Kind)
		assert.Equal(t, wants[i], got.Extensions)
		assert.Contains(t, got.Summary, strings.Join(wants[i], ", "))
	}
}

func TestDetectURL(t *testing.T) {
	tests := []struct {
		text string
		ok   bool
		host string
	}{
		{"https://www.example.com/path", true, "www.example.com"},
		{"http://localhost:8080", true, "localhost"},
		{"http://:8080/x", false, ""},
		{"HTTPS://EXAMPLE.COM", true, "EXAMPLE.COM"},
		{"  https://example.com  ", true, "example.com"},
		{"test@example.com", false, ""},
		{"mailto:test@example.com", false, ""},
		{"ftp://example.com/file", false, ""},
		{"https://", false, ""},
		{"see https://example.com", false, ""},
		{"https://example.com\nmore", false, ""},
		{"example.com", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			u, ok := DetectURL(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, u)
				assert.Equal(t, tt.host, u.Hostname())
			}
		})
	}
}

func TestHTTPSHostProperty(t *testing.T) {
	c := newTestClassifier()
	for _, host := range []string{"example.com", "api.github.com", "a.b.c.d.org"} {
		got := c.Classify(&types.Payload{Text: "https://" + host + "/some/path"})
		assert.Equal(t, types.KindURL, got.Kind)
		assert.Contains(t, got.Summary, host)
	}
}

func TestEmailIsNotURL(t *testing.T) {
	got := newTestClassifier().Classify(&types.Payload{Text: "test@example.com"})
	assert.Equal(t, types.KindPlainText, got.Kind)
	assert.Equal(t, types.EntityEmail, got.Entity)
}

func TestClassifyIsIdempotent(t *testing.T) {
	c := newTestClassifier()
	p := &types.Payload{ChangeCount: 3, Text: `{"key":"value"}`}

	first := c.Classify(p)
	second := c.Classify(p)
	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, types.EntityJSON, first.Entity)
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "png", ImageFormat(encodePNG(t, 1, 1)))
	assert.Empty(t, ImageFormat([]byte("GIF8")))

	w, h, ok := imageSize(encodePNG(t, 640, 480))
	require.True(t, ok)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}
