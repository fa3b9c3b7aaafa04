package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "ok done", StripANSI("\x1b[32mok\x1b[0m \x1b[1;31mdone\x1b[K"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestPrettyJSON(t *testing.T) {
	got, err := PrettyJSON(` {"a":1,"b":[true,null]} `)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}", got)

	_, err = PrettyJSON("{not json")
	assert.Error(t, err)
}

func TestDecodeBase64(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"standard", "VGhpcyBpcyBhIHRlc3Qgc3RyaW5n", "This is a test string"},
		{"unpadded", "VGhpcyBpcyBhIHRlc3Q", "This is a test"},
		{"url safe", "fn5-Pz8_", "~~~???"},
		{"line breaks", "VGhpcyBp\ncyBhIHRl\r\nc3Q=", "This is a test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DecodeBase64("/w==")
	assert.ErrorIs(t, err, ErrNotText)

	_, err = DecodeBase64("not base64!")
	assert.Error(t, err)
}

func TestDecodeURLEncoded(t *testing.T) {
	got, err := DecodeURLEncoded("hello%20world%21+x")
	require.NoError(t, err)
	assert.Equal(t, "hello world!+x", got)

	_, err = DecodeURLEncoded("nothing here")
	assert.ErrorIs(t, err, ErrNothingToDo)

	_, err = DecodeURLEncoded("bad%zz")
	assert.Error(t, err)
}

func TestRenderMarkdown(t *testing.T) {
	got, err := RenderMarkdown("# Title\n\nThis is **bold** text.\n\n- [x] done")
	require.NoError(t, err)
	assert.Contains(t, got, "<h1>Title</h1>")
	assert.Contains(t, got, "<strong>bold</strong>")
	assert.Contains(t, got, `type="checkbox"`)
}
