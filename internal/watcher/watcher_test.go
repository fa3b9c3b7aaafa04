package watcher

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/berrythewa/copycopy/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))))
	return buf.Bytes()
}

func TestReadPayload(t *testing.T) {
	dir := t.TempDir()
	img := pngBytes(t)

	tests := []struct {
		name  string
		file  string
		data  []byte
		check func(t *testing.T, p *types.Payload)
	}{
		{"text", "note.txt", []byte("hello"), func(t *testing.T, p *types.Payload) {
			assert.Equal(t, "hello", p.Text)
			assert.Equal(t, []string{FormatPlainText}, p.Formats)
		}},
		{"no extension", "README", []byte("x"), func(t *testing.T, p *types.Payload) {
			assert.Equal(t, "x", p.Text)
		}},
		{"image", "shot.PNG", img, func(t *testing.T, p *types.Payload) {
			assert.Equal(t, img, p.Image)
			assert.Equal(t, []string{"public.png"}, p.Formats)
			assert.Empty(t, p.Text)
		}},
		{"rtf", "doc.rtf", []byte(`{\rtf1 hi}`), func(t *testing.T, p *types.Payload) {
			assert.Equal(t, []byte(`{\rtf1 hi}`), p.RTF)
		}},
		{"html", "page.htm", []byte("<b>hi</b>"), func(t *testing.T, p *types.Payload) {
			assert.Equal(t, []byte("<b>hi</b>"), p.HTML)
		}},
		{"url", "link.url", []byte("https://go.dev/doc\nignored\n"), func(t *testing.T, p *types.Payload) {
			assert.Equal(t, "https://go.dev/doc", p.URL)
			assert.Equal(t, "https://go.dev/doc", p.Text)
		}},
		{"files", "pick.files", []byte("/tmp/a.txt\n\n  /tmp/b.png \n"), func(t *testing.T, p *types.Payload) {
			assert.Equal(t, []string{"/tmp/a.txt", "/tmp/b.png"}, p.FileURLs)
		}},
		{"binary", "blob.bin", []byte{0xff, 0xfe, 0x00}, func(t *testing.T, p *types.Payload) {
			assert.Empty(t, p.Text)
			assert.Equal(t, []string{FormatData}, p.Formats)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.data)
			p, err := ReadPayload(path, 0)
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestReadPayloadLimits(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.txt", bytes.Repeat([]byte("a"), 11))

	_, err := ReadPayload(path, 10)
	assert.ErrorIs(t, err, ErrTooLarge)

	p, err := ReadPayload(path, 11)
	require.NoError(t, err)
	assert.Len(t, p.Text, 11)

	_, err = ReadPayload(filepath.Join(dir, "missing.txt"), 0)
	assert.Error(t, err)
}

func TestNewDirSourceErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := NewDirSource(filepath.Join(dir, "missing"), 0, nil)
	assert.Error(t, err)

	file := writeFile(t, dir, "plain.txt", []byte("x"))
	_, err = NewDirSource(file, 0, nil)
	assert.ErrorContains(t, err, "not a directory")
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	src, err := NewDirSource(dir, 0, nil)
	require.NoError(t, err)
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- src.Run(ctx) }()

	p, err := src.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	writeFile(t, dir, ".hidden", []byte("secret"))
	writeFile(t, dir, "first.txt", []byte("first"))

	require.Eventually(t, func() bool {
		p, _ := src.Read(ctx)
		return p != nil && p.Text == "first"
	}, 5*time.Second, 10*time.Millisecond)

	first, _ := src.Read(ctx)
	assert.False(t, first.Captured.IsZero())

	writeFile(t, dir, "second.txt", []byte("second"))
	require.Eventually(t, func() bool {
		p, _ := src.Read(ctx)
		return p != nil && p.Text == "second"
	}, 5*time.Second, 10*time.Millisecond)

	second, _ := src.Read(ctx)
	assert.Greater(t, second.ChangeCount, first.ChangeCount)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	_, err = src.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
