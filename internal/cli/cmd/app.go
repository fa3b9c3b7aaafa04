package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/berrythewa/copycopy/internal/clipboard"
	"github.com/berrythewa/copycopy/internal/config"
	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/berrythewa/copycopy/internal/nlp"
	"github.com/berrythewa/copycopy/internal/storage"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/berrythewa/copycopy/internal/watcher"
	"github.com/berrythewa/copycopy/pkg/format"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func newDetector(cfg *config.Config, logger *zap.Logger) *entity.Detector {
	caps := nlp.New(cfg.NLPOptions(), logger)
	return entity.New(entity.Config{
		Thresholds: cfg.Entity.Thresholds,
		Limits:     cfg.Entity.Limits,
		Data:       caps.Data,
		Language:   caps.Language,
		Names:      caps.Names,
		Logger:     logger,
	})
}

func newClassifier(cfg *config.Config, logger *zap.Logger) *clipboard.Classifier {
	opts := clipboard.Options{
		SummaryLength: cfg.Classifier.SummaryLength,
		MaxFormats:    cfg.Classifier.MaxFormats,
		Logger:        logger,
	}
	if cfg.Entity.Enabled {
		opts.Entities = newDetector(cfg, logger)
	}
	return clipboard.NewClassifier(opts)
}

func newProcessor(cfg *config.Config, logger *zap.Logger) *clipboard.Processor {
	p := clipboard.NewProcessor(logger)
	p.MaxSizeBytes = cfg.Classifier.MaxPayloadBytes
	if cfg.Classifier.TrimText {
		p.AddTransformer(clipboard.TrimTransformer())
	}
	p.AddTransformer(clipboard.ExistingFilesTransformer(logger))
	if len(cfg.Classifier.ExcludeFormats) > 0 {
		p.AddFilter(clipboard.ExcludeFormatsFilter(cfg.Classifier.ExcludeFormats...))
	}
	return p
}

func openStore(cfg *config.Config, logger *zap.Logger) (*storage.ActionStore, error) {
	return storage.NewActionStore(storage.StoreConfig{
		DBPath: cfg.Storage.DBPath,
		Logger: logger,
	})
}

// newFormatter enables colors and icons only when writing to a terminal
func newFormatter(out io.Writer) *format.Formatter {
	opts := format.DefaultOptions()
	if noColor || !isTerminal(out) {
		opts.UseColors = false
		opts.UseIcons = false
	}
	return format.New(opts)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// payloadFlags describes a capture on the command line
type payloadFlags struct {
	stdin       bool
	files       []string
	url         string
	image       string
	rtf         string
	html        string
	formats     []string
	changeCount int64
}

func (f *payloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.stdin, "stdin", false, "read the text from standard input")
	cmd.Flags().StringArrayVar(&f.files, "file", nil, "file reference (path or file:// URL), repeatable")
	cmd.Flags().StringVar(&f.url, "url", "", "URL representation")
	cmd.Flags().StringVar(&f.image, "image", "", "read the image representation from a file")
	cmd.Flags().StringVar(&f.rtf, "rtf", "", "read the RTF representation from a file")
	cmd.Flags().StringVar(&f.html, "html", "", "read the HTML representation from a file")
	cmd.Flags().StringArrayVar(&f.formats, "type", nil, "advertised format identifier, repeatable")
	cmd.Flags().Int64Var(&f.changeCount, "change-count", 0, "change counter passed through to the result")
}

// build assembles the payload. Positional args are joined into the text.
// Without --type the format list is derived from the representations given.
func (f *payloadFlags) build(in io.Reader, args []string) (*types.Payload, error) {
	p := &types.Payload{
		ChangeCount: f.changeCount,
		FileURLs:    f.files,
		URL:         f.url,
		Text:        strings.Join(args, " "),
		Captured:    time.Now(),
	}

	if f.stdin {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		p.Text = string(data)
	}

	var err error
	if p.Image, err = readOptional(f.image); err != nil {
		return nil, err
	}
	if p.RTF, err = readOptional(f.rtf); err != nil {
		return nil, err
	}
	if p.HTML, err = readOptional(f.html); err != nil {
		return nil, err
	}

	p.Formats = f.formats
	if len(p.Formats) == 0 {
		p.Formats = derivedFormats(p)
	}
	return p, nil
}

func readOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func derivedFormats(p *types.Payload) []string {
	var formats []string
	if len(p.FileURLs) > 0 {
		formats = append(formats, watcher.FormatFileURL)
	}
	if p.URL != "" {
		formats = append(formats, watcher.FormatURL)
	}
	if len(p.Image) > 0 {
		if f := clipboard.ImageFormat(p.Image); f != "" {
			formats = append(formats, "public."+f)
		}
	}
	if p.Text != "" {
		formats = append(formats, watcher.FormatPlainText)
	}
	if len(p.RTF) > 0 {
		formats = append(formats, watcher.FormatRTF)
	}
	if len(p.HTML) > 0 {
		formats = append(formats, watcher.FormatHTML)
	}
	return formats
}
