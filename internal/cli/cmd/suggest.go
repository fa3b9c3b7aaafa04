package cmd

import (
	"fmt"

	"github.com/berrythewa/copycopy/internal/actions"
	"github.com/berrythewa/copycopy/internal/source"
	"github.com/berrythewa/copycopy/internal/suggest"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/berrythewa/copycopy/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSuggestCmd() *cobra.Command {
	var (
		flags    payloadFlags
		bundleID string
		appName  string
		builtIn  bool
		saveTemp bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [text...]",
		Short: "Suggest actions for a clipboard capture",
		Long: `Suggest actions for a capture. The source application, given by bundle
identifier or name, selects terminal, IDE and browser specific actions.

Example:
  copycopy suggest --bundle-id com.apple.Terminal "ls -la"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetZapLogger()

			payload, err := flags.build(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if payload = newProcessor(cfg, logger).Process(payload); payload == nil {
				return errDropped
			}
			result := newClassifier(cfg, logger).Classify(payload)
			ctx := source.Detect(bundleID, appName)

			var engine *suggest.Engine
			if builtIn {
				engine = suggest.New(nil, logger)
			} else {
				store, err := openStore(cfg, logger)
				if err != nil {
					logger.Warn("Custom actions unavailable", zap.Error(err))
					engine = suggest.New(nil, logger)
				} else {
					defer store.Close()
					engine = suggest.New(store, logger)
				}
			}

			suggestions := engine.Suggest(suggest.Context{Result: result, Source: ctx})
			if saveTemp {
				if err := saveTempFiles(suggestions, cfg.SystemPaths.TempDir, logger); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if useJSON {
				return writeJSON(out, struct {
					Result      *types.Result        `json:"result"`
					Source      source.Context       `json:"source"`
					Suggestions []suggest.Suggestion `json:"suggestions"`
				}{result, ctx, suggestions})
			}

			f := newFormatter(out)
			fmt.Fprintln(out, f.FormatResult(result))
			fmt.Fprintf(out, "\nSource: %s\n", ctx.DisplayName())
			fmt.Fprintln(out, f.FormatSuggestions(suggestions))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "bundle identifier of the source application")
	cmd.Flags().StringVar(&appName, "app", "", "name of the source application")
	cmd.Flags().BoolVar(&builtIn, "builtin-only", false, "skip custom actions")
	cmd.Flags().BoolVar(&saveTemp, "save-temp", false, "write the text of temp-file suggestions to the temp directory")
	return cmd
}

const (
	tempFilePrefix = "clip"
	tempFileExt    = ".txt"
)

// saveTempFiles writes the argument of each temp-file suggestion to dir and
// records the written path on the suggestion.
func saveTempFiles(list []suggest.Suggestion, dir string, logger *zap.Logger) error {
	for i := range list {
		if list[i].Action != actions.SaveTempFile {
			continue
		}
		path, err := utils.WriteTempFile(dir, tempFilePrefix, tempFileExt, []byte(list[i].Argument))
		if err != nil {
			return fmt.Errorf("failed to save temp file: %w", err)
		}
		logger.Info("Saved temp file", zap.String("path", path))
		list[i].Paths = []string{path}
	}
	return nil
}
