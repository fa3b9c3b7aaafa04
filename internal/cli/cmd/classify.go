package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errDropped = errors.New("payload dropped by the content filters")

func newClassifyCmd() *cobra.Command {
	var flags payloadFlags

	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify a clipboard capture",
		Long: `Classify a capture described by flags. Positional arguments form the
plain-text representation; the other representations come from flags.

Examples:
  copycopy classify "#ff8800"
  copycopy classify --file ~/report.pdf --file ~/notes.txt
  copycopy classify --image shot.png --type public.png
  pbpaste | copycopy classify --stdin --json`,
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
			logger.Debug("Classified payload",
				zap.String("kind", string(result.Kind)),
				zap.String("entity", string(result.Entity)))

			if useJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), newFormatter(cmd.OutOrStdout()).FormatResult(result))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
