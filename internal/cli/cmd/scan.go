package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/berrythewa/copycopy/internal/types"
	"github.com/berrythewa/copycopy/pkg/format"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const maxScanLine = 1024 * 1024

func newScanCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Classify every line of a file and print statistics",
		Long: `Classify each non-empty line of FILE as a plain-text capture and print
how often each kind and entity occurred. Use "-" to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetZapLogger()

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			formatter := newFormatter(out)
			compact := format.PlainOptions()
			compact.Compact = true
			lineFormatter := format.New(compact)

			classifier := newClassifier(cfg, logger)
			stats := format.NewEntityStats()
			started := time.Now()

			sc := bufio.NewScanner(in)
			sc.Buffer(make([]byte, 64*1024), maxScanLine)
			lineNo := 0
			for sc.Scan() {
				lineNo++
				line := sc.Text()
				if strings.TrimSpace(line) == "" {
					continue
				}
				result := classifier.Classify(&types.Payload{ChangeCount: int64(lineNo), Text: line})
				stats.Add(result, len(line))
				if list && !useJSON {
					fmt.Fprintf(out, "%5d  %s\n", lineNo, lineFormatter.FormatResult(result))
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			logger.Info("Scan complete",
				zap.Int("lines", lineNo),
				zap.Int("classified", stats.Total),
				zap.Duration("elapsed", time.Since(started)))

			if useJSON {
				return writeJSON(out, stats)
			}
			if list {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, formatter.FormatStats(stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print the classification of every line")
	return cmd
}
