package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newEntityCmd() *cobra.Command {
	var (
		stdin bool
		trace bool
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "entity [text...]",
		Short: "Print the entity tag of a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			detector := newDetector(cfg, GetZapLogger())
			out := cmd.OutOrStdout()

			if list {
				for _, name := range detector.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			text := strings.Join(args, " ")
			if stdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read from stdin: %w", err)
				}
				text = string(data)
			}

			detection := detector.Trace(text)
			switch {
			case useJSON:
				return writeJSON(out, detection)
			case trace && detection.Matcher != "":
				fmt.Fprintf(out, "%s (%s)\n", detection.Entity, detection.Matcher)
			default:
				fmt.Fprintln(out, detection.Entity)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdin, "stdin", false, "read the text from standard input")
	cmd.Flags().BoolVar(&trace, "trace", false, "also print the detector that matched")
	cmd.Flags().BoolVar(&list, "list", false, "list the detectors in evaluation order")
	return cmd
}
