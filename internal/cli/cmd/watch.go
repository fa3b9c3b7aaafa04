package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/berrythewa/copycopy/internal/clipboard"
	"github.com/berrythewa/copycopy/internal/source"
	"github.com/berrythewa/copycopy/internal/suggest"
	"github.com/berrythewa/copycopy/internal/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd() *cobra.Command {
	var (
		maxBytes int64
		bundleID string
	)

	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Classify files as they are dropped into a directory",
		Long: `Watch DIR and treat every file created or rewritten there as a new
clipboard capture. Two captures in quick succession count as a double copy
and print the suggested actions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetZapLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			src, err := watcher.NewDirSource(args[0], maxBytes, logger)
			if err != nil {
				return err
			}
			defer src.Close()

			var engine *suggest.Engine
			if store, err := openStore(cfg, logger); err != nil {
				logger.Warn("Custom actions unavailable", zap.Error(err))
				engine = suggest.New(nil, logger)
			} else {
				defer store.Close()
				engine = suggest.New(store, logger)
			}

			out := cmd.OutOrStdout()
			formatter := newFormatter(out)
			sourceCtx := source.Detect(bundleID, "")

			handler := func(e clipboard.Event) {
				fmt.Fprintln(out, formatter.FormatResult(e.Result))
				if e.DoubleCopy && cfg.Monitor.OpenOnDoubleCopy {
					suggestions := engine.Suggest(suggest.Context{Result: e.Result, Source: sourceCtx})
					fmt.Fprintln(out, formatter.FormatSuggestions(suggestions))
				}
				fmt.Fprintln(out, formatter.Separator())
			}

			monitor := clipboard.NewMonitor(src,
				newClassifier(cfg, logger),
				newProcessor(cfg, logger),
				handler,
				clipboard.MonitorOptions{
					Interval:            cfg.Monitor.PollInterval,
					DoubleCopyThreshold: cfg.Monitor.DoubleCopyThreshold,
				},
				logger)

			var wg sync.WaitGroup
			errs := make(chan error, 2)
			for _, run := range []func(context.Context) error{src.Run, monitor.Run} {
				wg.Add(1)
				go func(run func(context.Context) error) {
					defer wg.Done()
					defer cancel()
					errs <- run(ctx)
				}(run)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", args[0])
			wg.Wait()
			close(errs)

			for err := range errs {
				if err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&maxBytes, "max-size", watcher.DefaultMaxFileBytes, "largest file read, in bytes")
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "source application reported for captures")
	return cmd
}
