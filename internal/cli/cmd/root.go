package cmd

import (
	"fmt"
	"os"

	"github.com/berrythewa/copycopy/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "copycopy",
		Short: "Classify clipboard content and suggest what to do with it",
		Long: `CopyCopy inspects clipboard captures and:
  • Decides what kind of content was copied (files, URL, image, text)
  • Tags text with an entity such as an email, a color or a date
  • Suggests quick actions, including your own custom actions`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			SetConfig(loaded)

			zapLogger = nil
			logger, err := GetLogger()
			if err != nil {
				return err
			}
			logger.Debug("Configuration loaded",
				zap.String("config_file", configFile),
				zap.String("db_path", loaded.Storage.DBPath))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if zapLogger != nil {
				_ = zapLogger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/copycopy/config.yaml)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&quiet, "quiet", false, "only log warnings and errors")
	root.PersistentFlags().BoolVar(&useJSON, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(GetCommands()...)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
