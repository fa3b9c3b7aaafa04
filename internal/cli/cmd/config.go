package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/berrythewa/copycopy/internal/config"
	"github.com/berrythewa/copycopy/pkg/utils"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CopyCopy configuration",
		Long: `Manage CopyCopy configuration:
  • Initialize a configuration file with the defaults
  • Show the effective configuration
  • Print where the configuration and database live
  • Validate a configuration file
  • Remove temp files written by "suggest --save-temp"`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigValidateCmd())
	cmd.AddCommand(newConfigCleanCmd())
	return cmd
}

// configPath is --config when given, otherwise the platform default
func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	path, err := config.GetActiveConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get active config path: %w", err)
	}
	return path, nil
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetZapLogger()

			path, err := configPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("configuration already exists at %s\nUse --force to overwrite or 'copycopy config show' to view current config", path)
			}

			defaults := config.DefaultConfig()
			logger.Info("Initializing configuration", zap.String("config_path", path))
			if err := defaults.Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Configuration initialized at: %s\n", path)
			fmt.Fprintf(out, "✓ Database path: %s\n", defaults.Storage.DBPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force overwrite existing configuration")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if useJSON {
				format = "json"
			}
			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), cfg)
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml or json)")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print configuration and data locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if useJSON {
				return writeJSON(out, map[string]string{
					"config":   path,
					"database": cfg.Storage.DBPath,
					"data_dir": cfg.SystemPaths.DataDir,
					"temp_dir": cfg.SystemPaths.TempDir,
				})
			}
			fmt.Fprintf(out, "Config:   %s\n", path)
			fmt.Fprintf(out, "Database: %s\n", cfg.Storage.DBPath)
			fmt.Fprintf(out, "Data dir: %s\n", cfg.SystemPaths.DataDir)
			fmt.Fprintf(out, "Temp dir: %s\n", cfg.SystemPaths.TempDir)
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			if _, err := config.Load(path); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		},
	}
}

func newConfigCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove temp files written by suggest --save-temp",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.SystemPaths.TempDir
			if err := utils.RemoveAllTempFiles(dir, tempFilePrefix, tempFileExt); err != nil {
				return err
			}
			GetZapLogger().Info("Temp files removed", zap.String("dir", dir))
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Temp files removed from: %s\n", dir)
			return nil
		},
	}
}
