// File: internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/berrythewa/copycopy/internal/clipboard"
	"github.com/berrythewa/copycopy/internal/entity"
	"github.com/berrythewa/copycopy/internal/nlp"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Indirections so tests can relocate the directories
var (
	getConfigDir = defaultConfigDir
	getDataDir   = defaultDataDir
)

// ConfigPaths holds all relevant paths for the application
type ConfigPaths struct {
	BaseDir      string // Base directory for config files
	ActiveConfig string // Path to the config file
	DataDir      string // Directory for application data
	DBFile       string // Path to the action database
	LogDir       string // Directory for log files
	TempDir      string // Directory for files written by temp-file actions
}

// Config holds all application configuration
type Config struct {
	Log        LogConfig        `json:"log" yaml:"log"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Entity     EntityConfig     `json:"entity" yaml:"entity"`
	Storage    StorageConfig    `json:"storage" yaml:"storage"`
	Monitor    MonitorConfig    `json:"monitor" yaml:"monitor"`

	SystemPaths ConfigPaths `json:"-" yaml:"-"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "console" or "json"
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
}

// ClassifierConfig tunes summaries and payload pre-processing
type ClassifierConfig struct {
	SummaryLength   int      `json:"summary_length" yaml:"summary_length"`
	MaxFormats      int      `json:"max_formats" yaml:"max_formats"`
	MaxPayloadBytes int64    `json:"max_payload_bytes" yaml:"max_payload_bytes"`
	ExcludeFormats  []string `json:"exclude_formats" yaml:"exclude_formats"`
	TrimText        bool     `json:"trim_text" yaml:"trim_text"`
}

// EntityConfig controls the entity detector and its capabilities
type EntityConfig struct {
	Enabled      bool              `json:"enabled" yaml:"enabled"`
	Region       string            `json:"region" yaml:"region"`
	DataDetector bool              `json:"data_detector" yaml:"data_detector"`
	Language     bool              `json:"language" yaml:"language"`
	Names        bool              `json:"names" yaml:"names"`
	Thresholds   entity.Thresholds `json:"thresholds" yaml:"thresholds"`
	Limits       entity.Limits     `json:"limits" yaml:"limits"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// MonitorConfig holds the capture loop and double-copy gesture settings
type MonitorConfig struct {
	PollInterval        time.Duration `json:"poll_interval" yaml:"poll_interval"`
	DoubleCopyThreshold time.Duration `json:"double_copy_threshold" yaml:"double_copy_threshold"`
	OpenOnDoubleCopy    bool          `json:"open_on_double_copy" yaml:"open_on_double_copy"`
}

func defaultConfigDir() (string, error) {
	if dir := os.Getenv("COPYCOPY_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(configDir, "com.berrythewa.copycopy"), nil
	}
	return filepath.Join(configDir, "copycopy"), nil
}

func defaultDataDir() (string, error) {
	if dir := os.Getenv("COPYCOPY_DATA_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "CopyCopy"), nil
	case "windows":
		if appData, err := os.UserConfigDir(); err == nil {
			return filepath.Join(appData, "CopyCopy", "Data"), nil
		}
		return filepath.Join(homeDir, "AppData", "Local", "CopyCopy"), nil
	default:
		if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return filepath.Join(xdgDataHome, "copycopy"), nil
		}
		return filepath.Join(homeDir, ".local", "share", "copycopy"), nil
	}
}

// GetConfigPaths returns the platform-specific paths. Nothing is created.
func GetConfigPaths() (*ConfigPaths, error) {
	baseDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	dataDir, err := getDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	tempDir := os.Getenv("COPYCOPY_TEMP_DIR")
	if tempDir == "" {
		tempDir = filepath.Join(os.TempDir(), "CopyCopy")
	}

	return &ConfigPaths{
		BaseDir:      baseDir,
		ActiveConfig: filepath.Join(baseDir, "config.yaml"),
		DataDir:      dataDir,
		DBFile:       filepath.Join(dataDir, "actions.db"),
		LogDir:       filepath.Join(dataDir, "logs"),
		TempDir:      tempDir,
	}, nil
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	paths, err := GetConfigPaths()
	if err != nil {
		paths = &ConfigPaths{
			BaseDir:      ".",
			ActiveConfig: "config.yaml",
			DataDir:      ".",
			DBFile:       "actions.db",
			LogDir:       "logs",
			TempDir:      os.TempDir(),
		}
	}

	opts := nlp.DefaultOptions()
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Classifier: ClassifierConfig{
			SummaryLength:   clipboard.DefaultSummaryLength,
			MaxFormats:      clipboard.DefaultMaxFormats,
			MaxPayloadBytes: clipboard.DefaultMaxPayloadBytes,
			ExcludeFormats:  append([]string(nil), clipboard.ConcealedFormats...),
		},
		Entity: EntityConfig{
			Enabled:      true,
			Region:       opts.Region,
			DataDetector: opts.DataDetector,
			Language:     opts.Language,
			Names:        opts.Names,
			Thresholds:   entity.DefaultThresholds(),
			Limits:       entity.DefaultLimits(),
		},
		Storage: StorageConfig{
			DBPath: paths.DBFile,
		},
		Monitor: MonitorConfig{
			PollInterval:        clipboard.DefaultPollInterval,
			DoubleCopyThreshold: clipboard.DefaultDoubleCopyThreshold,
			OpenOnDoubleCopy:    true,
		},
		SystemPaths: *paths,
	}
}

// Load reads the configuration at configPath on top of the defaults. A
// missing file yields the defaults; it is not created.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		var err error
		configPath, err = GetActiveConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	overrideFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the specified file
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format: must be console or json, got %q", c.Log.Format))
	}

	if c.Classifier.SummaryLength < 0 {
		errs = append(errs, errors.New("classifier.summary_length: must not be negative"))
	}
	if c.Classifier.MaxFormats < 0 {
		errs = append(errs, errors.New("classifier.max_formats: must not be negative"))
	}
	if c.Classifier.MaxPayloadBytes < 0 {
		errs = append(errs, errors.New("classifier.max_payload_bytes: must not be negative"))
	}

	ratio := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("entity.thresholds.%s: must be between 0 and 1, got %g", name, v))
		}
	}
	ratio("coverage", c.Entity.Thresholds.Coverage)
	ratio("name_density", c.Entity.Thresholds.NameDensity)
	ratio("language_confidence", c.Entity.Thresholds.LanguageConfidence)
	if c.Entity.Enabled && c.Entity.DataDetector && c.Entity.Region == "" {
		errs = append(errs, errors.New("entity.region: required when the data detector is enabled"))
	}

	if c.Storage.DBPath == "" {
		errs = append(errs, errors.New("storage.db_path: must not be empty"))
	}
	if c.Monitor.PollInterval < 0 || c.Monitor.DoubleCopyThreshold < 0 {
		errs = append(errs, errors.New("monitor: durations must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NLPOptions returns the capability selection for the entity detector
func (c *Config) NLPOptions() nlp.Options {
	return nlp.Options{
		Region:       c.Entity.Region,
		DataDetector: c.Entity.DataDetector,
		Language:     c.Entity.Language,
		Names:        c.Entity.Names,
	}
}

// GetActiveConfigPath returns the path of the config file
func GetActiveConfigPath() (string, error) {
	paths, err := GetConfigPaths()
	if err != nil {
		return "", err
	}
	return paths.ActiveConfig, nil
}

// overrideFromEnv overrides configuration values from environment variables
func overrideFromEnv(config *Config) {
	if val := os.Getenv("COPYCOPY_LOG_LEVEL"); val != "" {
		config.Log.Level = val
	}
	if val := os.Getenv("COPYCOPY_LOG_FORMAT"); val != "" {
		config.Log.Format = val
	}
	if val := os.Getenv("COPYCOPY_DB_PATH"); val != "" {
		config.Storage.DBPath = val
	}
	if val := os.Getenv("COPYCOPY_REGION"); val != "" {
		config.Entity.Region = strings.ToUpper(val)
	}
	if val := os.Getenv("COPYCOPY_ENTITY_ENABLED"); val != "" {
		config.Entity.Enabled = val == "true"
	}
	if val := os.Getenv("COPYCOPY_SUMMARY_LENGTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Classifier.SummaryLength = n
		}
	}
	if val := os.Getenv("COPYCOPY_POLL_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.Monitor.PollInterval = d
		}
	}

	thresholds := map[string]*float64{
		"COPYCOPY_COVERAGE_THRESHOLD":     &config.Entity.Thresholds.Coverage,
		"COPYCOPY_NAME_DENSITY_THRESHOLD": &config.Entity.Thresholds.NameDensity,
		"COPYCOPY_LANGUAGE_CONFIDENCE":    &config.Entity.Thresholds.LanguageConfidence,
	}
	for key, field := range thresholds {
		if val := os.Getenv(key); val != "" {
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				*field = f
			}
		}
	}
}
