package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/jaskraffle/internal/raffle"
)

// EnvConfig names the env var that overrides the config file path.
const EnvConfig = "JASKRAFFLE_CONFIG"

// Config holds application configuration.
type Config struct {
	Roster   RosterConfig
	Spin     SpinConfig
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
}

// RosterConfig holds roster loading settings.
type RosterConfig struct {
	Path                string
	SimilarityThreshold int `mapstructure:"similarity_threshold"`
}

// SpinConfig holds the spin clock and round budget.
type SpinConfig struct {
	Rounds       int
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// DatabaseConfig holds sqlite settings for draw history.
type DatabaseConfig struct {
	Path    string
	Enabled bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig holds debug logging settings. An empty file disables logging.
type LogConfig struct {
	File string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("roster.path", "participants.txt")
	v.SetDefault("roster.similarity_threshold", 1)
	v.SetDefault("spin.rounds", raffle.DefaultRounds)
	v.SetDefault("spin.tick_interval", 100*time.Millisecond)
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskraffle", "draws.db"))
	v.SetDefault("database.enabled", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.file", "")
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Path returns the config file location: JASKRAFFLE_CONFIG when set,
// otherwise ~/.config/jaskraffle/config.toml.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskraffle", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix JASKRAFFLE_.
func Load() (Config, error) {
	return LoadFrom(os.Getenv(EnvConfig))
}

// LoadFrom reads configuration from path, or from the default search path
// when path is empty. A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskraffle"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKRAFFLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects settings the spin clock cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Spin.Rounds < 0 {
		errs = append(errs, fmt.Errorf("spin.rounds must be >= 0, got %d", c.Spin.Rounds))
	}
	if c.Spin.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("spin.tick_interval must be positive, got %s", c.Spin.TickInterval))
	}
	if c.Roster.SimilarityThreshold < -1 {
		errs = append(errs, fmt.Errorf("roster.similarity_threshold must be >= -1, got %d", c.Roster.SimilarityThreshold))
	}
	if c.Database.Enabled && strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required when database.enabled is set"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes cfg to Path(), creating the config directory if needed.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes cfg as TOML to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("roster.path", cfg.Roster.Path)
	v.Set("roster.similarity_threshold", cfg.Roster.SimilarityThreshold)
	v.Set("spin.rounds", cfg.Spin.Rounds)
	v.Set("spin.tick_interval", cfg.Spin.TickInterval.String())
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.enabled", cfg.Database.Enabled)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
