package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the calculator configuration
type Config struct {
	// Output settings
	Output struct {
		Base      int  `toml:"base"`      // 2, 8, 10 or 16
		Uppercase bool `toml:"uppercase"` // upper-case hex digits
	} `toml:"output"`

	// REPL settings
	Repl struct {
		HistorySize     int    `toml:"history_size"`
		HistoryFile     string `toml:"history_file"` // empty disables persistence
		PersistHistory  bool   `toml:"persist_history"`
		ShowResultIndex bool   `toml:"show_result_index"` // prefix results with $n
	} `toml:"repl"`

	// Limits settings
	Limits struct {
		MaxPowExponent uint64 `toml:"max_pow_exponent"` // 0 = unbounded
	} `toml:"limits"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Output defaults
	cfg.Output.Base = 10
	cfg.Output.Uppercase = false

	// REPL defaults
	cfg.Repl.HistorySize = 1000
	cfg.Repl.HistoryFile = ""
	cfg.Repl.PersistHistory = false
	cfg.Repl.ShowResultIndex = true

	// Limits defaults
	cfg.Limits.MaxPowExponent = 1 << 24

	return cfg
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	switch c.Output.Base {
	case 2, 8, 10, 16:
	default:
		return fmt.Errorf("unsupported output base %d", c.Output.Base)
	}
	if c.Repl.HistorySize < 0 {
		return fmt.Errorf("negative history size %d", c.Repl.HistorySize)
	}
	return nil
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\bigcalc\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "bigcalc")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/bigcalc/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "bigcalc")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bad config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
