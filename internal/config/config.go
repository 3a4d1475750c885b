// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Prompt modes for the interactive input line.
const (
	PromptAuto  = "auto"  // fancy on a TTY, plain otherwise
	PromptFancy = "fancy" // always use the styled input
	PromptPlain = "plain" // always read a bare line
)

// Config holds the application configuration.
type Config struct {
	LLM       LLMConfig       `toml:"llm"`
	Geocoding GeocodingConfig `toml:"geocoding"`
	Weather   WeatherConfig   `toml:"weather"`
	Storage   StorageConfig   `toml:"storage"`
	UI        UIConfig        `toml:"ui"`
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider       string `toml:"provider"`        // "ollama", "openai", "lmstudio"
	Model          string `toml:"model"`           // e.g., "llama3.2"
	BaseURL        string `toml:"base_url"`        // e.g., "http://localhost:11434"
	TimeoutSeconds int    `toml:"timeout_seconds"` // per chat call
}

// Timeout returns the chat timeout as a duration.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GeocodingConfig holds Nominatim settings.
type GeocodingConfig struct {
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"` // required by Nominatim's usage policy
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the geocoding timeout as a duration.
func (c GeocodingConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WeatherConfig holds Open-Meteo settings.
type WeatherConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the forecast timeout as a duration.
func (c WeatherConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds console settings.
type UIConfig struct {
	Prompt string `toml:"prompt"` // "auto", "fancy", "plain"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:       "ollama",
			Model:          "llama3.2",
			BaseURL:        "http://localhost:11434",
			TimeoutSeconds: 120,
		},
		Geocoding: GeocodingConfig{
			BaseURL:        "https://nominatim.openstreetmap.org",
			UserAgent:      "brisa/1.0",
			TimeoutSeconds: 10,
		},
		Weather: WeatherConfig{
			BaseURL:        "https://api.open-meteo.com/v1/forecast",
			TimeoutSeconds: 10,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Prompt: PromptAuto,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "brisa.db"
	}
	return filepath.Join(home, ".local", "share", "brisa", "brisa.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "brisa", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// LLM overrides
	if v := os.Getenv("BRISA_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("BRISA_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("BRISA_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	// Geocoding overrides
	if v := os.Getenv("BRISA_GEOCODING_BASE_URL"); v != "" {
		cfg.Geocoding.BaseURL = v
	}
	if v := os.Getenv("BRISA_GEOCODING_USER_AGENT"); v != "" {
		cfg.Geocoding.UserAgent = v
	}

	// Weather overrides
	if v := os.Getenv("BRISA_WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}

	// Storage overrides
	if v := os.Getenv("BRISA_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	// UI overrides
	if v := os.Getenv("BRISA_UI_PROMPT"); v != "" {
		cfg.UI.Prompt = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm model must be set")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return errors.New("llm timeout_seconds must be positive")
	}

	if c.Geocoding.BaseURL == "" {
		return errors.New("geocoding base_url must be set")
	}
	if strings.TrimSpace(c.Geocoding.UserAgent) == "" {
		return errors.New("geocoding user_agent must be set")
	}
	if c.Geocoding.TimeoutSeconds <= 0 {
		return errors.New("geocoding timeout_seconds must be positive")
	}

	if c.Weather.BaseURL == "" {
		return errors.New("weather base_url must be set")
	}
	if c.Weather.TimeoutSeconds <= 0 {
		return errors.New("weather timeout_seconds must be positive")
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}

	switch c.UI.Prompt {
	case PromptAuto, PromptFancy, PromptPlain:
	default:
		return fmt.Errorf("ui prompt must be %q, %q or %q, got %q", PromptAuto, PromptFancy, PromptPlain, c.UI.Prompt)
	}

	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
