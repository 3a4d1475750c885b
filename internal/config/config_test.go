package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected provider ollama, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "llama3.2" {
		t.Errorf("expected model llama3.2, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "http://localhost:11434" {
		t.Errorf("expected base_url http://localhost:11434, got %s", cfg.LLM.BaseURL)
	}
	if cfg.Geocoding.BaseURL != "https://nominatim.openstreetmap.org" {
		t.Errorf("expected nominatim base_url, got %s", cfg.Geocoding.BaseURL)
	}
	if cfg.Geocoding.UserAgent != "brisa/1.0" {
		t.Errorf("expected user_agent brisa/1.0, got %s", cfg.Geocoding.UserAgent)
	}
	if cfg.Weather.BaseURL != "https://api.open-meteo.com/v1/forecast" {
		t.Errorf("expected open-meteo base_url, got %s", cfg.Weather.BaseURL)
	}
	if cfg.UI.Prompt != PromptAuto {
		t.Errorf("expected prompt auto, got %s", cfg.UI.Prompt)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestTimeouts(t *testing.T) {
	cfg := Default()

	if got := cfg.LLM.Timeout(); got != 120*time.Second {
		t.Errorf("LLM.Timeout() = %v, want 120s", got)
	}
	if got := cfg.Geocoding.Timeout(); got != 10*time.Second {
		t.Errorf("Geocoding.Timeout() = %v, want 10s", got)
	}
	if got := cfg.Weather.Timeout(); got != 10*time.Second {
		t.Errorf("Weather.Timeout() = %v, want 10s", got)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected default provider, got %s", cfg.LLM.Provider)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[llm]
provider = "lmstudio"
model = "qwen2.5"
base_url = "http://localhost:1234/v1"
timeout_seconds = 60

[geocoding]
user_agent = "brisa-test/0.1"

[weather]
timeout_seconds = 5

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLM.Provider != "lmstudio" {
		t.Errorf("expected provider lmstudio, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "qwen2.5" {
		t.Errorf("expected model qwen2.5, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.TimeoutSeconds != 60 {
		t.Errorf("expected llm timeout 60, got %d", cfg.LLM.TimeoutSeconds)
	}
	if cfg.Geocoding.UserAgent != "brisa-test/0.1" {
		t.Errorf("expected user_agent brisa-test/0.1, got %s", cfg.Geocoding.UserAgent)
	}
	// Untouched sections keep their defaults
	if cfg.Geocoding.BaseURL != "https://nominatim.openstreetmap.org" {
		t.Errorf("expected default geocoding base_url, got %s", cfg.Geocoding.BaseURL)
	}
	if cfg.Weather.TimeoutSeconds != 5 {
		t.Errorf("expected weather timeout 5, got %d", cfg.Weather.TimeoutSeconds)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[llm]
model = "llama3.1"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("BRISA_LLM_MODEL", "mistral")
	t.Setenv("BRISA_GEOCODING_BASE_URL", "http://localhost:8080")
	t.Setenv("BRISA_UI_PROMPT", "plain")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.LLM.Model != "mistral" {
		t.Errorf("expected model mistral from env, got %s", cfg.LLM.Model)
	}
	// Env should override default
	if cfg.Geocoding.BaseURL != "http://localhost:8080" {
		t.Errorf("expected geocoding base_url from env, got %s", cfg.Geocoding.BaseURL)
	}
	if cfg.UI.Prompt != PromptPlain {
		t.Errorf("expected prompt plain from env, got %s", cfg.UI.Prompt)
	}
	// File value should be kept when no env override
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path from file, got %s", cfg.Storage.DBPath)
	}
}

func TestValidate_EmptyModel(t *testing.T) {
	cfg := Default()
	cfg.LLM.Model = "  "

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty model")
	}
}

func TestValidate_NonPositiveTimeout(t *testing.T) {
	cfg := Default()
	cfg.Weather.TimeoutSeconds = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero weather timeout")
	}
}

func TestValidate_EmptyUserAgent(t *testing.T) {
	cfg := Default()
	cfg.Geocoding.UserAgent = ""

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty user_agent")
	}
}

func TestValidate_UnknownPromptMode(t *testing.T) {
	cfg := Default()
	cfg.UI.Prompt = "wizard"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown prompt mode")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.LLM.Provider = "lmstudio"
	cfg.LLM.Model = "qwen2.5"
	cfg.UI.Prompt = PromptPlain

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.LLM.Provider != "lmstudio" {
		t.Errorf("expected provider lmstudio, got %s", loaded.LLM.Provider)
	}
	if loaded.LLM.Model != "qwen2.5" {
		t.Errorf("expected model qwen2.5, got %s", loaded.LLM.Model)
	}
	if loaded.UI.Prompt != PromptPlain {
		t.Errorf("expected prompt plain, got %s", loaded.UI.Prompt)
	}
}
