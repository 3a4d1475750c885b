package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brisa-ai/brisa/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  brisa config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.LLM.Provider = promptValue(reader, "LLM provider (ollama, openai, lmstudio)", cfg.LLM.Provider)
	cfg.LLM.Model = promptValue(reader, "LLM model", cfg.LLM.Model)
	cfg.LLM.BaseURL = promptValue(reader, "LLM base URL", cfg.LLM.BaseURL)
	cfg.Geocoding.BaseURL = promptValue(reader, "Geocoding base URL", cfg.Geocoding.BaseURL)
	cfg.Geocoding.UserAgent = promptValue(reader, "Geocoding user agent", cfg.Geocoding.UserAgent)
	cfg.Weather.BaseURL = promptValue(reader, "Weather base URL", cfg.Weather.BaseURL)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Prompt = promptPromptMode(reader, cfg.UI.Prompt)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[llm]")
	fmt.Printf("  provider        = %s\n", cfg.LLM.Provider)
	fmt.Printf("  model           = %s\n", cfg.LLM.Model)
	fmt.Printf("  base_url        = %s\n", cfg.LLM.BaseURL)
	fmt.Printf("  timeout_seconds = %d\n", cfg.LLM.TimeoutSeconds)
	fmt.Println("\n[geocoding]")
	fmt.Printf("  base_url        = %s\n", cfg.Geocoding.BaseURL)
	fmt.Printf("  user_agent      = %s\n", cfg.Geocoding.UserAgent)
	fmt.Printf("  timeout_seconds = %d\n", cfg.Geocoding.TimeoutSeconds)
	fmt.Println("\n[weather]")
	fmt.Printf("  base_url        = %s\n", cfg.Weather.BaseURL)
	fmt.Printf("  timeout_seconds = %d\n", cfg.Weather.TimeoutSeconds)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path         = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  prompt          = %s\n", cfg.UI.Prompt)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptPromptMode(reader *bufio.Reader, current string) string {
	label := fmt.Sprintf("Prompt style (%s, %s, %s)", config.PromptAuto, config.PromptFancy, config.PromptPlain)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		switch value {
		case config.PromptAuto, config.PromptFancy, config.PromptPlain:
			return value
		}
		fmt.Printf("  Invalid prompt style %q.\n", value)
	}
}
