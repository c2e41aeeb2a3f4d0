package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	GitHub GitHubConfig `toml:"github"`
	AI     AIConfig     `toml:"ai"`
	Report ReportConfig `toml:"report"`
	Repos  []RepoConfig `toml:"repos"`
}

type GitHubConfig struct {
	Token    string `toml:"token"`
	Username string `toml:"username"`
}

type AIConfig struct {
	// Provider is openai, anthropic, gemini or local
	Provider      string `toml:"provider"`
	OpenAIKey     string `toml:"openai_key"`
	AnthropicKey  string `toml:"anthropic_key"`
	GeminiKey     string `toml:"gemini_key"`
	FallbackLocal bool   `toml:"fallback_local"`
}

type ReportConfig struct {
	// Days is the look-back window
	Days int `toml:"days"`
	// Format is text or json
	Format string `toml:"format"`
	// Save writes the report to a dated file
	Save bool `toml:"save"`
}

type RepoConfig struct {
	// Name in "owner/name" form
	Name string `toml:"name"`
	// Branch to fetch; empty = default branch
	Branch string `toml:"branch,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		AI:     AIConfig{Provider: "gemini"},
		Report: ReportConfig{Days: 1, Format: "text"},
	}
}

func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "standup.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment variable overrides for credentials.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets environment variables override stored credentials
func (c *Config) applyEnv() {
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		c.GitHub.Token = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.AI.OpenAIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AI.AnthropicKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.AI.GeminiKey = v
	}
}

func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	// The file holds API keys, so keep it user-only
	return os.WriteFile(path, data, 0o600)
}

// Reset deletes the saved configuration file
func Reset() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// APIKey returns the key for the configured provider, "" for local
func (c *Config) APIKey() string {
	switch c.AI.Provider {
	case "openai":
		return c.AI.OpenAIKey
	case "anthropic":
		return c.AI.AnthropicKey
	case "gemini":
		return c.AI.GeminiKey
	default:
		return ""
	}
}

// RepoNames returns the configured repository names in order
func (c *Config) RepoNames() []string {
	names := make([]string, 0, len(c.Repos))
	for _, r := range c.Repos {
		names = append(names, r.Name)
	}
	return names
}

// Branches returns the configured per-repo branch map, skipping defaults
func (c *Config) Branches() map[string]string {
	branches := make(map[string]string)
	for _, r := range c.Repos {
		if r.Branch != "" {
			branches[r.Name] = r.Branch
		}
	}
	return branches
}
