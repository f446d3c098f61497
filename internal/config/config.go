package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultTokenCeiling is the approximate token budget for one summarization
// request. Matches the practical request-size limit of the Messages API.
const DefaultTokenCeiling = 150000

// Config represents the complete docmcp configuration
type Config struct {
	Version int    `json:"version" mapstructure:"version"`
	RootDir string `json:"rootDir" mapstructure:"rootDir"`
	OutDir  string `json:"outDir" mapstructure:"outDir"`

	Summarizer SummarizerConfig `json:"summarizer" mapstructure:"summarizer"`
	Scan       ScanConfig       `json:"scan" mapstructure:"scan"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`
}

// SummarizerConfig contains summarization service configuration.
// APIKey is threaded explicitly into the client constructor; it is never
// read from the environment at package init.
type SummarizerConfig struct {
	Model        string `json:"model" mapstructure:"model"`
	APIKey       string `json:"apiKey,omitempty" mapstructure:"apiKey"`
	TokenCeiling int    `json:"tokenCeiling" mapstructure:"tokenCeiling"`
	MaxTokens    int    `json:"maxTokens" mapstructure:"maxTokens"`
}

// ScanConfig contains document discovery configuration
type ScanConfig struct {
	Extensions []string `json:"extensions" mapstructure:"extensions"`
	Exclude    []string `json:"exclude" mapstructure:"exclude"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		RootDir: ".",
		OutDir:  "mcp-server",
		Summarizer: SummarizerConfig{
			Model:        "claude-3-5-haiku-latest",
			TokenCeiling: DefaultTokenCeiling,
			MaxTokens:    1024,
		},
		Scan: ScanConfig{
			Extensions: []string{".md", ".markdown", ".txt", ".rst"},
			Exclude:    []string{"node_modules", "vendor", "build", "dist"},
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .docmcp/config.json under rootDir,
// falling back to defaults when no config file exists.
func LoadConfig(rootDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("rootDir", ".")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(rootDir, ".docmcp"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveAPIKey returns the configured API key, falling back to the
// ANTHROPIC_API_KEY environment variable. An empty result means no
// credential is configured; the summarize client reports that as a typed
// MISSING_CREDENTIAL error rather than failing deep inside the transport.
func (c *Config) ResolveAPIKey() string {
	if c.Summarizer.APIKey != "" {
		return c.Summarizer.APIKey
	}
	return os.Getenv("ANTHROPIC_API_KEY")
}

// Save writes the configuration to .docmcp/config.json
func (c *Config) Save(rootDir string) error {
	dir := filepath.Join(rootDir, ".docmcp")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Summarizer.TokenCeiling <= 0 {
		return &ConfigError{Field: "summarizer.tokenCeiling", Message: "must be positive"}
	}
	if c.Summarizer.MaxTokens <= 0 {
		return &ConfigError{Field: "summarizer.maxTokens", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
