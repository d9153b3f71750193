package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings of the wordtrie command.
type Config struct {
	LogLevel    string   `mapstructure:"log_level"`
	Development bool     `mapstructure:"development"`
	Output      string   `mapstructure:"output"`
	Prompt      string   `mapstructure:"prompt"`
	Dictionary  string   `mapstructure:"dictionary"`
	SeedWords   []string `mapstructure:"seed_words"`
	StopWords   []string `mapstructure:"stop_words"`
	MinLength   int      `mapstructure:"min_length"`
}

// DefaultSeedWords are loaded into the starting dictionary unless overridden.
var DefaultSeedWords = []string{"apple", "app", "ape", "bat", "ball", "cat", "car"}

// Load reads the optional config file at path and WORDTRIE_* environment
// variables on top of the defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("development", false)
	v.SetDefault("output", "text")
	v.SetDefault("prompt", "> ")
	v.SetDefault("dictionary", "default")
	v.SetDefault("seed_words", DefaultSeedWords)
	v.SetDefault("stop_words", []string{})
	v.SetDefault("min_length", 1)

	v.SetEnvPrefix("WORDTRIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("config: output must be text or json, got %q", c.Output)
	}
	if c.Dictionary == "" {
		return fmt.Errorf("config: dictionary name is empty")
	}
	if c.MinLength < 0 {
		return fmt.Errorf("config: min_length must not be negative, got %d", c.MinLength)
	}
	return nil
}
