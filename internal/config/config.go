package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"sladrehank/internal/ssb"
)

// Config holds the service configuration. Everything has a working default;
// the Gemini key is the only value that usually comes from the environment.
type Config struct {
	Port           int    `mapstructure:"port" yaml:"port"`
	SSBURL         string `mapstructure:"ssb_url" yaml:"ssb_url"`
	GeminiAPIKey   string `mapstructure:"gemini_api_key" yaml:"gemini_api_key,omitempty"`
	GeminiModel    string `mapstructure:"gemini_model" yaml:"gemini_model"`
	CacheTTLMin    int    `mapstructure:"cache_ttl_min" yaml:"cache_ttl_min"`
	HTTPTimeoutSec int    `mapstructure:"http_timeout_sec" yaml:"http_timeout_sec"`
}

// Load reads configuration from defaults, an optional yaml file and the
// environment. Precedence: env > config file > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SLADREHANK")
	v.AutomaticEnv()
	// Also honor the conventional variable name so a standard .env with
	// GEMINI_API_KEY works unchanged.
	_ = v.BindEnv("gemini_api_key", "SLADREHANK_GEMINI_API_KEY", "GEMINI_API_KEY")

	v.SetDefault("port", 8080)
	v.SetDefault("ssb_url", ssb.DefaultBaseURL)
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("cache_ttl_min", 60)
	v.SetDefault("http_timeout_sec", 30)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to a yaml file.
func Save(c *Config, path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// CacheTTL returns the table cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMin) * time.Minute
}

// HTTPTimeout returns the timeout for outbound HTTP calls.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}
