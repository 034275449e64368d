package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Concierge  ConciergeConfig  `yaml:"concierge" mapstructure:"concierge"`
	OpenRouter OpenRouterConfig `yaml:"openrouter" mapstructure:"openrouter"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Brave      BraveConfig      `yaml:"brave" mapstructure:"brave"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// ConciergeConfig configures the request pipeline.
type ConciergeConfig struct {
	// Provider selects the generation backend: "openrouter" or "anthropic".
	Provider string `yaml:"provider" mapstructure:"provider"`
	// SearchTimeoutMs bounds one web search call.
	SearchTimeoutMs int `yaml:"search_timeout_ms" mapstructure:"search_timeout_ms"`
}

// OpenRouterConfig holds OpenRouter API settings.
type OpenRouterConfig struct {
	Key      string  `yaml:"key" mapstructure:"key"`
	BaseURL  string  `yaml:"base_url" mapstructure:"base_url"`
	Model    string  `yaml:"model" mapstructure:"model"`
	AppURL   string  `yaml:"app_url" mapstructure:"app_url"`
	MaxRPS   float64 `yaml:"max_rps" mapstructure:"max_rps"`
	MaxBurst int     `yaml:"max_burst" mapstructure:"max_burst"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// BraveConfig holds Brave Search API settings. An empty key disables
// web search rather than failing requests.
type BraveConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, config file and environment.
func Load() (*Config, error) {
	// Optional .env in the working directory, mirroring the frontend's
	// env-file driven setup. Real environment variables win.
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CONCIERGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("concierge.provider", "openrouter")
	v.SetDefault("concierge.search_timeout_ms", 8000)
	v.SetDefault("openrouter.key", "")
	v.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter.model", "meta-llama/llama-4-scout-17b-16e-instruct")
	v.SetDefault("openrouter.app_url", "https://goodfin.vercel.app")
	v.SetDefault("openrouter.max_rps", 0)
	v.SetDefault("openrouter.max_burst", 1)
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("brave.key", "")
	v.SetDefault("brave.base_url", "https://api.search.brave.com")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the selected generation provider has a credential.
// The search credential is deliberately not required.
func (c *Config) Validate() error {
	switch c.Concierge.Provider {
	case "openrouter":
		if c.OpenRouter.Key == "" {
			return eris.New("config: openrouter.key is required for provider openrouter")
		}
	case "anthropic":
		if c.Anthropic.Key == "" {
			return eris.New("config: anthropic.key is required for provider anthropic")
		}
	default:
		return eris.Errorf("config: unknown concierge provider %q", c.Concierge.Provider)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
