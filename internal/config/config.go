// Package config loads abacus settings from an optional YAML file and
// ABACUS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/pms-safya/abacus/internal/competition"
	"github.com/pms-safya/abacus/internal/llm"
)

// FileName is the config file searched for when no explicit path is given.
const FileName = "abacus"

// EnvPrefix prefixes every environment override, e.g. ABACUS_SERVER_ADDR.
const EnvPrefix = "ABACUS"

type Config struct {
	Server ServerConfig         `mapstructure:"server"`
	Log    LogConfig            `mapstructure:"log"`
	Quiz   competition.Settings `mapstructure:"quiz"`
	LLM    llm.Config           `mapstructure:"llm"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type ServerConfig struct {
	Addr            string          `mapstructure:"addr"`
	ReadTimeout     time.Duration   `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration   `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
	CORS            CORSConfig      `mapstructure:"cors"`
}

// RateLimitConfig allows MaxRequests per Window for each client IP.
// MaxRequests of zero disables limiting.
type RateLimitConfig struct {
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
	File   string `mapstructure:"file"`

	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       RateLimitConfig{MaxRequests: 60, Window: time.Minute},
			CORS:            CORSConfig{AllowedOrigins: []string{"*"}},
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Quiz: competition.DefaultSettings(),
		LLM:  llm.DefaultConfig(),
	}
}

// Load reads path, or abacus.yaml from the working directory or the user
// config directory when path is empty, then applies environment
// overrides. A missing file is only an error when path was given.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLLMEnv(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "abacus"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	mergeDiscoveredLLM(&cfg.LLM)
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.rate_limit.max_requests", d.Server.RateLimit.MaxRequests)
	v.SetDefault("server.rate_limit.window", d.Server.RateLimit.Window)
	v.SetDefault("server.cors.allowed_origins", d.Server.CORS.AllowedOrigins)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)

	v.SetDefault("quiz.category", string(d.Quiz.Category))
	v.SetDefault("quiz.rule", string(d.Quiz.Rule))
	v.SetDefault("quiz.mult_level", string(d.Quiz.MultLevel))
	v.SetDefault("quiz.question_count", d.Quiz.QuestionCount)
	v.SetDefault("quiz.time_per_question", d.Quiz.TimePerQuestion)
	v.SetDefault("quiz.digit_type", string(d.Quiz.DigitType))
	v.SetDefault("quiz.row_count", d.Quiz.RowCount)
	v.SetDefault("quiz.enable_audio", d.Quiz.EnableAudio)

	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.anthropic.model", d.LLM.Anthropic.Model)
	v.SetDefault("llm.openai.model", d.LLM.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", d.LLM.OpenAI.BaseURL)
	v.SetDefault("llm.gemini.model", d.LLM.Gemini.Model)
	v.SetDefault("llm.openrouter.model", d.LLM.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", d.LLM.OpenRouter.BaseURL)
	v.SetDefault("llm.retry.max_attempts", d.LLM.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.LLM.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.LLM.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.LLM.Retry.Multiplier)
}

// bindLLMEnv accepts both the nested names (ABACUS_LLM_ANTHROPIC_API_KEY)
// and the short names read by llm.ConfigFromEnv (ABACUS_ANTHROPIC_API_KEY).
func bindLLMEnv(v *viper.Viper) {
	for _, vendor := range []string{"anthropic", "openai", "gemini", "openrouter"} {
		for _, field := range []string{"api_key", "model"} {
			key := "llm." + vendor + "." + field
			short := EnvPrefix + "_" + strings.ToUpper(vendor+"_"+field)
			long := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
			_ = v.BindEnv(key, long, short)
		}
	}
}

// mergeDiscoveredLLM falls back to the vendors' standard API key
// variables when no provider was configured.
func mergeDiscoveredLLM(cfg *llm.Config) {
	if cfg.Enabled() {
		return
	}
	found, ok := llm.DiscoverConfig()
	if !ok {
		return
	}
	cfg.Provider = found.Provider
	switch found.Provider {
	case llm.ProviderAnthropic:
		cfg.Anthropic.APIKey = found.Anthropic.APIKey
	case llm.ProviderOpenAI:
		cfg.OpenAI.APIKey = found.OpenAI.APIKey
	case llm.ProviderGemini:
		cfg.Gemini.APIKey = found.Gemini.APIKey
	case llm.ProviderOpenRouter:
		cfg.OpenRouter.APIKey = found.OpenRouter.APIKey
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Quiz.Validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}

func (s ServerConfig) validate() error {
	if s.Addr == "" {
		return errors.New("addr is required")
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return errors.New("read and write timeouts must be positive")
	}
	if s.RateLimit.MaxRequests < 0 {
		return fmt.Errorf("rate_limit.max_requests must not be negative, got %d", s.RateLimit.MaxRequests)
	}
	if s.RateLimit.MaxRequests > 0 && s.RateLimit.Window <= 0 {
		return errors.New("rate_limit.window must be positive when limiting is on")
	}
	return nil
}

func (l LogConfig) validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return err
	}
	if l.Format != "console" && l.Format != "json" {
		return fmt.Errorf("format must be console or json, got %q", l.Format)
	}
	return nil
}
