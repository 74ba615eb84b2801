// Package config loads service configuration from YAML, an optional .env
// file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	LogLevel string `yaml:"log_level"`

	Server struct {
		Port            int           `yaml:"port"`
		CORSOrigins     []string      `yaml:"cors_origins"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Port    int    `yaml:"port"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`

	Auth struct {
		JWTSecret string        `yaml:"jwt_secret"`
		TokenTTL  time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`

	Workflow struct {
		Strict                bool          `yaml:"strict"`
		BookingDelay          time.Duration `yaml:"booking_delay"`
		ReportDelay           time.Duration `yaml:"report_delay"`
		NotificationTTL       time.Duration `yaml:"notification_ttl"`
		DailyCleaningSchedule string        `yaml:"daily_cleaning_schedule"`
	} `yaml:"workflow"`

	Chat struct {
		Provider    string        `yaml:"provider"`
		Model       string        `yaml:"model"`
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Endpoint    string        `yaml:"endpoint"`
		Deployment  string        `yaml:"deployment"`
		Temperature float64       `yaml:"temperature"`
		MaxTokens   int           `yaml:"max_tokens"`
		Timeout     time.Duration `yaml:"timeout"`
		History     struct {
			Limit         int           `yaml:"limit"`
			TTL           time.Duration `yaml:"ttl"`
			RedisAddr     string        `yaml:"redis_addr"`
			RedisPassword string        `yaml:"redis_password"`
			RedisDB       int           `yaml:"redis_db"`
		} `yaml:"history"`
	} `yaml:"chat"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{LogLevel: "info"}
	c.Server.Port = 8080
	c.Server.CORSOrigins = []string{"*"}
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Metrics.Enabled = true
	c.Metrics.Port = 9090
	c.Metrics.Path = "/metrics"
	c.Auth.JWTSecret = "grandstay-dev-secret"
	c.Auth.TokenTTL = 12 * time.Hour
	c.Workflow.Strict = true
	c.Workflow.BookingDelay = 1500 * time.Millisecond
	c.Workflow.ReportDelay = 2000 * time.Millisecond
	c.Workflow.NotificationTTL = 4 * time.Second
	c.Workflow.DailyCleaningSchedule = "0 9 * * *"
	c.Chat.Provider = "googleai"
	c.Chat.Model = "gemini-2.5-flash"
	c.Chat.Timeout = 30 * time.Second
	c.Chat.History.Limit = 50
	c.Chat.History.TTL = 24 * time.Hour
	return c
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = p
	}
	if v := os.Getenv("METRICS_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("METRICS_PORT: %w", err)
		}
		c.Metrics.Port = p
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = parseList(v)
	}
	if v := os.Getenv("GRANDSTAY_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("GRANDSTAY_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GRANDSTAY_STRICT: %w", err)
		}
		c.Workflow.Strict = b
	}
	if v := os.Getenv("CHAT_PROVIDER"); v != "" {
		c.Chat.Provider = v
	}
	if v := os.Getenv("CHAT_MODEL"); v != "" {
		c.Chat.Model = v
	}

	if c.Chat.APIKey == "" {
		c.Chat.APIKey = providerKey(c.Chat.Provider)
	}
	if c.Chat.Provider == "azure" {
		if v := os.Getenv("AZURE_OPENAI_ENDPOINT"); v != "" {
			c.Chat.Endpoint = v
		}
		if v := os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME"); v != "" {
			c.Chat.Deployment = v
		}
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Chat.History.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Chat.History.RedisPassword = v
	}
	return nil
}

// providerKey picks the conventional environment variable of each provider.
func providerKey(provider string) string {
	var names []string
	switch provider {
	case "openai":
		names = []string{"OPENAI_API_KEY"}
	case "googleai":
		names = []string{"GOOGLE_API_KEY", "API_KEY"}
	case "github":
		names = []string{"GITHUB_TOKEN"}
	case "azure":
		names = []string{"AZURE_OPENAI_API_KEY"}
	}
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return fmt.Errorf("metrics.port %d out of range", c.Metrics.Port)
	}
	if c.Metrics.Enabled && c.Metrics.Port == c.Server.Port {
		return fmt.Errorf("metrics.port must differ from server.port")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.Workflow.BookingDelay < 0 || c.Workflow.ReportDelay < 0 {
		return errors.New("workflow delays must not be negative")
	}
	switch c.Chat.Provider {
	case "openai", "googleai", "github", "azure", "none":
	default:
		return fmt.Errorf("chat.provider %q is not supported", c.Chat.Provider)
	}
	return nil
}
