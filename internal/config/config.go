package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SourceFixtures = "fixtures"
	SourceSQLite   = "sqlite"
)

const defaultJWTSecret = "change-me-in-production"

type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server"`
	Data      DataConfig      `yaml:"data" toml:"data"`
	Auth      AuthConfig      `yaml:"auth" toml:"auth"`
	Directory DirectoryConfig `yaml:"directory" toml:"directory"`
	Dashboard DashboardConfig `yaml:"dashboard" toml:"dashboard"`
	Log       LogConfig       `yaml:"log" toml:"log"`
}

type ServerConfig struct {
	Host               string   `yaml:"host" toml:"host"`
	Port               int      `yaml:"port" toml:"port"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
}

type DataConfig struct {
	Source string `yaml:"source" toml:"source"` // "fixtures" or "sqlite"
	DSN    string `yaml:"dsn" toml:"dsn"`       // sqlite snapshot path
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret" toml:"jwt_secret"`
	TokenDuration string `yaml:"token_duration" toml:"token_duration"` // e.g. "24h"
	DemoUserID    string `yaml:"demo_user_id" toml:"demo_user_id"`
	CookieSecure  bool   `yaml:"cookie_secure" toml:"cookie_secure"`
}

type DirectoryConfig struct {
	PageSize int `yaml:"page_size" toml:"page_size"`
}

type DashboardConfig struct {
	RecentLimit int `yaml:"recent_limit" toml:"recent_limit"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// TokenTTL parses Auth.TokenDuration.
func (c *Config) TokenTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.Auth.TokenDuration)
	if err != nil {
		return 0, fmt.Errorf("parse auth.token_duration: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("auth.token_duration must be positive (got %s)", d)
	}
	return d, nil
}

// SlogLevel maps Log.Level to a slog level. Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) ValidateServe() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("MAESTRO_JWT_SECRET must be set to a non-default value (example: MAESTRO_JWT_SECRET=dev-jwt-secret-change-this)")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("MAESTRO_JWT_SECRET must be at least 16 characters (current length: %d)", len(c.Auth.JWTSecret))
	}
	if _, err := c.TokenTTL(); err != nil {
		return err
	}
	if c.Auth.DemoUserID == "" {
		return fmt.Errorf("auth.demo_user_id must be configured")
	}
	switch c.Data.Source {
	case SourceFixtures:
	case SourceSQLite:
		if c.Data.DSN == "" {
			return fmt.Errorf("data.dsn must be configured when data.source is %q", SourceSQLite)
		}
	default:
		return fmt.Errorf("data.source must be %q or %q (got %q)", SourceFixtures, SourceSQLite, c.Data.Source)
	}
	if c.Directory.PageSize < 1 {
		return fmt.Errorf("directory.page_size must be at least 1 (got %d)", c.Directory.PageSize)
	}
	if c.Dashboard.RecentLimit < 1 {
		return fmt.Errorf("dashboard.recent_limit must be at least 1 (got %d)", c.Dashboard.RecentLimit)
	}
	return nil
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Data: DataConfig{
			Source: SourceFixtures,
			DSN:    "maestro.db",
		},
		Auth: AuthConfig{
			JWTSecret:     defaultJWTSecret,
			TokenDuration: "24h",
			DemoUserID:    "u1",
		},
		Directory: DirectoryConfig{PageSize: 5},
		Dashboard: DashboardConfig{RecentLimit: 5},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads an optional YAML or TOML file (chosen by extension) over the
// defaults, then applies MAESTRO_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			err = toml.Unmarshal(data, cfg)
		} else {
			err = yaml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs into the process environment without
// overriding variables that are already set. An empty path is a no-op.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MAESTRO_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("MAESTRO_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("MAESTRO_CORS_ALLOW_ORIGINS"); v != "" {
		cfg.Server.CORSAllowedOrigins = parseCSV(v)
	}
	if v := os.Getenv("MAESTRO_DATA_SOURCE"); v != "" {
		cfg.Data.Source = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("MAESTRO_DATA_DSN"); v != "" {
		cfg.Data.DSN = v
	}
	if v := os.Getenv("MAESTRO_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("MAESTRO_TOKEN_DURATION"); v != "" {
		cfg.Auth.TokenDuration = v
	}
	if v := os.Getenv("MAESTRO_DEMO_USER_ID"); v != "" {
		cfg.Auth.DemoUserID = strings.TrimSpace(v)
	}
	if v := os.Getenv("MAESTRO_COOKIE_SECURE"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Auth.CookieSecure = enabled
		}
	}
	if v := os.Getenv("MAESTRO_DIRECTORY_PAGE_SIZE"); v != "" {
		if value, err := strconv.Atoi(v); err == nil && value > 0 {
			cfg.Directory.PageSize = value
		}
	}
	if v := os.Getenv("MAESTRO_DASHBOARD_RECENT_LIMIT"); v != "" {
		if value, err := strconv.Atoi(v); err == nil && value > 0 {
			cfg.Dashboard.RecentLimit = value
		}
	}
	if v := os.Getenv("MAESTRO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func parseCSV(v string) []string {
	raw := strings.TrimSpace(v)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
