package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"deal-analyzer/internal/deal"
)

// Config is the on-disk configuration shape (YAML). Environment variables
// override file values; see ApplyEnv.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Engine   deal.Options   `yaml:"engine"`
	Session  SessionConfig  `yaml:"session"`
	Property PropertyConfig `yaml:"property"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Env             string        `yaml:"env"` // development or production
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type SessionConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

type PropertyConfig struct {
	// SeedFile is a YAML property list. Relative paths resolve against the
	// config file's directory first.
	SeedFile  string        `yaml:"seed_file"`
	RedisAddr string        `yaml:"redis_addr"` // empty disables redis; an in-process cache is used
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Env:             "development",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Engine: deal.DefaultOptions(),
		Session: SessionConfig{
			TTL:           2 * time.Hour,
			SweepInterval: 5 * time.Minute,
		},
		Property: PropertyConfig{
			CacheTTL: time.Hour,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	ApplyEnv(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromEnv loads the file named by DEAL_CONFIG, if any.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()
	return Load(getEnv("DEAL_CONFIG", ""))
}

// LoadUnchecked merges the file over the defaults without env overrides or validation.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c = Merge(c, &file)

	if seed := c.Property.SeedFile; seed != "" && !filepath.IsAbs(seed) {
		cand := filepath.Join(filepath.Dir(path), seed)
		if _, err := os.Stat(cand); err == nil {
			c.Property.SeedFile = cand
		}
	}
	return c, nil
}

// ApplyEnv overlays environment variables (and a .env file, when present).
func ApplyEnv(c *Config) {
	_ = godotenv.Load()

	c.Server.Port = getEnvAsInt("DEAL_API_PORT", c.Server.Port)
	c.Server.Env = getEnv("DEAL_ENV", c.Server.Env)
	if origins := getEnv("DEAL_ALLOWED_ORIGINS", ""); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Pretty = getEnvAsBool("LOG_PRETTY", c.Log.Pretty)
	c.Property.RedisAddr = getEnv("REDIS_ADDR", c.Property.RedisAddr)
	c.Property.SeedFile = getEnv("PROPERTY_SEED_FILE", c.Property.SeedFile)
	c.Session.TTL = getEnvAsDuration("SESSION_TTL", c.Session.TTL)
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Engine.ClosingCostMultiplier <= 0 {
		return errors.New("engine.closing_cost_multiplier must be positive")
	}
	if c.Session.TTL < 0 {
		return errors.New("session.ttl must not be negative")
	}
	if c.Session.SweepInterval < 0 || c.Property.CacheTTL < 0 {
		return errors.New("durations must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// IsProduction reports whether server.env is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}

// Merge overlays non-zero fields from override onto base and returns the result.
// Booleans can only be switched on by an override.
func Merge(base, override *Config) *Config {
	out := *base
	o := override

	if o.Server.Port != 0 {
		out.Server.Port = o.Server.Port
	}
	if o.Server.Env != "" {
		out.Server.Env = o.Server.Env
	}
	if len(o.Server.AllowedOrigins) > 0 {
		out.Server.AllowedOrigins = append([]string(nil), o.Server.AllowedOrigins...)
	}
	if o.Server.ShutdownTimeout != 0 {
		out.Server.ShutdownTimeout = o.Server.ShutdownTimeout
	}

	if o.Engine.ClosingCostMultiplier != 0 {
		out.Engine.ClosingCostMultiplier = o.Engine.ClosingCostMultiplier
	}
	if o.Engine.ReceivedTermFromSellLeg {
		out.Engine.ReceivedTermFromSellLeg = true
	}

	if o.Session.TTL != 0 {
		out.Session.TTL = o.Session.TTL
	}
	if o.Session.SweepInterval != 0 {
		out.Session.SweepInterval = o.Session.SweepInterval
	}

	if o.Property.SeedFile != "" {
		out.Property.SeedFile = o.Property.SeedFile
	}
	if o.Property.RedisAddr != "" {
		out.Property.RedisAddr = o.Property.RedisAddr
	}
	if o.Property.CacheTTL != 0 {
		out.Property.CacheTTL = o.Property.CacheTTL
	}

	if o.Log.Level != "" {
		out.Log.Level = o.Log.Level
	}
	if o.Log.Pretty {
		out.Log.Pretty = true
	}
	return &out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
