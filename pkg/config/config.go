// Package config loads markup settings from a TOML file and the environment.
//
// Settings are resolved in order, later sources winning:
//
//  1. Built-in defaults ([Default])
//  2. The config file, $XDG_CONFIG_HOME/markup/config.toml by default
//  3. MARKUP_* environment variables
//
// Command-line flags are applied on top by the CLI.
//
// Example file:
//
//	format  = "ansi"
//	players = ["mick", "steve"]
//
//	[cache]
//	backend = "redis"
//	ttl     = "6h"
//
//	[redis]
//	addr   = "localhost:6379"
//	prefix = "markup:"
//
//	[server]
//	addr = ":8080"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/brdgme/markup/pkg/errors"
	"github.com/brdgme/markup/pkg/render"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config holds every setting.
type Config struct {
	Format  string   `toml:"format"`
	Players []string `toml:"players"`

	Cache  Cache  `toml:"cache"`
	Redis  Redis  `toml:"redis"`
	Server Server `toml:"server"`
}

// Cache configures the render cache.
type Cache struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`
}

// Redis configures the redis cache backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// Server configures the HTTP render service.
type Server struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Duration is a time.Duration written as a string like "90s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format: string(render.FormatANSI),
		Cache: Cache{
			Backend: CacheFile,
			TTL:     Duration{24 * time.Hour},
		},
		Redis: Redis{
			Addr:   "localhost:6379",
			Prefix: "markup:",
		},
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{30 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "markup", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "markup", "config.toml"), nil
}

// Load reads the config file at path over the defaults and then applies
// environment overrides. An empty path means DefaultPath, which may be
// absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, cfg.Validate()
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	c.Format = envOr("MARKUP_FORMAT", c.Format)
	if v := os.Getenv("MARKUP_PLAYERS"); v != "" {
		c.Players = SplitPlayers(v)
	}
	c.Cache.Backend = envOr("MARKUP_CACHE", c.Cache.Backend)
	c.Cache.Dir = envOr("MARKUP_CACHE_DIR", c.Cache.Dir)
	c.Cache.TTL.Duration = envDuration("MARKUP_CACHE_TTL", c.Cache.TTL.Duration)
	c.Redis.Addr = envOr("MARKUP_REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = envOr("MARKUP_REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = envInt("MARKUP_REDIS_DB", c.Redis.DB)
	c.Server.Addr = envOr("MARKUP_ADDR", c.Server.Addr)
}

// Validate checks the format, roster and cache backend.
func (c Config) Validate() error {
	if _, err := render.ValidateFormat(c.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "format")
	}
	if err := errors.ValidatePlayers(c.Players); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "players")
	}
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (want %s, %s or %s)", c.Cache.Backend, CacheFile, CacheRedis, CacheNone)
	}
	if c.Cache.Backend == CacheRedis && c.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis cache needs redis.addr")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// SplitPlayers parses a comma-separated roster, trimming space around each
// name.
func SplitPlayers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Encode writes c as TOML.
func (c Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
