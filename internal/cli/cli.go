// Package cli implements the markup command-line interface.
//
// # Commands
//
//   - render: Render a template for a roster as ANSI, HTML, plain text or JSON
//   - parse: Dump a template's document tree as JSON, DOT or SVG
//   - preview: Scroll through the ANSI rendering in the terminal
//   - serve: Run the HTTP render service
//   - cache: Inspect and clear the render cache
//   - config: Show the effective configuration
//
// # Configuration
//
// Settings come from pkg/config (file plus MARKUP_* environment variables);
// flags given on the command line win over both.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context with withLogger and loggerFromContext.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brdgme/markup/pkg/cache"
	"github.com/brdgme/markup/pkg/config"
	"github.com/brdgme/markup/pkg/errors"
	"github.com/brdgme/markup/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "markup"

// redisDialTimeout bounds the initial connection check to redis.
const redisDialTimeout = 5 * time.Second

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, nil, c.Logger)
	r.TTL = c.Config.Cache.TTL.Duration
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch c.Config.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil

	case config.CacheRedis:
		rc := c.Config.Redis
		s := newSpinnerWithContext(ctx, "Connecting to redis at "+rc.Addr)
		s.Start()
		dialCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
		defer cancel()
		ch, err := cache.NewRedisCache(dialCtx, rc.Addr, rc.Password, rc.DB,
			cache.WithRedisPrefix(rc.Prefix),
			cache.WithRedisTTL(c.Config.Cache.TTL.Duration))
		s.Stop()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "connect to redis at %s", rc.Addr)
		}
		return ch, nil

	default:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("cache disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/markup/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// readTemplate reads the template named by args: a file path, or stdin
// when args is empty or "-".
func readTemplate(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), errors.MaxTemplateBytes+1))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if os.IsNotExist(err) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "template %s", args[0])
	}
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}

// players resolves the roster: the --players flag when given, otherwise the
// configured one.
func (c *CLI) players(cmd *cobra.Command, flag string) []string {
	if cmd.Flags().Changed("players") {
		return config.SplitPlayers(flag)
	}
	return c.Config.Players
}
