// Package cli implements the birch command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/birch/pkg/buildinfo"
	"github.com/matzehuels/birch/pkg/cache"
	birchio "github.com/matzehuels/birch/pkg/io"
	"github.com/matzehuels/birch/pkg/observability"
	"github.com/matzehuels/birch/pkg/tree"
)

// appName is the application name used for directories and display.
const appName = "birch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Birch inspects and renders n-ary tree documents",
		Long:         `Birch loads tree documents (JSON or TOML) with per-node features and cross-links, and lets you inspect, edit, browse and render them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/birch/config.toml)")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.findCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies its log level.
func (c *CLI) loadConfig() error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			c.Logger.Debug("no config directory", "err", err)
			return nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	cfg, err := readConfig(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		c.SetLogLevel(lvl)
	}
	c.Logger.Debug("config loaded", "path", path)
	return nil
}

// loadTree imports a tree document and logs how long it took.
func loadTree(ctx context.Context, path string) (*tree.Tree, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	t, err := birchio.Import(path)
	if err != nil {
		observability.Render().OnLoad(ctx, path, 0, time.Since(prog.start), err)
		return nil, err
	}
	observability.Render().OnLoad(ctx, path, t.Size(), time.Since(prog.start), nil)
	prog.done("Loaded " + filepath.Base(path))
	return t, nil
}

// lookup resolves id against the root itself first, then its descendants.
func lookup(root *tree.Tree, id string) *tree.Tree {
	if root.ID() == id {
		return root
	}
	return root.Find(id)
}

// newCache opens the configured render cache. Backends that fail to open
// fall back to no caching.
func newCache(ctx context.Context, cfg CacheConfig, noCache bool) cache.Cache {
	logger := loggerFromContext(ctx)
	if noCache {
		return cache.NullCache{}
	}
	switch cfg.Backend {
	case backendNone:
		return cache.NullCache{}
	case backendRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis cache unavailable, caching disabled", "err", err)
			return cache.NullCache{}
		}
		return rc
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NullCache{}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warn("file cache unavailable, caching disabled", "err", err)
		return cache.NullCache{}
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/birch/).
func cacheDir() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

// configDir returns the config directory using XDG standard (~/.config/birch/).
func configDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, appName), nil
}
