package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	birchErrors "github.com/matzehuels/birch/pkg/errors"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"

	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"

	defaultCacheTTL  = 24 * time.Hour
	defaultRedisAddr = "localhost:6379"
)

// Config is the contents of config.toml.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
}

// RenderConfig sets defaults for the render command.
type RenderConfig struct {
	Detailed bool   `toml:"detailed"`
	Format   string `toml:"format"`
}

// CacheConfig selects the render cache backend.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	TTL       time.Duration `toml:"ttl"`
	RedisAddr string        `toml:"redis_addr"`
}

// LogConfig sets the default log level. --verbose overrides it.
type LogConfig struct {
	Level string `toml:"level"`
}

func defaultConfig() Config {
	return Config{
		Render: RenderConfig{Format: formatSVG},
		Cache:  CacheConfig{Backend: backendFile, TTL: defaultCacheTTL, RedisAddr: defaultRedisAddr},
		Log:    LogConfig{Level: "info"},
	}
}

// readConfig decodes the file at path over the defaults. A missing file
// yields the defaults unless the path was given explicitly.
func readConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, birchErrors.Wrap(birchErrors.ErrCodeFileNotFound, err, "config file not found: %s", path)
			}
			return cfg, nil
		}
		return cfg, birchErrors.Wrap(birchErrors.ErrCodeInvalidFormat, err, "malformed config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, birchErrors.Wrap(birchErrors.ErrCodeInvalidFormat, err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Render.Format {
	case formatSVG, formatDOT:
	default:
		return fmt.Errorf("render.format %q (must be 'svg' or 'dot')", c.Render.Format)
	}
	switch c.Cache.Backend {
	case backendFile, backendRedis, backendNone:
	default:
		return fmt.Errorf("cache.backend %q (must be 'file', 'redis' or 'none')", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl %s is negative", c.Cache.TTL)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
