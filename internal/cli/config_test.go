package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	birchErrors "github.com/matzehuels/birch/pkg/errors"
)

func TestReadConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	t.Run("missing implicit", func(t *testing.T) {
		cfg, err := readConfig(missing, false)
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if cfg != defaultConfig() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("missing explicit", func(t *testing.T) {
		_, err := readConfig(missing, true)
		if !birchErrors.Is(err, birchErrors.ErrCodeFileNotFound) {
			t.Errorf("error = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("full", func(t *testing.T) {
		path := writeDoc(t, "config.toml", `
[render]
detailed = true
format = "dot"

[cache]
backend = "redis"
ttl = "1h30m"
redis_addr = "cache:6379"

[log]
level = "debug"
`)
		cfg, err := readConfig(path, true)
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		want := Config{
			Render: RenderConfig{Detailed: true, Format: formatDOT},
			Cache:  CacheConfig{Backend: backendRedis, TTL: 90 * time.Minute, RedisAddr: "cache:6379"},
			Log:    LogConfig{Level: "debug"},
		}
		if cfg != want {
			t.Errorf("cfg = %+v, want %+v", cfg, want)
		}
	})

	t.Run("partial keeps defaults", func(t *testing.T) {
		path := writeDoc(t, "config.toml", "[render]\ndetailed = true\n")
		cfg, err := readConfig(path, true)
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if cfg.Render.Format != formatSVG || cfg.Cache.TTL != defaultCacheTTL || !cfg.Render.Detailed {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	invalid := []struct {
		name, content string
	}{
		{"malformed", "[render\nformat = "},
		{"bad format", "[render]\nformat = \"png\"\n"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readConfig(writeDoc(t, "config.toml", tt.content), true)
			if !birchErrors.Is(err, birchErrors.ErrCodeInvalidFormat) {
				t.Errorf("error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestLoadConfigFromXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	if err := os.MkdirAll(filepath.Join(base, appName), 0755); err != nil {
		t.Fatal(err)
	}
	cfg := "[render]\ndetailed = true\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(base, appName, "config.toml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(&bytes.Buffer{}, LogInfo)
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !c.Config.Render.Detailed {
		t.Error("Render.Detailed = false, want true")
	}
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("log level = %v, want debug", got)
	}
}
