package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/birch/pkg/observability"
)

// logHooks reports render and cache events as debug logs.
type logHooks struct {
	logger *log.Logger
}

// Hooks returns observability hooks that log through the CLI logger.
func (c *CLI) Hooks() interface {
	observability.RenderHooks
	observability.CacheHooks
} {
	return logHooks{logger: c.Logger}
}

func (h logHooks) OnLoad(_ context.Context, path string, nodes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("loaded", "path", path, "nodes", nodes, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnRenderStart(_ context.Context, format string, nodes int) {
	h.logger.Debug("render start", "format", format, "nodes", nodes)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.logger.Debug("render done", "format", format, "bytes", size, "took", d.Round(time.Millisecond), "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
