// Package cache stores rendered diagrams so repeated renders of an unchanged
// tree skip Graphviz.
//
// Three backends implement [Cache]:
//   - [FileCache]: files under the user cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance
//   - [NullCache]: never stores anything (--no-cache)
//
// Keys are built with [RenderKey], which hashes the DOT text together with
// the output format, so any change to the tree or its labels yields a new key.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data stored under key and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RenderKey returns the cache key for a diagram rendered from dot in format.
func RenderKey(dot, format string) string {
	return hashKey("render", format, dot)
}
