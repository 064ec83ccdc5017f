package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// clearer is implemented by caches that can drop all their entries.
type clearer interface {
	Clear(ctx context.Context) error
}

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if c.Config.Cache.Backend == backendNone {
				printInfo("Caching is disabled")
				return nil
			}
			store := newCache(ctx, c.Config.Cache, false)
			defer store.Close()

			var err error
			switch s := store.(type) {
			case clearer:
				err = s.Clear(ctx)
			case interface{ Clear() error }:
				err = s.Clear()
			default:
				printInfo("Cache is unavailable")
				return nil
			}
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess("Cleared the %s cache", c.Config.Cache.Backend)
			printDetail("Location: %s", c.cacheLocation())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where cached renders are stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(c.cacheLocation())
			return nil
		},
	}
}

// cacheLocation is the cache directory, or the Redis address for that backend.
func (c *CLI) cacheLocation() string {
	switch c.Config.Cache.Backend {
	case backendRedis:
		return "redis://" + c.Config.Cache.RedisAddr
	case backendNone:
		return "(disabled)"
	}
	dir, err := cacheDir()
	if err != nil {
		return "(unavailable)"
	}
	return dir
}
