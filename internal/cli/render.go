package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/birch/pkg/cache"
	birchErrors "github.com/matzehuels/birch/pkg/errors"
	"github.com/matzehuels/birch/pkg/observability"
	"github.com/matzehuels/birch/pkg/render/nodelink"
	"github.com/matzehuels/birch/pkg/tree"
)

// renderKeyType labels render entries in cache events.
const renderKeyType = "render"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file; derived from the input when empty, "-" for stdout
	format   string // "svg" or "dot"
	detailed bool   // include values and features in node labels
	noCache  bool   // bypass the render cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a tree document as a node-link diagram",
		Long: `Render draws parent-child arcs as solid lines and registered edges as dashed
ones. SVG output goes through Graphviz and is cached by content hash.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Render.Format
			}
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.Config.Render.Detailed
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout (default: FILE with the format's extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show values and features in node labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	return cmd
}

func validateFormat(f string) error {
	if f != formatSVG && f != formatDOT {
		return birchErrors.New(birchErrors.ErrCodeInvalidArgument, "invalid format: %s (must be 'svg' or 'dot')", f)
	}
	return nil
}

// defaultOutput replaces the input's extension with the output format.
func defaultOutput(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	out := opts.output
	if out == "" {
		out = defaultOutput(path, opts.format)
	}
	if out != "-" {
		if err := birchErrors.ValidatePath(out); err != nil {
			return err
		}
	}

	t, err := loadTree(ctx, path)
	if err != nil {
		return err
	}

	store := newCache(ctx, c.Config.Cache, opts.noCache)
	defer store.Close()

	data, cached, err := renderTree(ctx, t, opts, store, c.Config.Cache.TTL)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return birchErrors.Wrap(birchErrors.ErrCodeInvalidPath, err, "write %s", out)
	}

	s := summarize(t)
	printSuccess("Rendered %s", filepath.Base(path))
	printStats(s.Nodes, s.Edges, cached)
	printFile(out)
	return nil
}

// renderTree produces the diagram bytes for t and reports whether they came
// from store. DOT output is never cached.
func renderTree(ctx context.Context, t *tree.Tree, opts renderOpts, store cache.Cache, ttl time.Duration) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)
	dot := nodelink.ToDOT(t, nodelink.Options{Detailed: opts.detailed})
	if opts.format == formatDOT {
		return []byte(dot), false, nil
	}

	hooks := observability.Cache()
	key := cache.RenderKey(dot, opts.format)
	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "err", err)
	} else if ok {
		hooks.OnCacheHit(ctx, renderKeyType)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, renderKeyType)

	nodes := t.Size()
	observability.Render().OnRenderStart(ctx, opts.format, nodes)
	prog := newProgress(logger)
	spin := newSpinner(ctx, "Rendering with Graphviz...")
	spin.Start()
	svg, err := nodelink.RenderSVG(ctx, dot)
	spin.Stop()
	observability.Render().OnRenderComplete(ctx, opts.format, len(svg), time.Since(prog.start), err)
	if spin.Cancelled() {
		printError("Rendering cancelled")
		return nil, false, ctx.Err()
	}
	if err != nil {
		return nil, false, birchErrors.Wrap(birchErrors.ErrCodeInternal, err, "render %s", opts.format)
	}
	prog.done(fmt.Sprintf("Rendered %d nodes to SVG", nodes))

	if err := store.Set(ctx, key, svg, ttl); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("cache write failed", "err", err)
	} else if err == nil {
		hooks.OnCacheSet(ctx, renderKeyType, len(svg))
	}
	return svg, false, nil
}
