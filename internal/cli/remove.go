package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	birchErrors "github.com/matzehuels/birch/pkg/errors"
	birchio "github.com/matzehuels/birch/pkg/io"
	"github.com/matzehuels/birch/pkg/tree"
)

// removeOpts holds the command-line flags for the remove command.
type removeOpts struct {
	at       string // id of the parent to remove from; the root when empty
	output   string // where to write the remaining tree; stdout when empty
	detached string // where to write the removed subtree; discarded when empty
}

// removeCommand creates the remove command.
func (c *CLI) removeCommand() *cobra.Command {
	var opts removeOpts

	cmd := &cobra.Command{
		Use:   "remove FILE ID",
		Short: "Detach a direct child and write the remaining tree",
		Long: `Remove detaches the child ID from its parent (the root unless --at is given).
Only direct children can be removed; deeper descendants are rejected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.at, "at", "", "id of the parent node (default: the root)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file for the remaining tree (default: stdout)")
	cmd.Flags().StringVar(&opts.detached, "detached", "", "also write the removed subtree to this file")
	return cmd
}

func runRemove(ctx context.Context, path, id string, opts removeOpts) error {
	logger := loggerFromContext(ctx)
	for _, p := range []string{opts.output, opts.detached} {
		if p == "" {
			continue
		}
		if err := birchErrors.ValidatePath(p); err != nil {
			return err
		}
	}

	root, err := loadTree(ctx, path)
	if err != nil {
		return err
	}

	parent := root
	if opts.at != "" {
		if parent = lookup(root, opts.at); parent == nil {
			return birchErrors.New(birchErrors.ErrCodeNotFound, "no node with id %q in %s", opts.at, path)
		}
	}

	removed, err := parent.Remove(id)
	if err != nil {
		return err
	}
	logger.Debug("removed subtree", "id", id, "parent", parent.ID(), "size", removed.Size())

	if n := danglingEdges(root); n > 0 {
		logger.Warn("edges now point outside the tree and will not load back", "count", n)
	}

	if opts.output == "" {
		format, err := birchio.FormatFor(path)
		if err != nil {
			return err
		}
		if err := birchio.Write(root, os.Stdout, format); err != nil {
			return err
		}
	} else {
		if err := birchio.Export(root, opts.output); err != nil {
			return err
		}
		printSuccess("Removed %s from %s (%d nodes left)", id, parent.ID(), root.Size())
		printFile(opts.output)
	}

	if opts.detached != "" {
		if err := birchio.Export(removed, opts.detached); err != nil {
			return err
		}
		if opts.output == "" {
			logger.Info("wrote detached subtree", "path", opts.detached)
		} else {
			printFile(opts.detached)
		}
	}
	return nil
}

// danglingEdges counts edges registered in root's tree that reference a node
// no longer reachable from root.
func danglingEdges(root *tree.Tree) int {
	inTree := func(n *tree.Tree) bool { return n != nil && n.Root() == root }

	count := 0
	stack := []*tree.Tree{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.Edges() {
			dir, isNode := e.Direction().(*tree.Tree)
			if !inTree(e.NodeA()) || !inTree(e.NodeB()) || isNode && !inTree(dir) {
				count++
			}
		}
		stack = append(stack, n.Children()...)
	}
	return count
}
