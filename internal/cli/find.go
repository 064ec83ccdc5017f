package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	birchErrors "github.com/matzehuels/birch/pkg/errors"
	"github.com/matzehuels/birch/pkg/tree"
)

// findCommand creates the find command.
func (c *CLI) findCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find FILE ID",
		Short: "Show the first node with the given id",
		Long: `Find searches the tree depth first. At every node its direct children are
checked before descending, so with duplicate ids the shallowest match under the
earliest branch is reported.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			n := lookup(t, args[1])
			if n == nil {
				return birchErrors.New(birchErrors.ErrCodeNotFound, "no node with id %q in %s", args[1], args[0])
			}
			for _, kv := range describe(n) {
				printKeyValue(kv[0], kv[1])
			}
			return nil
		},
	}
}

// describe lists the fields of n shown by find and browse.
func describe(n *tree.Tree) [][2]string {
	parent := "-"
	if p := n.Parent(); p != nil {
		parent = p.ID()
	}
	rows := [][2]string{
		{"id", n.ID()},
		{"value", fmt.Sprintf("%v", n.Value())},
		{"depth", strconv.Itoa(n.Depth())},
		{"parent", parent},
		{"children", strconv.Itoa(len(n.Children()))},
		{"siblings", strconv.Itoa(len(n.Siblings()))},
	}
	if n.HasEdges() {
		rows = append(rows, [2]string{"edges", strconv.Itoa(len(n.Edges()))})
	}

	features := make([][2]string, 0, len(n.Features()))
	for k, v := range n.Features() {
		features = append(features, [2]string{featureName(k), fmt.Sprintf("%v", v)})
	}
	sort.Slice(features, func(i, j int) bool { return features[i][0] < features[j][0] })
	return append(rows, features...)
}

func featureName(k any) string {
	if s, ok := k.(tree.Symbol); ok {
		return ":" + string(s)
	}
	return fmt.Sprintf("%#v", k)
}
