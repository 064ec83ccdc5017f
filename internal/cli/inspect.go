package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtree "github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/matzehuels/birch/pkg/tree"
)

// stats summarizes a tree for the inspect command.
type stats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
	Edges    int
}

// summarize walks t once with an explicit stack.
func summarize(t *tree.Tree) stats {
	type item struct {
		n     *tree.Tree
		depth int
	}
	var s stats
	stack := []item{{t, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s.Nodes++
		s.Edges += len(it.n.Edges())
		s.MaxDepth = max(s.MaxDepth, it.depth)
		if it.n.IsLeaf() {
			s.Leaves++
		}
		for c := range it.n.All() {
			stack = append(stack, item{c, it.depth + 1})
		}
	}
	return s
}

var (
	outlineEnumStyle = lipgloss.NewStyle().Foreground(colorDim).MarginRight(1)
	outlineRootStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// outline renders t as an indented tree. Below maxDepth levels (0 means no
// limit) a node's children are collapsed into a count.
func outline(t *tree.Tree, maxDepth int) string {
	type item struct {
		n     *tree.Tree
		lg    *lgtree.Tree
		depth int
	}
	root := lgtree.Root(nodeLabel(t)).
		Enumerator(lgtree.RoundedEnumerator).
		EnumeratorStyle(outlineEnumStyle).
		RootStyle(outlineRootStyle)

	stack := []item{{t, root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if maxDepth > 0 && it.depth >= maxDepth {
			it.lg.Child(StyleDim.Render(fmt.Sprintf("… %d more", len(it.n.Children()))))
			continue
		}
		for c := range it.n.All() {
			if c.IsLeaf() {
				it.lg.Child(nodeLabel(c))
				continue
			}
			sub := lgtree.Root(nodeLabel(c))
			it.lg.Child(sub)
			stack = append(stack, item{c, sub, it.depth + 1})
		}
	}
	return root.String()
}

// nodeLabel is "id (value)", or just the id when the value is nil.
func nodeLabel(n *tree.Tree) string {
	if n.Value() == nil {
		return n.ID()
	}
	return fmt.Sprintf("%s %s", n.ID(), StyleDim.Render(fmt.Sprintf("(%v)", n.Value())))
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var depth int
	var noOutline bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize a tree document and print its outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			s := summarize(t)
			fmt.Println(StyleTitle.Render(args[0]))
			printKeyValue("root", t.ID())
			printKeyValue("nodes", strconv.Itoa(s.Nodes))
			printKeyValue("leaves", strconv.Itoa(s.Leaves))
			printKeyValue("depth", strconv.Itoa(s.MaxDepth))
			printKeyValue("edges", strconv.Itoa(s.Edges))

			if !noOutline {
				fmt.Println()
				fmt.Println(outline(t, depth))
			}
			fmt.Println()
			printNextStep("Render it", "birch render "+args[0])
			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "collapse the outline below this depth (0 = unlimited)")
	cmd.Flags().BoolVar(&noOutline, "no-outline", false, "print the summary only")
	return cmd
}
