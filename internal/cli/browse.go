package cli

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/birch/pkg/tree"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	breadcrumbStyle   = lipgloss.NewStyle().Foreground(colorGray)
)

// browseModel is the bubbletea model for walking a tree one level at a time.
// The list shows the children of node; cursor selects one of them.
type browseModel struct {
	node   *tree.Tree
	cursor int
	offset int
	height int
}

func newBrowseModel(root *tree.Tree) browseModel {
	return browseModel{node: root, height: 15}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "enter", "right", "l":
			if c := m.node.ChildAt(m.cursor); c != nil && c.HasChildren() {
				m.node, m.cursor, m.offset = c, 0, 0
			}
		case "left", "h", "backspace":
			if p := m.node.Parent(); p != nil {
				pos := slices.Index(p.Children(), m.node)
				m.node, m.offset = p, 0
				m.cursor = max(pos, 0)
				m.scroll()
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-10, 5)
		m.scroll()
	}
	return m, nil
}

func (m *browseModel) move(delta int) {
	n := len(m.node.Children())
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *browseModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// selected returns the child under the cursor, or nil for a leaf.
func (m browseModel) selected() *tree.Tree {
	return m.node.ChildAt(m.cursor)
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(breadcrumb(m.node)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  → open  ← up  q quit"))
	b.WriteString("\n\n")

	children := m.node.Children()
	if len(children) == 0 {
		b.WriteString(listDimStyle.Render("  (no children)"))
		b.WriteString("\n")
	}
	end := min(m.offset+m.height, len(children))
	for i := m.offset; i < end; i++ {
		c := children[i]
		line := "  " + nodeLabel(c)
		style := listNormalStyle
		if i == m.cursor {
			line = "▸ " + nodeLabel(c)
			style = listSelectedStyle
		}
		if c.HasChildren() {
			line += listDimStyle.Render(" ›")
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	if end < len(children) {
		b.WriteString(listDimStyle.Render("  …"))
		b.WriteString("\n")
	}

	if sel := m.selected(); sel != nil {
		b.WriteString("\n")
		for _, kv := range describe(sel) {
			b.WriteString(styleKey.Render(kv[0]) + " " + StyleValue.Render(kv[1]))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// breadcrumb joins the ids from the root down to n.
func breadcrumb(n *tree.Tree) string {
	var ids []string
	for ; n != nil; n = n.Parent() {
		ids = append(ids, n.ID())
	}
	slices.Reverse(ids)
	return strings.Join(ids, breadcrumbStyle.Render(" / "))
}

// browseCommand creates the interactive browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Interactively walk a tree document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(t), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}
