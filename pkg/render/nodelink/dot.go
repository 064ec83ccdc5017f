package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/birch/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the value and features in node labels.
	// When false, only the node id is shown.
	Detailed bool
}

// ToDOT converts the tree rooted at t to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(t *tree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	nodes := preorder(t)
	names := make(map[*tree.Tree]string, len(nodes))
	for i, n := range nodes {
		names[n] = "n" + strconv.Itoa(i)
	}

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %s [label=%q];\n", names[n], fmtLabel(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %s -> %s;\n", names[n], names[c])
		}
	}

	var links bytes.Buffer
	for _, n := range nodes {
		for _, e := range n.Edges() {
			from := nameOf(e.NodeA(), names, &buf)
			to := nameOf(e.NodeB(), names, &buf)
			fmt.Fprintf(&links, "  %s -> %s [%s];\n", from, to, strings.Join(edgeAttrs(e), ", "))
		}
	}
	if links.Len() > 0 {
		buf.WriteString("\n")
		buf.Write(links.Bytes())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// preorder lists the nodes of t parent-first, children in order. A node
// listed under more than one parent appears once, at its first position.
func preorder(t *tree.Tree) []*tree.Tree {
	var out []*tree.Tree
	seen := make(map[*tree.Tree]bool)
	stack := []*tree.Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		children := n.Children()
		slices.Reverse(children)
		stack = append(stack, children...)
	}
	return out
}

// nameOf returns the DOT name of n, declaring it as an external node when it
// is not part of the rendered tree.
func nameOf(n *tree.Tree, names map[*tree.Tree]string, buf *bytes.Buffer) string {
	if name, ok := names[n]; ok {
		return name
	}
	name := "x" + strconv.Itoa(len(names))
	names[n] = name
	label := "nil"
	if n != nil {
		label = n.ID()
	}
	fmt.Fprintf(buf, "  %s [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey, fontcolor=black];\n", name, label)
	return name
}

func fmtLabel(n *tree.Tree, detailed bool) string {
	if !detailed {
		return n.ID()
	}

	parts := []string{fmt.Sprintf("value: %v", n.Value())}
	feats := n.Features()
	keys := make([]string, 0, len(feats))
	byName := make(map[string]any, len(feats))
	for k, v := range feats {
		name := fmt.Sprint(k)
		if _, ok := k.(tree.Symbol); !ok {
			name = fmt.Sprintf("%#v", k)
		}
		keys = append(keys, name)
		byName[name] = v
	}
	slices.Sort(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, byName[k]))
	}

	return n.ID() + "\n" + strings.Join(parts, "\n")
}

func edgeAttrs(e *tree.Edge) []string {
	attrs := []string{"style=dashed", "constraint=false"}
	if !e.Directed() {
		return append(attrs, "dir=none")
	}
	if !e.HasDirection() {
		return attrs
	}
	switch d := e.Direction(); d {
	case any(e.NodeB()):
	case any(e.NodeA()):
		attrs = append(attrs, "dir=back")
	default:
		attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprint(d)))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
