// Package nodelink renders trees as node-and-edge diagrams using Graphviz.
//
// The tree is first converted to DOT text with [ToDOT], which can be written
// out as-is or turned into SVG with [RenderSVG]:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Drawing Conventions
//
//   - Parent → child arcs are solid and point downward.
//   - Edges registered with [tree.Tree.Link] are dashed. Undirected edges
//     have no arrowhead. Directed edges point from NodeA to NodeB, or at the
//     direction node when the direction is one of the endpoints; any other
//     direction marker is shown as the edge label.
//   - Edge endpoints outside the rendered tree are drawn as grey nodes.
//
// DOT node names are generated from pre-order positions, so duplicate ids
// render as separate boxes carrying the same label.
package nodelink
