// Package pkg holds the birch libraries.
//
// # Overview
//
// Birch is an ordered n-ary tree with per-node features and cross-links
// between arbitrary nodes. The pkg directory is organized as:
//
//  1. [tree] - the node and edge types
//  2. [io] - JSON and TOML tree documents
//  3. [render/nodelink] - Graphviz node-link diagrams
//  4. [cache] - render cache backends (file, Redis, none)
//  5. [errors] - structured error codes shared by all packages
//  6. [observability] - hooks for load, render and cache events
//  7. [buildinfo] - version information
//
// # Data Flow
//
//	tree document (.json / .toml)
//	         ↓
//	    [io] package (decode, assign ids, resolve edges)
//	         ↓
//	    [tree] package (query, navigate, edit)
//	         ↓
//	    [render/nodelink] package (DOT, then SVG via Graphviz)
//	         ↓
//	    [cache] package (keyed by DOT text and format)
//
// # Quick Start
//
//	root := tree.New("S", "root")
//	np := root.Add(tree.New("NP", "np"))
//	root.Add(tree.New("VP", "vp"))
//	np.Add(tree.New("the", "det"))
//
//	dot := nodelink.ToDOT(root, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [tree]: github.com/matzehuels/birch/pkg/tree
// [io]: github.com/matzehuels/birch/pkg/io
// [render/nodelink]: github.com/matzehuels/birch/pkg/render/nodelink
// [cache]: github.com/matzehuels/birch/pkg/cache
// [errors]: github.com/matzehuels/birch/pkg/errors
// [observability]: github.com/matzehuels/birch/pkg/observability
// [buildinfo]: github.com/matzehuels/birch/pkg/buildinfo
package pkg
