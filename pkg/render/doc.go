// Package render groups the diagram renderers for birch trees.
//
// The only renderer is [nodelink], which draws parent-child arcs as solid
// lines and registered edges as dashed lines, producing DOT text and SVG
// through Graphviz.
//
// [nodelink]: github.com/matzehuels/birch/pkg/render/nodelink
package render
