package io

import (
	"github.com/google/uuid"

	"github.com/matzehuels/birch/pkg/errors"
	"github.com/matzehuels/birch/pkg/tree"
)

type document struct {
	Root  *node  `json:"root" toml:"root"`
	Edges []edge `json:"edges,omitempty" toml:"edges,omitempty"`
}

type node struct {
	ID       string         `json:"id,omitempty" toml:"id,omitempty"`
	Value    any            `json:"value,omitempty" toml:"value,omitempty"`
	Features map[string]any `json:"features,omitempty" toml:"features,omitempty"`
	Children []node         `json:"children,omitempty" toml:"children,omitempty"`
}

type edge struct {
	From            string `json:"from" toml:"from"`
	To              string `json:"to" toml:"to"`
	On              string `json:"on,omitempty" toml:"on,omitempty"`
	Directed        bool   `json:"directed" toml:"directed"`
	Direction       any    `json:"direction,omitempty" toml:"direction,omitempty"`
	HasDirection    bool   `json:"has_direction,omitempty" toml:"has_direction,omitempty"`
	DirectionIsNode bool   `json:"direction_is_node,omitempty" toml:"direction_is_node,omitempty"`
}

// build converts a decoded document into a tree.
func build(doc document) (*tree.Tree, error) {
	if doc.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "document has no root node")
	}
	root, err := buildNode(*doc.Root)
	if err != nil {
		return nil, err
	}
	for i, e := range doc.Edges {
		if err := linkEdge(root, e); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %d (%s->%s)", i, e.From, e.To)
		}
	}
	return root, nil
}

func buildNode(n node) (*tree.Tree, error) {
	id := n.ID
	if id == "" {
		id = uuid.NewString()
	} else if err := errors.ValidateNodeID(id); err != nil {
		return nil, err
	}

	t := tree.New(n.Value, id)
	for k, v := range n.Features {
		if err := t.Set(tree.Symbol(k), v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %s: feature %q", id, k)
		}
	}
	for _, c := range n.Children {
		child, err := buildNode(c)
		if err != nil {
			return nil, err
		}
		t.Add(child)
	}
	return t, nil
}

func linkEdge(root *tree.Tree, e edge) error {
	from, err := resolve(root, e.From)
	if err != nil {
		return err
	}
	to, err := resolve(root, e.To)
	if err != nil {
		return err
	}
	on := from
	if e.On != "" {
		if on, err = resolve(root, e.On); err != nil {
			return err
		}
	}

	var direction []any
	switch {
	case e.DirectionIsNode:
		id, ok := e.Direction.(string)
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "direction_is_node requires a string direction")
		}
		d, err := resolve(root, id)
		if err != nil {
			return err
		}
		direction = append(direction, d)
	case e.Direction != nil, e.HasDirection:
		direction = append(direction, e.Direction)
	}

	ed, err := tree.NewEdge(from, to, e.Directed, direction...)
	if err != nil {
		return err
	}
	on.Link(ed)
	return nil
}

// resolve finds id at the root itself or below it.
func resolve(root *tree.Tree, id string) (*tree.Tree, error) {
	if root.ID() == id {
		return root, nil
	}
	if n := root.Find(id); n != nil {
		return n, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown node %q", id)
}

// flatten converts a tree into a document. Edges are collected in pre-order
// of the nodes they are registered on.
func flatten(t *tree.Tree) (document, error) {
	var edges []edge
	root, err := flattenNode(t, &edges)
	if err != nil {
		return document{}, err
	}
	return document{Root: &root, Edges: edges}, nil
}

func flattenNode(t *tree.Tree, edges *[]edge) (node, error) {
	n := node{ID: t.ID(), Value: t.Value()}

	if t.HasFeatures() {
		n.Features = make(map[string]any)
		for k, v := range t.Features() {
			sym, ok := k.(tree.Symbol)
			if !ok {
				return node{}, errors.New(errors.ErrCodeUnsupported, "node %s: feature key %v (%T) is not a symbol", t.ID(), k, k)
			}
			n.Features[string(sym)] = v
		}
	}

	for _, e := range t.Edges() {
		fe, err := flattenEdge(t, e)
		if err != nil {
			return node{}, err
		}
		*edges = append(*edges, fe)
	}

	for _, c := range t.Children() {
		child, err := flattenNode(c, edges)
		if err != nil {
			return node{}, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func flattenEdge(on *tree.Tree, e *tree.Edge) (edge, error) {
	if e.NodeA() == nil || e.NodeB() == nil {
		return edge{}, errors.New(errors.ErrCodeUnsupported, "node %s: edge with a nil endpoint", on.ID())
	}
	out := edge{
		From:     e.NodeA().ID(),
		To:       e.NodeB().ID(),
		Directed: e.Directed(),
	}
	if on != e.NodeA() {
		out.On = on.ID()
	}
	if e.HasDirection() {
		out.HasDirection = true
		if d, ok := e.Direction().(*tree.Tree); ok {
			out.Direction = d.ID()
			out.DirectionIsNode = true
		} else {
			out.Direction = e.Direction()
		}
	}
	return out, nil
}
