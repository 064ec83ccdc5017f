package tree

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"

	"github.com/matzehuels/birch/pkg/errors"
)

var (
	// ErrNotChild is returned by [Tree.Remove] when the id does not belong to a
	// direct child of the receiver. Deeper descendants do not count.
	ErrNotChild error = errors.New(errors.ErrCodeInvalidArgument, "given id is not a child of this node")

	// ErrReservedKey is returned by [Tree.Set] for [KeyID] and [KeyValue].
	// Use [Tree.SetID] and [Tree.SetValue] instead.
	ErrReservedKey error = errors.New(errors.ErrCodeInvalidArgument, "reserved feature key")

	// ErrInvalidKey is returned by [Tree.Set] for nil or non-comparable keys.
	ErrInvalidKey error = errors.New(errors.ErrCodeInvalidArgument, "feature key must be a non-nil comparable value")
)

// Symbol is a feature key in its own key space. Symbol("id") and the string
// "id" are different keys, which keeps plain string features from ever
// shadowing the reserved accessors.
type Symbol string

// Reserved keys answered by [Tree.Get] from the node itself rather than the
// feature map.
const (
	KeyID    Symbol = "id"
	KeyValue Symbol = "value"
)

// Tree is a node of an ordered n-ary tree. Every node is the root of the
// subtree below it, so the same type is used for whole trees and for nodes.
//
// A node owns its children. The parent link is a plain back reference that is
// maintained by [Tree.Add] and cleared by [Tree.Remove], [Tree.RemoveAll] and
// [Tree.SetAsRoot]; it never keeps a parent alive on its own.
//
// The zero value is not usable - use [New].
// Tree is not safe for concurrent use without external synchronization.
type Tree struct {
	id     string
	value  any
	parent *Tree

	children []*Tree
	index    map[string]*Tree // child id -> child, always in sync with children

	features map[any]any
	edges    []*Edge
}

// New creates a detached node with no children, features or edges.
func New(value any, id string) *Tree {
	return &Tree{
		id:       id,
		value:    value,
		index:    make(map[string]*Tree),
		features: make(map[any]any),
	}
}

// ID returns the node identifier.
func (t *Tree) ID() string { return t.id }

// SetID changes the node identifier. When the node is attached, the parent's
// child index is updated so lookups by the new id keep working.
func (t *Tree) SetID(id string) {
	old := t.id
	t.id = id
	p := t.parent
	if p == nil {
		return
	}
	if p.index[old] == t {
		delete(p.index, old)
		p.reindex(old)
	}
	p.index[id] = t
}

// Value returns the node payload.
func (t *Tree) Value() any { return t.value }

// SetValue replaces the node payload.
func (t *Tree) SetValue(v any) { t.value = v }

// Parent returns the node this one is attached to, or nil for a root.
func (t *Tree) Parent() *Tree { return t.parent }

// Children returns a copy of the direct children in insertion order.
func (t *Tree) Children() []*Tree { return slices.Clone(t.children) }

// Edges returns a copy of the registered edges in insertion order.
func (t *Tree) Edges() []*Edge { return slices.Clone(t.edges) }

// Features returns a copy of the feature map.
func (t *Tree) Features() map[any]any { return maps.Clone(t.features) }

// Root follows parent links to the top of the tree. A root returns itself.
func (t *Tree) Root() *Tree {
	n := t
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Add appends nodes as children in argument order and returns the first one,
// or nil when called without nodes.
//
// A node that is still attached elsewhere is re-parented without being removed
// from its old parent; call [Tree.Remove] on the old parent first. Adding an
// ancestor of t creates a cycle and is not checked.
func (t *Tree) Add(nodes ...*Tree) *Tree {
	for _, n := range nodes {
		t.children = append(t.children, n)
		t.index[n.id] = n
		n.parent = t
	}
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// Get returns the id for [KeyID], the value for [KeyValue], and the feature
// stored under key otherwise. Missing features return nil.
func (t *Tree) Get(key any) any {
	v, _ := t.Lookup(key)
	return v
}

// Lookup is like [Tree.Get] but also reports whether the key was present.
func (t *Tree) Lookup(key any) (any, bool) {
	switch key {
	case KeyID:
		return t.id, true
	case KeyValue:
		return t.value, true
	}
	if !validKey(key) {
		return nil, false
	}
	v, ok := t.features[key]
	return v, ok
}

// Set stores a feature, overwriting any previous value under key.
func (t *Tree) Set(key, value any) error {
	if key == KeyID || key == KeyValue {
		return fmt.Errorf("set %v: %w", key, ErrReservedKey)
	}
	if !validKey(key) {
		return fmt.Errorf("set %T: %w", key, ErrInvalidKey)
	}
	t.features[key] = value
	return nil
}

// Unset removes a feature. Unknown keys are ignored.
func (t *Tree) Unset(key any) {
	if validKey(key) {
		delete(t.features, key)
	}
}

// validKey reports whether key can be used as a map key. The dynamic value is
// checked, so an array or struct holding a slice in an interface is rejected.
func validKey(key any) bool {
	return key != nil && reflect.ValueOf(key).Comparable()
}

// Size returns the number of nodes in the subtree, including t.
func (t *Tree) Size() int {
	size := 0
	stack := []*Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		stack = append(stack, n.children...)
	}
	return size
}

// Each calls fn for every direct child in insertion order.
// It does not descend into grandchildren.
func (t *Tree) Each(fn func(*Tree)) {
	for _, c := range t.children {
		fn(c)
	}
}

// All returns an iterator over the direct children in insertion order.
func (t *Tree) All() iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		for _, c := range t.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Find returns the first descendant with the given id, or nil.
//
// Each node checks its own child index before descending into its children in
// order, so with duplicate ids a shallower match under an earlier branch wins.
// The receiver itself is never matched.
func (t *Tree) Find(id string) *Tree {
	stack := []*Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c, ok := n.index[id]; ok {
			return c
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return nil
}

// FindNode is [Tree.Find] using the id of n.
func (t *Tree) FindNode(n *Tree) *Tree {
	return t.Find(n.id)
}

// IsLeaf reports whether t has no children.
func (t *Tree) IsLeaf() bool { return len(t.children) == 0 }

// IsRoot reports whether t has no parent.
func (t *Tree) IsRoot() bool { return t.parent == nil }

// HasChildren reports whether t has at least one child.
func (t *Tree) HasChildren() bool { return len(t.children) > 0 }

// HasEdges reports whether any edge is registered on t.
func (t *Tree) HasEdges() bool { return len(t.edges) > 0 }

// HasParent reports whether t is attached to a parent.
func (t *Tree) HasParent() bool { return t.parent != nil }

// HasFeatures reports whether the feature map is non-empty.
func (t *Tree) HasFeatures() bool { return len(t.features) > 0 }

// HasFeature reports whether a feature is stored under key.
// Reserved keys are not features.
func (t *Tree) HasFeature(key any) bool {
	if !validKey(key) {
		return false
	}
	_, ok := t.features[key]
	return ok
}

// Has is an alias for [Tree.HasFeature].
func (t *Tree) Has(key any) bool { return t.HasFeature(key) }

// Link registers e on t and returns it. t does not have to be an endpoint.
func (t *Tree) Link(e *Edge) *Edge {
	t.edges = append(t.edges, e)
	return e
}

// SetAsRoot clears the parent link. The former parent still lists t among its
// children; use [Tree.Remove] on the parent for a full detach.
func (t *Tree) SetAsRoot() {
	detach(t, nil)
}

// Remove detaches the direct child with the given id and returns it.
// The child keeps its own subtree. Returns [ErrNotChild] when no direct
// child has that id, even if a deeper descendant does.
func (t *Tree) Remove(id string) (*Tree, error) {
	c, ok := t.index[id]
	if !ok {
		return nil, fmt.Errorf("remove %q: %w", id, ErrNotChild)
	}
	detach(c, t)
	return c, nil
}

// RemoveAll detaches every direct child and returns t.
func (t *Tree) RemoveAll() *Tree {
	for _, c := range t.children {
		detach(c, nil)
	}
	t.children = nil
	t.index = make(map[string]*Tree)
	return t
}

// detach clears c's parent link. When from is non-nil, c is also dropped from
// from's children and index. SetAsRoot passes nil and leaves the old parent
// untouched.
func detach(c, from *Tree) {
	c.parent = nil
	if from == nil {
		return
	}
	from.children = slices.DeleteFunc(from.children, func(n *Tree) bool { return n == c })
	if from.index[c.id] == c {
		delete(from.index, c.id)
		from.reindex(c.id)
	}
}

// reindex points the index entry for id at the last child still carrying it.
func (t *Tree) reindex(id string) {
	for i := len(t.children) - 1; i >= 0; i-- {
		if t.children[i].id == id {
			t.index[id] = t.children[i]
			return
		}
	}
}

// String returns the node id and value.
func (t *Tree) String() string {
	return fmt.Sprintf("%s(%v)", t.id, t.value)
}
