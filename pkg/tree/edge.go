package tree

import (
	"fmt"

	"github.com/matzehuels/birch/pkg/errors"
)

// ErrEdgeArity is returned by [NewEdge] when more than one direction value is
// supplied.
var ErrEdgeArity error = errors.New(errors.ErrCodeInvalidArgument, "wrong number of arguments for edge")

type noDirection struct{}

func (noDirection) String() string { return "none" }

// NoDirection is the direction of an edge created without one. It is distinct
// from nil, zero and false, so those remain usable as caller-supplied markers.
var NoDirection any = noDirection{}

// Edge is an immutable relation between two nodes, used for links that do not
// follow the parent/child structure (dependencies, coreference and the like).
// Edges do not own their endpoints and there is no global edge index; a node
// only knows the edges registered on it with [Tree.Link].
type Edge struct {
	nodeA, nodeB *Tree
	directed     bool
	direction    any
}

// NewEdge creates an edge between a and b. At most one direction value may be
// given; it is stored verbatim and may be anything, including one of the
// endpoints. Without it the direction is [NoDirection].
func NewEdge(a, b *Tree, directed bool, direction ...any) (*Edge, error) {
	if len(direction) > 1 {
		return nil, fmt.Errorf("got %d direction values, want at most 1: %w", len(direction), ErrEdgeArity)
	}
	e := &Edge{nodeA: a, nodeB: b, directed: directed, direction: NoDirection}
	if len(direction) == 1 {
		e.direction = direction[0]
	}
	return e, nil
}

// MustEdge is like [NewEdge] but panics on error.
func MustEdge(a, b *Tree, directed bool, direction ...any) *Edge {
	e, err := NewEdge(a, b, directed, direction...)
	if err != nil {
		panic(err)
	}
	return e
}

// NodeA returns the first endpoint.
func (e *Edge) NodeA() *Tree { return e.nodeA }

// NodeB returns the second endpoint.
func (e *Edge) NodeB() *Tree { return e.nodeB }

// Directed reports whether the edge was created as directed.
func (e *Edge) Directed() bool { return e.directed }

// Direction returns the direction marker, or [NoDirection].
func (e *Edge) Direction() any { return e.direction }

// HasDirection reports whether a direction value was supplied.
func (e *Edge) HasDirection() bool { return e.direction != NoDirection }
