package tree

// Child returns the direct child indexed under id.
func (t *Tree) Child(id string) (*Tree, bool) {
	c, ok := t.index[id]
	return c, ok
}

// ChildAt returns the child at position i, or nil when i is out of range.
func (t *Tree) ChildAt(i int) *Tree {
	if i < 0 || i >= len(t.children) {
		return nil
	}
	return t.children[i]
}

// Depth returns the number of parent links between t and its root.
func (t *Tree) Depth() int {
	d := 0
	for n := t.parent; n != nil; n = n.parent {
		d++
	}
	return d
}

// Sibling returns the node offset positions away from t in its parent's
// children (negative is left). Returns nil for roots, for offsets that fall
// outside the parent's children, and when t is not listed by its parent.
func (t *Tree) Sibling(offset int) *Tree {
	pos := t.position()
	if pos < 0 {
		return nil
	}
	return t.parent.ChildAt(pos + offset)
}

// Left returns the sibling n positions to the left.
func (t *Tree) Left(n int) *Tree { return t.Sibling(-n) }

// Right returns the sibling n positions to the right.
func (t *Tree) Right(n int) *Tree { return t.Sibling(n) }

// Siblings returns the parent's other children in order. Roots have none.
func (t *Tree) Siblings() []*Tree {
	if t.parent == nil {
		return nil
	}
	var out []*Tree
	for _, c := range t.parent.children {
		if c != t {
			out = append(out, c)
		}
	}
	return out
}

func (t *Tree) position() int {
	if t.parent == nil {
		return -1
	}
	for i, c := range t.parent.children {
		if c == t {
			return i
		}
	}
	return -1
}
