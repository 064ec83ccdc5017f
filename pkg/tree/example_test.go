package tree_test

import (
	"fmt"

	"github.com/matzehuels/birch/pkg/tree"
)

func ExampleTree_basic() {
	root := tree.New("R", "root")
	a := tree.New("A", "A")
	b := tree.New("B", "B")
	root.Add(a, b)
	b.Add(tree.New("C", "C"), tree.New("D", "D"))

	fmt.Println("Size:", root.Size())
	fmt.Println("Find C:", root.Find("C"))
	fmt.Println("Depth of C:", root.Find("C").Depth())
	// Output:
	// Size: 5
	// Find C: C(C)
	// Depth of C: 2
}

func ExampleTree_Find_duplicateIDs() {
	root := tree.New("R", "root")
	a := tree.New("A", "child A")
	b := tree.New("B", "child B")
	c := tree.New("C", "child C")
	d := tree.New("D", "child B")
	root.Add(a, b)
	b.Add(c, d)

	fmt.Println(root.FindNode(d).Value())
	fmt.Println(b.FindNode(d).Value())
	// Output:
	// B
	// D
}

func ExampleTree_Get() {
	n := tree.New("R", "root")
	_ = n.Set(tree.Symbol("tag"), "NP")

	fmt.Println(n.Get(tree.KeyID))
	fmt.Println(n.Get("id"))
	fmt.Println(n.Get(tree.Symbol("tag")))
	// Output:
	// root
	// <nil>
	// NP
}

func ExampleTree_Remove() {
	root := tree.New("R", "root")
	a := tree.New("A", "a")
	root.Add(a)

	removed, err := root.Remove("a")
	fmt.Println(removed == a, err, a.IsRoot(), root.Size())

	_, err = root.Remove("a")
	fmt.Println(err)
	// Output:
	// true <nil> true 1
	// remove "a": INVALID_ARGUMENT: given id is not a child of this node
}

func ExampleNewEdge() {
	a := tree.New("A", "a")
	b := tree.New("B", "b")

	dep := a.Link(tree.MustEdge(a, b, true, a))
	rel := a.Link(tree.MustEdge(a, b, false))

	fmt.Println(dep.Directed(), dep.Direction() == a)
	fmt.Println(rel.Directed(), rel.HasDirection(), rel.Direction())
	fmt.Println(len(a.Edges()))
	// Output:
	// true true
	// false false none
	// 2
}
