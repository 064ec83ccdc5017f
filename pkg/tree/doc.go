// Package tree provides an ordered n-ary tree whose nodes carry an id, a
// value, a feature map and a list of typed edges to other nodes.
//
// # Overview
//
// A [Tree] is both a node and the subtree rooted at it. Nodes own their
// children; the parent link is a back reference only. Edges ([Edge]) model
// relations that cut across the tree, such as dependency links between words
// of a parsed sentence.
//
// # Basic Usage
//
// Create nodes with [New], attach them with [Tree.Add], and look them up by
// id with [Tree.Find]:
//
//	root := tree.New("R", "root")
//	a := tree.New("A", "child A")
//	b := tree.New("B", "child B")
//	root.Add(a, b)
//
//	root.Size()            // 3
//	root.Find("child B")   // b
//
// # Features
//
// [Tree.Get] and [Tree.Set] read and write the feature map. The [Symbol] keys
// [KeyID] and [KeyValue] are reserved: Get answers them from the node itself
// and Set rejects them. Symbol and string keys live in separate key spaces, so
// Get("id") is an ordinary (usually missing) feature:
//
//	_ = root.Set(tree.Symbol("tag"), "NP")
//	root.Get(tree.KeyID)             // "root"
//	root.Get("id")                   // nil
//	root.Get(tree.Symbol("tag"))     // "NP"
//
// # Identifiers
//
// Ids are not required to be unique. [Tree.Find] checks each node's direct
// children before descending, left to right, and returns the first match.
// With root → [A, B] and B → [C, D] where D reuses B's id, root.Find returns B
// while B.Find returns D.
//
// # Detaching
//
// [Tree.Remove] and [Tree.RemoveAll] detach children fully: the child loses
// its parent link and disappears from the parent's children. [Tree.SetAsRoot]
// only clears the node's own parent link; the former parent keeps listing it.
// [Tree.Add] re-parents without detaching from a previous parent. Callers that
// move nodes between parents should Remove first.
//
// # Concurrency
//
// Trees are not safe for concurrent use. Callers sharing a tree across
// goroutines must hold one lock per tree for every mutating call.
package tree
