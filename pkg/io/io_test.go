package io

import (
	"bytes"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/birch/pkg/errors"
	"github.com/matzehuels/birch/pkg/tree"
)

const sampleJSON = `{
  "root": {
    "id": "root",
    "value": "R",
    "features": {"tag": "S"},
    "children": [
      {"id": "child A", "value": "A"},
      {"id": "child B", "value": "B", "children": [
        {"id": "child C", "value": "C"},
        {"id": "child B", "value": "D"}
      ]}
    ]
  },
  "edges": [
    {"from": "child A", "to": "child C", "directed": true, "direction": "child C", "direction_is_node": true},
    {"from": "child A", "to": "root", "directed": false},
    {"from": "child C", "to": "child A", "on": "root", "directed": true, "direction": 1}
  ]
}`

const sampleTOML = `
[root]
id = "root"
value = "R"

[root.features]
tag = "S"

[[root.children]]
id = "child A"
value = "A"

[[root.children]]
id = "child B"
value = "B"

[[root.children.children]]
id = "child C"
value = "C"

[[edges]]
from = "child A"
to = "child C"
directed = true
`

func TestReadJSON(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if root.ID() != "root" || root.Value() != "R" {
		t.Errorf("root = %v, want root(R)", root)
	}
	if root.Size() != 5 {
		t.Errorf("Size() = %d, want 5", root.Size())
	}
	if got := root.Get(tree.Symbol("tag")); got != "S" {
		t.Errorf("feature tag = %v, want S", got)
	}

	a := root.Find("child A")
	c := root.Find("child C")
	if a == nil || c == nil {
		t.Fatal("expected child A and child C")
	}
	if len(a.Edges()) != 2 {
		t.Fatalf("len(a.Edges()) = %d, want 2", len(a.Edges()))
	}

	dep := a.Edges()[0]
	if dep.NodeA() != a || dep.NodeB() != c || !dep.Directed() || dep.Direction() != c {
		t.Errorf("dependency edge not resolved: %+v", dep)
	}
	undirected := a.Edges()[1]
	if undirected.NodeB() != root || undirected.HasDirection() {
		t.Error("edge to root should resolve to the root with no direction")
	}

	if len(root.Edges()) != 1 {
		t.Fatalf("len(root.Edges()) = %d, want 1", len(root.Edges()))
	}
	if d := root.Edges()[0].Direction(); d != float64(1) {
		t.Errorf("Direction() = %v (%T), want 1", d, d)
	}
}

func TestReadTOML(t *testing.T) {
	root, err := ReadTOML(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if root.Size() != 4 {
		t.Errorf("Size() = %d, want 4", root.Size())
	}
	if root.Find("child C").Depth() != 2 {
		t.Error("child C should be a grandchild")
	}
	a := root.Find("child A")
	if len(a.Edges()) != 1 || a.Edges()[0].HasDirection() {
		t.Error("child A should carry one edge without direction")
	}
}

func TestReadAssignsIDs(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(`{"root": {"value": "R", "children": [{"value": "A"}]}}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	for _, n := range []*tree.Tree{root, root.ChildAt(0)} {
		if _, err := uuid.Parse(n.ID()); err != nil {
			t.Errorf("id %q is not a UUID: %v", n.ID(), err)
		}
	}
	if root.ID() == root.ChildAt(0).ID() {
		t.Error("generated ids should differ")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"malformed", `{"root":`, errors.ErrCodeInvalidFormat},
		{"no root", `{}`, errors.ErrCodeInvalidFormat},
		{"unknown endpoint", `{"root": {"id": "r"}, "edges": [{"from": "r", "to": "x"}]}`, errors.ErrCodeInvalidInput},
		{"unknown on", `{"root": {"id": "r"}, "edges": [{"from": "r", "to": "r", "on": "x"}]}`, errors.ErrCodeInvalidInput},
		{"bad node direction", `{"root": {"id": "r"}, "edges": [{"from": "r", "to": "r", "direction": 3, "direction_is_node": true}]}`, errors.ErrCodeInvalidInput},
		{"reserved feature", `{"root": {"id": "r", "features": {"id": "x"}}}`, errors.ErrCodeInvalidInput},
		{"control char id", `{"root": {"id": "a\u0001b"}}`, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	again, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON (again): %v", err)
	}

	if again.Size() != root.Size() {
		t.Errorf("Size() = %d, want %d", again.Size(), root.Size())
	}
	if len(again.Edges()) != 1 || len(again.Find("child A").Edges()) != 2 {
		t.Error("edges should stay registered on the same nodes")
	}
	dep := again.Find("child A").Edges()[0]
	if dep.Direction() != again.Find("child C") {
		t.Error("node direction should survive a round trip")
	}
}

func TestJSONRoundTripDirections(t *testing.T) {
	root := tree.New("R", "root")
	a := root.Add(tree.New("A", "a"))
	root.Link(tree.MustEdge(root, a, true, nil))
	root.Link(tree.MustEdge(root, a, true))
	root.Link(tree.MustEdge(root, a, false, 0))

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	again, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	edges := again.Edges()
	if len(edges) != 3 {
		t.Fatalf("len(Edges()) = %d, want 3", len(edges))
	}
	tests := []struct {
		name    string
		hasDir  bool
		wantDir any
	}{
		{"explicit nil", true, nil},
		{"omitted", false, tree.NoDirection},
		{"zero", true, float64(0)},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := edges[i]
			if e.HasDirection() != tt.hasDir {
				t.Errorf("HasDirection() = %v, want %v", e.HasDirection(), tt.hasDir)
			}
			if e.Direction() != tt.wantDir {
				t.Errorf("Direction() = %v, want %v", e.Direction(), tt.wantDir)
			}
		})
	}
}

type failingCloser struct{ bytes.Buffer }

func (*failingCloser) Close() error { return stderrors.New("disk full") }

func TestWriteCloseReportsCloseError(t *testing.T) {
	root := tree.New("R", "root")
	w := &failingCloser{}
	err := writeClose(root, w, FormatJSON, "out.json")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("writeClose() error = %v, want INVALID_PATH", err)
	}
	if w.Len() == 0 {
		t.Error("document should have been written before close")
	}
}

func TestWriteRejectsNonSymbolFeatures(t *testing.T) {
	root := tree.New("R", "root")
	_ = root.Set("plain", 1)

	err := WriteJSON(root, &bytes.Buffer{})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("WriteJSON error = %v, want UNSUPPORTED", err)
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	root := tree.New("R", "root")
	a := root.Add(tree.New("A", "a"))
	_ = a.Set(tree.Symbol("pos"), "NN")
	a.Link(tree.MustEdge(a, root, true))

	for _, name := range []string{"tree.json", "tree.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Export(root, path); err != nil {
				t.Fatalf("Export: %v", err)
			}
			got, err := Import(path)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			ga := got.Find("a")
			if ga == nil || ga.Get(tree.Symbol("pos")) != "NN" {
				t.Fatal("child a with feature pos expected")
			}
			if len(ga.Edges()) != 1 || ga.Edges()[0].NodeB() != got {
				t.Error("edge to root expected")
			}
		})
	}
}

func TestImportErrors(t *testing.T) {
	if _, err := Import("tree.yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown extension error = %v, want INVALID_FORMAT", err)
	}
	missing := filepath.Join(t.TempDir(), "missing.json")
	if _, err := Import(missing); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"A.JSON", FormatJSON, false},
		{"dir/a.toml", FormatTOML, false},
		{"a.yaml", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFor(%q) = %v, %v, want %v, err=%v", tt.path, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestImportExamples(t *testing.T) {
	tests := []struct {
		file  string
		size  int
		edges int
	}{
		{"sentence.json", 6, 2},
		{"family.toml", 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			root, err := Import(filepath.Join("..", "..", "examples", tt.file))
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if root.Size() != tt.size {
				t.Errorf("Size = %d, want %d", root.Size(), tt.size)
			}
			doc, err := flatten(root)
			if err != nil {
				t.Fatalf("flatten: %v", err)
			}
			if len(doc.Edges) != tt.edges {
				t.Errorf("edges = %d, want %d", len(doc.Edges), tt.edges)
			}
		})
	}
}
