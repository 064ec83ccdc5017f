package cli

import (
	"os"
	"path/filepath"
	"testing"

	birchio "github.com/matzehuels/birch/pkg/io"
	"github.com/matzehuels/birch/pkg/tree"
)

// sampleDoc is a small tree with one cross-link:
//
//	root
//	├── a
//	│   ├── c
//	│   └── d
//	└── b
const sampleDoc = `{
  "root": {
    "id": "root",
    "value": "R",
    "children": [
      {"id": "a", "value": "A", "features": {"pos": "NP"}, "children": [
        {"id": "c", "value": "C"},
        {"id": "d", "value": "D"}
      ]},
      {"id": "b", "value": "B"}
    ]
  },
  "edges": [
    {"from": "b", "to": "c", "directed": true}
  ]
}`

// writeDoc writes content to name in a fresh temp dir and returns the path.
func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func sampleTree(t *testing.T) *tree.Tree {
	t.Helper()
	root, err := birchio.Import(writeDoc(t, "sample.json", sampleDoc))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	return root
}
