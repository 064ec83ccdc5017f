package io

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/birch/pkg/errors"
	"github.com/matzehuels/birch/pkg/tree"
)

// ReadTOML decodes a TOML tree document from r. The layout mirrors the JSON
// document with a [root] table, nested [[root.children]] arrays and [[edges]].
func ReadTOML(r io.Reader) (*tree.Tree, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	return build(doc)
}

// WriteTOML encodes t as a TOML document. TOML has no null, so nil values and
// nil features cannot be written.
func WriteTOML(t *tree.Tree, w io.Writer) error {
	doc, err := flatten(t)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeUnsupported, err, "encode toml")
	}
	return nil
}
