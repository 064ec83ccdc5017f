package io

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/birch/pkg/errors"
	"github.com/matzehuels/birch/pkg/tree"
)

// ReadJSON decodes a JSON tree document from r.
//
// The returned tree is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.Tree, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return build(doc)
}

// WriteJSON encodes t and the edges registered below it as an indented JSON
// document. The output can be read back with [ReadJSON].
func WriteJSON(t *tree.Tree, w io.Writer) error {
	doc, err := flatten(t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeUnsupported, err, "encode json")
	}
	return nil
}
