package io

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/birch/pkg/errors"
	"github.com/matzehuels/birch/pkg/tree"
)

// Format names a document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor picks the document format from a file extension.
// Unknown extensions fail with INVALID_FORMAT.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported document extension %q (want .json or .toml)", filepath.Ext(path))
}

// Read decodes a document in the given format.
func Read(r io.Reader, f Format) (*tree.Tree, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
}

// Write encodes t in the given format.
func Write(t *tree.Tree, w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(t, w)
	case FormatTOML:
		return WriteTOML(t, w)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
}

// Import reads a document from path, choosing the format by extension.
func Import(path string) (*tree.Tree, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, format)
}

// Export writes t to path, choosing the format by extension.
func Export(t *tree.Tree, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	return writeClose(t, f, format, path)
}

// writeClose writes t to wc and closes it. A failed close is reported even
// when the write succeeded, since buffered data may not have reached disk.
func writeClose(t *tree.Tree, wc io.WriteCloser, f Format, path string) error {
	if err := Write(t, wc, f); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "close %s", path)
	}
	return nil
}
