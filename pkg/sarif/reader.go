package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidDocument is returned for input that is not a usable SARIF document.
var ErrInvalidDocument = errors.New("invalid sarif document")

// ReadFile parses a SARIF file from disk.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path) // #nosec G304 - caller-supplied report path
	if err != nil {
		return nil, fmt.Errorf("open sarif file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses SARIF from an io.Reader.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sarif: %w", err)
	}
	return ReadBytes(data)
}

// ReadBytes parses a single SARIF document. Trailing whitespace is allowed,
// any other trailing data is not.
func ReadBytes(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidDocument)
	}

	if doc.Version == "" {
		return nil, fmt.Errorf("%w: missing sarif version", ErrInvalidDocument)
	}

	return &doc, nil
}
