// Package report decodes linter error reports: an ordered mapping of file
// paths to the problems found in each file.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInputParse is returned when the report payload is not valid JSON or
// does not have the expected shape.
var ErrInputParse = errors.New("invalid report input")

// File groups the entries reported against one path.
type File struct {
	Path    string  `json:"path"`
	Entries []Entry `json:"entries"`
}

// Files is the decoded report in input order.
type Files []File

// Tally counts problems by severity. Each entry counts once.
type Tally struct {
	Problems int `json:"problems"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Add records one entry of the given severity.
func (t *Tally) Add(s Severity) {
	t.Problems++
	if s == SeverityWarning {
		t.Warnings++
		return
	}
	t.Errors++
}

// Count tallies every entry in files.
func Count(files Files) Tally {
	var t Tally
	for _, f := range files {
		for _, e := range f.Entries {
			t.Add(e.Severity)
		}
	}
	return t
}

// Read decodes a report from r.
func Read(r io.Reader) (Files, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return Decode(data)
}

// Decode parses a JSON object of path -> entries, keeping key order. A
// repeated path keeps its first position and its last value.
func Decode(data []byte) (Files, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputParse, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expected an object mapping file paths to entries", ErrInputParse)
	}

	var files Files
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputParse, err)
		}
		path, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputParse, err)
		}
		entries, err := decodeEntries(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: file %q: %w", ErrInputParse, path, err)
		}

		if i, seen := index[path]; seen {
			files[i].Entries = entries
			continue
		}
		index[path] = len(files)
		files = append(files, File{Path: path, Entries: entries})
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after report object", ErrInputParse)
	}
	return files, nil
}

func decodeEntries(raw json.RawMessage) ([]Entry, error) {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("expected an array of entries")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		e, err := decodeEntry(item)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
