package report

import (
	"bytes"
	"encoding/json"
	"io"
)

// Builder accumulates entries per file, keeping files in first-seen order.
// Used by stylish wrap and the SARIF adapter.
type Builder struct {
	files Files
	index map[string]int
}

// NewBuilder creates an empty report builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Add appends e to the entries of path.
func (b *Builder) Add(path string, e Entry) *Builder {
	i, seen := b.index[path]
	if !seen {
		i = len(b.files)
		b.index[path] = i
		b.files = append(b.files, File{Path: path, Entries: []Entry{}})
	}
	b.files[i].Entries = append(b.files[i].Entries, e)
	return b
}

// Files returns the accumulated report.
func (b *Builder) Files() Files {
	return b.files
}

// WriteTo writes the report as a JSON object of path -> entries, in the
// order files were first added. The output decodes back with Decode.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, f := range b.files {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		key, err := json.Marshal(f.Path)
		if err != nil {
			return 0, err
		}
		entries, err := json.Marshal(f.Entries)
		if err != nil {
			return 0, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(entries)
	}
	if len(b.files) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
