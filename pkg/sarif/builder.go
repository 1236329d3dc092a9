package sarif

import (
	"encoding/json"
	"io"

	"github.com/dkoosis/stylish/pkg/report"
)

const (
	schemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json"

	// defaultRule names results whose entry carries no linter.
	defaultRule = "finding"
)

// Builder assembles a single-run SARIF 2.1.0 document from report entries.
// It is the inverse of ToFiles, used by stylish wrap --sarif.
type Builder struct {
	doc Document
}

// NewBuilder creates a SARIF builder for the given tool.
func NewBuilder(toolName, toolVersion string) *Builder {
	return &Builder{doc: Document{
		Version: "2.1.0",
		Schema:  schemaURI,
		Runs: []Run{{
			Tool:    Tool{Driver: Driver{Name: toolName, Version: toolVersion}},
			Results: []Result{},
		}},
	}}
}

// Add records e as a result located in path.
func (b *Builder) Add(path string, e report.Entry) *Builder {
	rule := e.Linter
	if rule == "" {
		rule = defaultRule
	}
	r := Result{
		RuleID:  rule,
		Level:   e.Severity.String(),
		Message: Message{Text: e.Reason},
	}
	if path != "" {
		r.Locations = []Location{{
			PhysicalLocation: PhysicalLocation{
				ArtifactLocation: ArtifactLocation{URI: path},
				Region:           Region{StartLine: e.Line, StartColumn: e.Column},
			},
		}}
	}
	b.doc.Runs[0].Results = append(b.doc.Runs[0].Results, r)
	return b
}

// AddFiles records every entry of files in order.
func (b *Builder) AddFiles(files report.Files) *Builder {
	for _, f := range files {
		for _, e := range f.Entries {
			b.Add(f.Path, e)
		}
	}
	return b
}

// Document returns the constructed SARIF document.
func (b *Builder) Document() *Document {
	return &b.doc
}

// WriteTo writes the SARIF document as indented JSON to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(b.doc, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
