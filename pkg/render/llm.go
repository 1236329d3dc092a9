package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/stylish/pkg/report"
)

// LLM renders reports as terse plain text for AI consumption: zero ANSI
// codes, one diagnostic per line, input order preserved.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats files as a SCOPE line followed by one group per file.
func (l *LLM) Render(files report.Files) string {
	tally := report.Count(files)

	var sb strings.Builder
	sb.WriteString("SCOPE: " + llmScope(files, tally) + "\n")

	for _, f := range files {
		if len(f.Entries) == 0 {
			continue
		}
		sb.WriteString("\n## " + f.Path + "\n")
		for _, e := range f.Entries {
			level := "ERR"
			if e.Severity == report.SeverityWarning {
				level = "WARN"
			}
			rule := e.Linter
			if rule == "" {
				rule = "-"
			}
			reason := strings.Join(strings.Fields(e.Reason), " ")
			fmt.Fprintf(&sb, "  %s %s:%d:%d %s\n", level, rule, e.Line, e.Column, reason)
		}
	}
	return sb.String()
}

func llmScope(files report.Files, t report.Tally) string {
	if t.Problems == 0 {
		return fmt.Sprintf("PASS %d files, 0 problems", len(files))
	}
	status := "WARN"
	if t.Errors > 0 {
		status = "FAIL"
	}
	affected := 0
	for _, f := range files {
		if len(f.Entries) > 0 {
			affected++
		}
	}
	return fmt.Sprintf("%s %d/%d files, %d %s (%d err, %d warn)",
		status, affected, len(files), t.Problems, plural(t.Problems, "problem"), t.Errors, t.Warnings)
}
