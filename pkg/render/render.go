// Package render formats decoded linter reports for terminals and tools.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/stylish/pkg/report"
)

// Renderer converts a report to formatted output.
type Renderer interface {
	Render(files report.Files) string
}

// Format resolves the palette for dir once, then renders files in the
// stylish layout. A malformed override file fails the whole call.
func Format(dir string, files report.Files, opts Options, r *lipgloss.Renderer) (string, error) {
	palette, err := LoadPalette(dir)
	if err != nil {
		return "", err
	}
	return NewStylish(palette.Theme(r), opts).Render(files), nil
}
