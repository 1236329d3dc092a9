package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"

	"github.com/dkoosis/stylish/pkg/report"
)

// DefaultWrap is the reason column width used when wrapping is enabled
// without an explicit width.
const DefaultWrap = 80

const columnSep = "  "

// Options controls what the stylish renderer prints.
type Options struct {
	Verbose bool // print the reason column
	Wrap    int  // reason column width; <= 0 disables wrapping
}

// DefaultOptions returns verbose output wrapped at DefaultWrap.
func DefaultOptions() Options {
	return Options{Verbose: true, Wrap: DefaultWrap}
}

// Cell is one table cell. Placeholder cells on continuation rows are never
// colored.
type Cell struct {
	Text        string
	Role        Role
	Placeholder bool
}

// Row is one table line: location, severity, reason (verbose only), linter.
type Row []Cell

var placeholder = Cell{Text: " ", Placeholder: true}

// Stylish renders reports as per-file aligned tables followed by a summary.
type Stylish struct {
	theme Theme
	opts  Options
}

// NewStylish creates a stylish renderer.
func NewStylish(theme Theme, opts Options) *Stylish {
	return &Stylish{theme: theme, opts: opts}
}

// Render formats every file block and the summary line.
func (s *Stylish) Render(files report.Files) string {
	var sb strings.Builder
	var tally report.Tally
	for _, f := range files {
		sb.WriteString(s.renderFile(f, &tally))
	}
	sb.WriteString(s.renderSummary(tally))
	return "\n" + strings.TrimSpace(sb.String()) + "\n"
}

// Rows converts one entry into its table rows. A wrapped reason produces
// continuation rows that carry only the reason text.
func (s *Stylish) Rows(e report.Entry) []Row {
	label := RoleError
	if e.Severity == report.SeverityWarning {
		label = RoleWarning
	}

	lines := s.reasonLines(e.Reason)
	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		row := make(Row, 0, 4)
		if i == 0 {
			row = append(row,
				Cell{Text: e.Location(), Role: RoleMeta},
				Cell{Text: e.Severity.String(), Role: label},
			)
		} else {
			row = append(row, placeholder, placeholder)
		}
		if s.opts.Verbose {
			row = append(row, Cell{Text: line, Role: RoleReason})
		}
		if i == 0 {
			row = append(row, Cell{Text: e.Linter, Role: RoleLinter})
		} else {
			row = append(row, placeholder)
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Stylish) reasonLines(reason string) []string {
	if !s.opts.Verbose {
		return []string{""}
	}
	if s.opts.Wrap > 0 {
		reason = wordwrap.WrapString(reason, uint(s.opts.Wrap))
	}
	lines := strings.Split(reason, "\n")
	for i, l := range lines {
		// lipgloss expands tabs on render; expand first so widths agree.
		lines[i] = strings.ReplaceAll(strings.TrimRight(l, "\r"), "\t", "    ")
	}
	return lines
}

func (s *Stylish) renderFile(f report.File, tally *report.Tally) string {
	var rows []Row
	for _, e := range f.Entries {
		tally.Add(e.Severity)
		rows = append(rows, s.Rows(e)...)
	}
	return paint(s.theme.Path(), f.Path) + "\n" + s.renderTable(rows) + "\n\n"
}

// renderTable aligns rows on raw cell width: the location column is
// right-aligned, the rest left-aligned. Trailing blank cells are dropped.
func (s *Stylish) renderTable(rows []Row) string {
	var widths []int
	for _, row := range rows {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(c.Text))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		last := lastContentCell(row)
		for i := 0; i <= last; i++ {
			c := row[i]
			pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(c.Text))
			if i > 0 {
				sb.WriteString(columnSep)
			}
			if i == 0 {
				sb.WriteString(pad)
				sb.WriteString(s.paintCell(c))
				continue
			}
			sb.WriteString(s.paintCell(c))
			if i < last {
				sb.WriteString(pad)
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func lastContentCell(row Row) int {
	for i := len(row) - 1; i >= 0; i-- {
		if strings.TrimSpace(row[i].Text) != "" {
			return i
		}
	}
	return -1
}

func (s *Stylish) paintCell(c Cell) string {
	if c.Placeholder {
		return c.Text
	}
	return paint(s.theme.Style(c.Role), c.Text)
}

// paint leaves empty text unstyled so no bare escape sequences are emitted.
func paint(style lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return style.Render(text)
}

func (s *Stylish) renderSummary(t report.Tally) string {
	if t.Problems == 0 {
		return s.theme.Style(RoleNoProblem).Bold(true).Render("✔ No problems")
	}
	role := RoleWarning
	if t.Errors > 0 {
		role = RoleError
	}
	msg := fmt.Sprintf("✖ %d %s (%d %s, %d %s)",
		t.Problems, plural(t.Problems, "problem"),
		t.Errors, plural(t.Errors, "error"),
		t.Warnings, plural(t.Warnings, "warning"))
	return s.theme.Style(role).Bold(true).Render(msg)
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
