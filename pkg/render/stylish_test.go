package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/stylish/pkg/report"
)

func plainStylish(opts Options) *Stylish {
	return NewStylish(DefaultPalette().Theme(newRenderer(termenv.Ascii)), opts)
}

func cellTexts(row Row) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.Text
	}
	return out
}

func TestStylish_Rows_SingleLine(t *testing.T) {
	t.Parallel()

	s := plainStylish(DefaultOptions())
	rows := s.Rows(report.Entry{Line: 1, Column: 5, Reason: "missing semicolon", Linter: "semi"})

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"1:5", "error", "missing semicolon", "semi"}, cellTexts(rows[0]))
	assert.Equal(t, RoleMeta, rows[0][0].Role)
	assert.Equal(t, RoleError, rows[0][1].Role)
	assert.Equal(t, RoleReason, rows[0][2].Role)
	assert.Equal(t, RoleLinter, rows[0][3].Role)
}

func TestStylish_Rows_WarningUsesWarningRole(t *testing.T) {
	t.Parallel()

	s := plainStylish(DefaultOptions())
	rows := s.Rows(report.Entry{Severity: report.SeverityWarning, Reason: "unused"})

	require.Len(t, rows, 1)
	assert.Equal(t, "warning", rows[0][1].Text)
	assert.Equal(t, RoleWarning, rows[0][1].Role)
}

func TestStylish_Rows_WrappedReasonContinuations(t *testing.T) {
	t.Parallel()

	s := plainStylish(Options{Verbose: true, Wrap: 20})
	rows := s.Rows(report.Entry{
		Line:   3,
		Column: 7,
		Reason: "the quick brown fox jumps over the lazy dog",
		Linter: "style",
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"3:7", "error", "the quick brown fox", "style"}, cellTexts(rows[0]))
	assert.Equal(t, []string{" ", " ", "jumps over the lazy", " "}, cellTexts(rows[1]))
	assert.Equal(t, []string{" ", " ", "dog", " "}, cellTexts(rows[2]))

	for _, row := range rows[1:] {
		assert.True(t, row[0].Placeholder)
		assert.True(t, row[1].Placeholder)
		assert.False(t, row[2].Placeholder)
		assert.True(t, row[3].Placeholder)
	}
}

func TestStylish_Rows_LongWordKeepsOwnLine(t *testing.T) {
	t.Parallel()

	s := plainStylish(Options{Verbose: true, Wrap: 5})
	rows := s.Rows(report.Entry{Reason: "aa bbbbbbbbbb cc"})

	reasons := make([]string, 0, len(rows))
	for _, row := range rows {
		reasons = append(reasons, row[2].Text)
	}
	assert.Equal(t, []string{"aa", "bbbbbbbbbb", "cc"}, reasons)
}

func TestStylish_Rows_WrapNeverSplitsWords(t *testing.T) {
	t.Parallel()

	const width = 12
	reason := "expected indentation of four spaces but found two in this block"
	s := plainStylish(Options{Verbose: true, Wrap: width})

	var words []string
	for _, row := range s.Rows(report.Entry{Reason: reason}) {
		line := row[2].Text
		assert.LessOrEqual(t, len(line), width, "line %q exceeds width", line)
		words = append(words, strings.Fields(line)...)
	}
	assert.Equal(t, strings.Fields(reason), words)
}

func TestStylish_Rows_ShortReasonIsUnchanged(t *testing.T) {
	t.Parallel()

	s := plainStylish(DefaultOptions())
	rows := s.Rows(report.Entry{Reason: "short reason"})

	require.Len(t, rows, 1)
	assert.Equal(t, "short reason", rows[0][2].Text)
}

func TestStylish_Rows_WrapDisabled(t *testing.T) {
	t.Parallel()

	reason := strings.Repeat("word ", 40)
	s := plainStylish(Options{Verbose: true, Wrap: 0})
	rows := s.Rows(report.Entry{Reason: reason})

	require.Len(t, rows, 1)
	assert.Equal(t, reason, rows[0][2].Text)
}

func TestStylish_Rows_TerseOmitsReason(t *testing.T) {
	t.Parallel()

	s := plainStylish(Options{Verbose: false, Wrap: 10})
	rows := s.Rows(report.Entry{Line: 2, Column: 1, Reason: "a reason that would otherwise wrap", Linter: "lint"})

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"2:1", "error", "lint"}, cellTexts(rows[0]))
}

func TestStylish_Render_AlignsColumns(t *testing.T) {
	t.Parallel()

	files := report.Files{{Path: "a.js", Entries: []report.Entry{
		{Line: 1, Column: 5, Reason: "short", Linter: "x"},
		{Line: 120, Column: 14, Severity: report.SeverityWarning, Reason: "longer reason text", Linter: "yy"},
		{Line: 9, Column: 1, Reason: "the quick brown fox jumps over the lazy dog", Linter: "z"},
	}}}
	out := plainStylish(Options{Verbose: true, Wrap: 20}).Render(files)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	table := lines[2:7]

	assert.Equal(t, "   1:5  error    short                x", table[0])
	assert.Equal(t, "120:14  warning  longer reason text   yy", table[1])
	assert.Equal(t, "   9:1  error    the quick brown fox  z", table[2])
	assert.Equal(t, "                 jumps over the lazy", table[3])
	assert.Equal(t, "                 dog", table[4])
}

func TestStylish_Render_ColorDoesNotAffectAlignment(t *testing.T) {
	t.Parallel()

	files := report.Files{
		{Path: "src/app.js", Entries: []report.Entry{
			{Line: 1, Column: 5, Reason: "missing semicolon", Linter: "semi"},
			{Line: 1204, Column: 33, Severity: report.SeverityWarning, Reason: "unexpected console statement in production code path", Linter: "no-console"},
		}},
		{Path: "src/b.js", Entries: []report.Entry{{Reason: "bare"}}},
	}
	opts := Options{Verbose: true, Wrap: 24}

	plain := NewStylish(DefaultPalette().Theme(newRenderer(termenv.Ascii)), opts).Render(files)
	colored := NewStylish(DefaultPalette().Theme(newRenderer(termenv.ANSI)), opts).Render(files)

	require.NotEqual(t, plain, colored)
	assert.Equal(t, plain, ansi.Strip(colored))
}

func TestStylish_Render_CountsEntriesNotLines(t *testing.T) {
	t.Parallel()

	files := report.Files{{Path: "a.js", Entries: []report.Entry{
		{Reason: strings.Repeat("wrapped words ", 30)},
	}}}
	out := plainStylish(DefaultOptions()).Render(files)
	assert.True(t, strings.HasSuffix(out, "✖ 1 problem (1 error, 0 warnings)\n"), out)
}

func TestStylish_Render_Summary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []report.Entry
		want    string
	}{
		{
			name: "no entries",
			want: "✔ No problems",
		},
		{
			name:    "one error",
			entries: []report.Entry{{}},
			want:    "✖ 1 problem (1 error, 0 warnings)",
		},
		{
			name:    "one warning",
			entries: []report.Entry{{Severity: report.SeverityWarning}},
			want:    "✖ 1 problem (0 errors, 1 warning)",
		},
		{
			name:    "mixed",
			entries: []report.Entry{{}, {Severity: report.SeverityWarning}},
			want:    "✖ 2 problems (1 error, 1 warning)",
		},
		{
			name:    "two errors",
			entries: []report.Entry{{}, {}},
			want:    "✖ 2 problems (2 errors, 0 warnings)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := plainStylish(DefaultOptions()).Render(report.Files{{Path: "a.js", Entries: tt.entries}})
			assert.True(t, strings.HasSuffix(out, tt.want+"\n"), "got:\n%s", out)
		})
	}
}

func TestStylish_Render_NoFiles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\n✔ No problems\n", plainStylish(DefaultOptions()).Render(nil))
}

func TestStylish_Render_SummaryColor(t *testing.T) {
	t.Parallel()

	s := NewStylish(DefaultPalette().Theme(newRenderer(termenv.ANSI)), DefaultOptions())

	warnOnly := s.Render(report.Files{{Path: "a.js", Entries: []report.Entry{{Severity: report.SeverityWarning}}}})
	assert.Regexp(t, `\x1b\[[0-9;]*\b33m✖ 1 problem`, warnOnly)

	clean := s.Render(report.Files{{Path: "a.js"}})
	assert.Regexp(t, `\x1b\[[0-9;]*\b32m✔ No problems`, clean)
}

func TestStylish_Render_BlankLineBetweenFiles(t *testing.T) {
	t.Parallel()

	files := report.Files{
		{Path: "a.js", Entries: []report.Entry{{Line: 1, Column: 1, Reason: "one"}}},
		{Path: "b.js", Entries: []report.Entry{{Line: 2, Column: 2, Reason: "two"}}},
	}
	out := plainStylish(DefaultOptions()).Render(files)

	want := "\na.js\n1:1  error  one\n\nb.js\n2:2  error  two\n\n✖ 2 problems (2 errors, 0 warnings)\n"
	assert.Equal(t, want, out)
}
