package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_ConvertsLineDiagnostics(t *testing.T) {
	input := "main.go:12:5: undefined: foo\nsome noise line\n\nmain.go:20: unused variable x\nC:\\src\\util.go:3:1: bad import\n"

	res := invoke(t, "", false, input, "wrap", "--linter", "govet")

	require.Equal(t, 0, res.code, res.stderr)
	want := "{\n" +
		`  "main.go": [{"line":12,"column":5,"reason":"undefined: foo","severity":"error","linter":"govet"},` +
		`{"line":20,"column":0,"reason":"unused variable x","severity":"error","linter":"govet"}],` + "\n" +
		`  "C:\\src\\util.go": [{"line":3,"column":1,"reason":"bad import","severity":"error","linter":"govet"}]` + "\n" +
		"}\n"
	assert.Equal(t, want, res.stdout)
}

func TestWrap_SeverityFlag(t *testing.T) {
	res := invoke(t, "", false, "a.go:1:2: shadowed\n", "wrap", "--severity", "warning")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"severity":"warning"`)
	assert.Contains(t, res.stdout, `"linter":""`)
}

func TestWrap_EmptyInputWritesEmptyObject(t *testing.T) {
	res := invoke(t, "", false, "nothing useful here\n", "wrap")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "{}\n", res.stdout)
}

func TestWrap_OutputFeedsRoot(t *testing.T) {
	wrapped := invoke(t, "", false, "pkg/a.go:4:2: ineffectual assignment\n", "wrap", "--linter", "ineffassign")
	require.Equal(t, 0, wrapped.code, wrapped.stderr)

	res := invoke(t, "", false, wrapped.stdout, "--color", "never")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "\npkg/a.go\n4:2  error  ineffectual assignment  ineffassign\n\n✖ 1 problem (1 error, 0 warnings)\n\n", res.stdout)
}

func TestParseDiagLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		wantFile string
		wantLine int
		wantCol  int
		wantMsg  string
	}{
		{"main.go:12:5: undefined: foo", "main.go", 12, 5, "undefined: foo"},
		{"main.go:12: something wrong", "main.go", 12, 0, "something wrong"},
		{"pkg/util/helper.go", "pkg/util/helper.go", 0, 0, "needs formatting"},
		{`C:\Users\dev\main.go:10:5: unused variable`, `C:\Users\dev\main.go`, 10, 5, "unused variable"},
		{"C:/Users/dev/main.go:10: error here", "C:/Users/dev/main.go", 10, 0, "error here"},
		{"not a diagnostic line", "", 0, 0, ""},
		{"", "", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			file, ln, col, msg := parseDiagLine(tt.line)
			assert.Equal(t, tt.wantFile, file)
			assert.Equal(t, tt.wantLine, ln)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestWrap_SARIFOutputFeedsRoot(t *testing.T) {
	wrapped := invoke(t, "", false, "x.go:7:3: Error return value is not checked\n", "wrap", "--sarif", "--linter", "errcheck")
	require.Equal(t, 0, wrapped.code, wrapped.stderr)
	assert.Contains(t, wrapped.stdout, `"version": "2.1.0"`)
	assert.Contains(t, wrapped.stdout, `"name": "errcheck"`)

	res := invoke(t, "", false, wrapped.stdout, "--color", "never", "--debug")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, "detected sarif")
	assert.Equal(t, "\nx.go\n7:3  error  Error return value is not checked  errcheck\n\n✖ 1 problem (1 error, 0 warnings)\n\n", res.stdout)
}
