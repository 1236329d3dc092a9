package sarif

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalSARIF is the smallest document ReadBytes accepts.
const minimalSARIF = `{"version":"2.1.0","runs":[{"tool":{"driver":{"name":"test"}},"results":[]}]}`

func TestRead_Accepts(t *testing.T) {
	t.Parallel()

	for name, input := range map[string]string{
		"minimal":             minimalSARIF,
		"trailing whitespace": minimalSARIF + "   \n\t\n  ",
		"leading whitespace":  "\n  " + minimalSARIF,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc, err := Read(strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, "2.1.0", doc.Version)
			require.Len(t, doc.Runs, 1)
			assert.Equal(t, "test", doc.Runs[0].Tool.Driver.Name)
		})
	}
}

func TestReadBytes_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "trailing text", input: minimalSARIF + "garbage", wantMsg: "trailing data"},
		{name: "second document", input: minimalSARIF + `{"extra":"object"}`, wantMsg: "trailing data"},
		{name: "not json", input: "not json", wantMsg: "decode"},
		{name: "missing version", input: `{"runs":[]}`, wantMsg: "missing sarif version"},
		{name: "empty", input: "", wantMsg: "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadBytes([]byte(tt.input))
			require.ErrorIs(t, err, ErrInvalidDocument)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lint.sarif")
	require.NoError(t, os.WriteFile(path, []byte(minimalSARIF), 0o600))

	doc, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", doc.Version)

	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.sarif"))
	assert.Error(t, err)
}
