package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoosis/stylish/pkg/report"
	"github.com/dkoosis/stylish/pkg/sarif"
)

// newWrapCmd converts line diagnostics (file:line:col: message) on stdin
// into the report JSON the root command reads.
func newWrapCmd() *cobra.Command {
	var (
		linter, severity string
		asSARIF          bool
	)

	cmd := &cobra.Command{
		Use:   "wrap",
		Short: "Convert file:line:col diagnostics on stdin to report JSON",
		Long: `wrap reads compiler-style diagnostics, one per line, and writes a
report JSON object suitable for piping back into stylish.

Recognized lines:
  file.go:12:5: message
  file.go:12: message
  path/to/file.go          (file only, e.g. gofmt -l)

Other lines are dropped. With --sarif the output is a SARIF 2.1.0
document whose tool name is the --linter value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWrap(cmd, linter, report.ParseSeverity(severity), asSARIF)
		},
	}

	cmd.Flags().StringVar(&linter, "linter", "", "Linter name recorded on every entry")
	cmd.Flags().StringVar(&severity, "severity", report.SeverityError.String(), "Entry severity: error|warning")
	cmd.Flags().BoolVar(&asSARIF, "sarif", false, "Write SARIF 2.1.0 instead of report JSON")
	return cmd
}

func runWrap(cmd *cobra.Command, linter string, severity report.Severity, asSARIF bool) error {
	b := report.NewBuilder()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		file, ln, col, msg := parseDiagLine(line)
		if file == "" {
			continue
		}
		b.Add(file, report.Entry{Line: ln, Column: col, Reason: msg, Severity: severity, Linter: linter})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("wrap: reading stdin: %w", err)
	}

	var out io.WriterTo = b
	if asSARIF {
		tool := linter
		if tool == "" {
			tool = "stylish"
		}
		out = sarif.NewBuilder(tool, "").AddFiles(b.Files())
	}
	if _, err := out.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("wrap: writing output: %w", err)
	}
	return nil
}

// parseDiagLine parses diagnostic formats:
//  1. file:line:col: message
//  2. file:line: message
//  3. path/to/file.go  (file-only, e.g., gofmt -l)
//
// Handles Windows drive-letter prefixes (e.g. C:\path\file.go:10:5: msg).
func parseDiagLine(line string) (file string, ln, col int, msg string) {
	rest := line
	var prefix string

	if len(rest) >= 3 && rest[1] == ':' && (rest[2] == '\\' || rest[2] == '/') {
		prefix = rest[:2]
		rest = rest[2:]
	}

	parts := strings.SplitN(rest, ":", 4)
	if len(parts) >= 4 {
		var l, c int
		if _, err := fmt.Sscanf(parts[1], "%d", &l); err == nil {
			if _, err := fmt.Sscanf(parts[2], "%d", &c); err == nil {
				return prefix + parts[0], l, c, strings.TrimSpace(parts[3])
			}
		}
	}

	if len(parts) >= 3 {
		var l int
		if _, err := fmt.Sscanf(parts[1], "%d", &l); err == nil {
			return prefix + parts[0], l, 0, strings.TrimSpace(strings.Join(parts[2:], ":"))
		}
	}

	trimmed := strings.TrimSpace(line)
	if strings.HasSuffix(trimmed, ".go") || strings.Contains(trimmed, "/") {
		if !strings.Contains(trimmed, " ") {
			return trimmed, 0, 0, "needs formatting"
		}
	}

	return "", 0, 0, ""
}
