// stylish renders linter reports as aligned, colorized per-file tables.
//
// Usage:
//
//	eslint -f json . | stylish
//	golangci-lint run --output.sarif.path=stdout ./... | stylish
//	go vet ./... 2>&1 | stylish wrap --linter govet | stylish
//	stylish --json='{"foo.js": [{"line": 1, "column": 5, "reason": "missing semicolon"}]}'
//
// Accepts two input shapes:
//   - a JSON object of file path -> array of entries (or bare strings)
//   - SARIF 2.1.0
//
// Output formats:
//
//	stylish  aligned table per file plus a summary line (default)
//	llm      terse plain text for AI consumption
//	json     structured JSON for automation
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
