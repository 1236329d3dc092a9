// Package detect sniffs input to determine the report format.
package detect

import (
	"bytes"
	"encoding/json"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown    Format = iota
	ErrorFiles        // JSON object of file path -> entries
	SARIF             // SARIF 2.1.0 JSON document
)

// String returns the format name used in diagnostics.
func (f Format) String() string {
	switch f {
	case ErrorFiles:
		return "error-files"
	case SARIF:
		return "sarif"
	default:
		return "unknown"
	}
}

// Sniff examines input to determine its format. Anything that is not a
// JSON object is Unknown; the report decoder produces the parse error.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 || data[0] != '{' {
		return Unknown
	}

	if isSARIF(data) {
		return SARIF
	}
	if json.Valid(data) {
		return ErrorFiles
	}
	return Unknown
}

// isSARIF looks for a top-level "version" string alongside a "runs" array.
// A report that happens to name a file "version" has an array there, not a
// string, so it fails the probe.
func isSARIF(data []byte) bool {
	var probe struct {
		Version string            `json:"version"`
		Runs    []json.RawMessage `json:"runs"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Version != "" && probe.Runs != nil
}
