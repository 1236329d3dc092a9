package report

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Severity classifies a problem as blocking or advisory.
type Severity int

const (
	SeverityError   Severity = iota // default for any unrecognized value
	SeverityWarning                 // only the exact string "warning"
)

// ParseSeverity maps a raw severity string to a Severity. Anything other than
// "warning" is an error, so unknown levels from upstream tools stay visible.
func ParseSeverity(s string) Severity {
	if s == "warning" {
		return SeverityWarning
	}
	return SeverityError
}

// String returns the label used in rendered rows.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// MarshalJSON encodes the severity as its label.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Entry is one normalized problem reported against a file.
type Entry struct {
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Reason   string   `json:"reason"`
	Severity Severity `json:"severity"`
	Linter   string   `json:"linter"`
}

// Location returns the "line:column" cell text.
func (e Entry) Location() string {
	return strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column)
}

// FromString builds an Entry from a bare reason string.
func FromString(reason string) Entry {
	return Entry{Reason: reason}
}

// FromRecord normalizes a loosely-typed record. The reason comes from
// Reason when non-empty, otherwise from Message.
func FromRecord(r Record) Entry {
	reason := r.Reason
	if reason == "" {
		reason = r.Message
	}
	return Entry{
		Line:     r.Line,
		Column:   r.Column,
		Reason:   reason,
		Severity: ParseSeverity(r.Severity),
		Linter:   r.Linter,
	}
}

// Record mirrors the JSON object emitted by upstream linters. Every field is
// optional and fields of an unexpected type decode to their zero value.
type Record struct {
	Line     int
	Column   int
	Reason   string
	Message  string
	Severity string
	Linter   string
}

// UnmarshalJSON decodes a record without rejecting partial or odd input.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = Record{
		Line:     looseInt(fields["line"]),
		Column:   looseInt(fields["column"]),
		Reason:   looseString(fields["reason"]),
		Message:  looseString(fields["message"]),
		Severity: looseString(fields["severity"]),
		Linter:   looseString(fields["linter"]),
	}
	return nil
}

// decodeEntry accepts a bare string, an object, or anything else (which
// yields an all-default entry).
func decodeEntry(raw json.RawMessage) (Entry, error) {
	trimmed := strings.TrimSpace(string(raw))
	switch {
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Entry{}, err
		}
		return FromString(s), nil
	case strings.HasPrefix(trimmed, "{"):
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return Entry{}, err
		}
		return FromRecord(rec), nil
	default:
		return Entry{}, nil
	}
}

func looseInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return 0
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
