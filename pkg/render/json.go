package render

import (
	"encoding/json"

	"github.com/dkoosis/stylish/pkg/report"
)

// JSON renders the normalized report as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string        `json:"version"`
	Files   []report.File `json:"files"`
	Summary report.Tally  `json:"summary"`
}

// Render formats files and their tally as indented JSON.
func (j *JSON) Render(files report.Files) string {
	out := jsonOutput{
		Version: "1.0",
		Files:   make([]report.File, 0, len(files)),
		Summary: report.Count(files),
	}
	for _, f := range files {
		if f.Entries == nil {
			f.Entries = []report.Entry{}
		}
		out.Files = append(out.Files, f)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
