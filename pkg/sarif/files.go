package sarif

import "github.com/dkoosis/stylish/pkg/report"

// unknownFile groups results that carry no location.
const unknownFile = "unknown"

// ToFiles converts every result into a report entry, grouped by the URI of
// its first location in first-seen order.
func ToFiles(doc *Document) report.Files {
	b := report.NewBuilder()
	for _, run := range doc.Runs {
		for _, result := range run.Results {
			path := unknownFile
			var region Region
			if len(result.Locations) > 0 {
				loc := result.Locations[0].PhysicalLocation
				path = loc.ArtifactLocation.URI
				region = loc.Region
			}
			b.Add(path, report.Entry{
				Line:     region.StartLine,
				Column:   region.StartColumn,
				Reason:   result.Message.Text,
				Severity: severity(result.Level),
				Linter:   result.RuleID,
			})
		}
	}
	return b.Files()
}

// severity maps a SARIF level. Only "error" blocks; note, none and the
// implicit default are advisory.
func severity(level string) report.Severity {
	if level == "error" {
		return report.SeverityError
	}
	return report.SeverityWarning
}
