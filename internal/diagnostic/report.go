package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"

	sarif "github.com/owenrumney/go-sarif/v2/sarif"
)

// WriteText renders report as one line per finding.
func WriteText(w io.Writer, report *Report) error {
	if !report.HasFindings() {
		_, err := fmt.Fprintln(w, "no findings")
		return err
	}
	for _, f := range report.Findings {
		var err error
		if f.Index >= 0 {
			_, err = fmt.Fprintf(w, "[%s] item %d: %s\n", f.Rule, f.Index, f.Message)
		} else {
			_, err = fmt.Fprintf(w, "[%s] %s\n", f.Rule, f.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSARIF renders report as a SARIF 2.1.0 log, one rule per distinct
// Rule and one result per Finding, so CI systems that already consume SARIF
// output can consume lint output the same way.
func WriteSARIF(w io.Writer, report *Report) error {
	log, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}
	run := sarif.NewRunWithInformationURI("flowcore-lint", "https://github.com/redex-go/flowcore")

	seen := map[Rule]bool{}
	for _, f := range report.Findings {
		if !seen[f.Rule] {
			seen[f.Rule] = true
			run.AddRule(string(f.Rule)).
				WithDescription(string(f.Rule)).
				WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel("error"))
		}
	}

	for _, f := range report.Findings {
		result := run.CreateResultForRule(string(f.Rule)).
			WithMessage(sarif.NewTextMessage(f.Message))
		if f.Index >= 0 {
			location := sarif.NewLocation().WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri("fixture")).
					WithRegion(sarif.NewRegion().WithStartLine(f.Index + 1)),
			)
			result.AddLocation(location)
		}
	}

	log.AddRun(run)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(log)
}
