package checks

import (
	"fmt"

	"github.com/spf13/afero"
)

// Violation is an asset that exists on disk but is not referenced by the source file.
type Violation struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// String renders the violation as the CI diagnostic line.
func (v Violation) String() string {
	return fmt.Sprintf("%s %s missing from %s", v.Kind, v.Name, v.Source)
}

// Report is the outcome of a single check.
type Report struct {
	// Source is the base name of the checked source file.
	Source string `json:"source"`
	// Checked counts the assets examined per category kind.
	Checked map[string]int `json:"checked"`
	// Violations lists missing assets, category by category, each sorted by name.
	Violations []Violation `json:"violations"`
}

// OK reports whether every asset is referenced.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Lines returns one diagnostic line per violation.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		lines = append(lines, v.String())
	}
	return lines
}

// Run reads the source file once, then checks every category of the layout.
// Only a failure to read the source file (or to list a directory that
// exists) is returned as an error; missing assets are reported as violations.
func Run(fs afero.Fs, layout Layout) (*Report, error) {
	lines, err := LoadCandidateLines(fs, layout.Source, layout.Markers())
	if err != nil {
		return nil, err
	}

	report := &Report{
		Source:     layout.SourceName(),
		Checked:    make(map[string]int, len(layout.Categories)),
		Violations: []Violation{},
	}

	for _, c := range layout.Categories {
		missing, checked, err := CheckCategory(fs, lines, c)
		if err != nil {
			return nil, err
		}
		report.Checked[c.Kind] += checked
		for _, name := range missing {
			report.Violations = append(report.Violations, Violation{
				Kind:   c.Kind,
				Name:   name,
				Source: report.Source,
			})
		}
	}

	return report, nil
}
