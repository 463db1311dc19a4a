package validator

import (
	"path/filepath"
)

// Outcome summarizes a whole run.
type Outcome string

const (
	// OutcomePassed means no file had errors or warnings.
	OutcomePassed Outcome = "passed"
	// OutcomePassedWithWarnings means no file had errors but some had warnings.
	OutcomePassedWithWarnings Outcome = "passed_with_warnings"
	// OutcomeFailed means at least one file had an error.
	OutcomeFailed Outcome = "failed"
)

// FileReport is the validation record for one discovered file.
type FileReport struct {
	// File is the base name shown in the summary table.
	File string `json:"file"`
	// Path is the path the file was validated at.
	Path     string   `json:"path"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	// Issues holds every error and warning in the order found, with the
	// key each one concerns.
	Issues []Issue `json:"issues"`
}

// Valid reports whether the file has no errors.
func (f FileReport) Valid() bool {
	return len(f.Errors) == 0
}

// Clean reports whether the file has neither errors nor warnings.
func (f FileReport) Clean() bool {
	return len(f.Errors) == 0 && len(f.Warnings) == 0
}

// Report aggregates file reports in validation order. Use Add to keep the
// totals consistent with Files.
type Report struct {
	Files         []FileReport `json:"files"`
	TotalErrors   int          `json:"total_errors"`
	TotalWarnings int          `json:"total_warnings"`
	Outcome       Outcome      `json:"outcome"`
}

// NewReport returns an empty report whose outcome is OutcomePassed.
func NewReport() *Report {
	return &Report{Files: []FileReport{}, Outcome: OutcomePassed}
}

// Add appends the result for path and returns the new file record.
func (r *Report) Add(path string, result *Result) FileReport {
	fr := FileReport{
		File:     filepath.Base(path),
		Path:     path,
		Errors:   result.ErrorMessages(),
		Warnings: result.WarningMessages(),
		Issues:   []Issue{},
	}
	if result != nil {
		fr.Issues = append(fr.Issues, result.Issues...)
	}
	r.Files = append(r.Files, fr)
	r.TotalErrors += len(fr.Errors)
	r.TotalWarnings += len(fr.Warnings)

	switch {
	case r.TotalErrors > 0:
		r.Outcome = OutcomeFailed
	case r.TotalWarnings > 0:
		r.Outcome = OutcomePassedWithWarnings
	default:
		r.Outcome = OutcomePassed
	}
	return fr
}

// Failed reports whether any file had an error.
func (r *Report) Failed() bool {
	return r.TotalErrors > 0
}
