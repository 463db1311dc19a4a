package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/agentlint/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText streams human-readable text while files are validated.
	FormatText Format = "text"
	// FormatJSON writes the complete Report as one JSON document at the end.
	FormatJSON Format = "json"
)

const rule = "============================================================"

// Reporter formats and writes validation progress and the final summary.
// In text mode every method writes immediately; in JSON mode only Summary
// and Fatal produce output.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

func (r *Reporter) text() bool {
	return r.format != FormatJSON
}

// Banner prints the program banner.
func (r *Reporter) Banner() {
	if !r.text() {
		return
	}
	fmt.Fprintln(r.out, "🤖 Custom Agent Configuration Validator")
	fmt.Fprintln(r.out, rule)
}

// Found prints how many files were discovered.
func (r *Reporter) Found(n int) {
	if !r.text() {
		return
	}
	fmt.Fprintf(r.out, "\nFound %d agent configuration file(s)\n", n)
}

// FileStart announces that path is being validated.
func (r *Reporter) FileStart(path string) {
	if !r.text() {
		return
	}
	fmt.Fprintf(r.out, "\n🔍 Validating: %s\n", path)
}

// FileDone prints the errors and warnings of one file.
func (r *Reporter) FileDone(fr FileReport) {
	if !r.text() {
		return
	}

	if len(fr.Errors) > 0 {
		fmt.Fprintln(r.out, color.RedString("   ❌ %d error(s)", len(fr.Errors)))
		r.printMessages(fr.Errors)
	}

	if len(fr.Warnings) > 0 {
		fmt.Fprintln(r.out, color.YellowString("   ⚠️  %d warning(s)", len(fr.Warnings)))
		r.printMessages(fr.Warnings)
	}

	if fr.Clean() {
		fmt.Fprintln(r.out, color.GreenString("   ✅ Valid"))
	}
}

func (r *Reporter) printMessages(msgs []string) {
	for _, m := range msgs {
		fmt.Fprintf(r.out, "      • %s\n", m)
	}
}

// Summary writes the per-file status table, the totals and the closing verdict.
// In JSON mode it writes the whole report instead.
func (r *Reporter) Summary(report *Report) error {
	if report == nil {
		return nil
	}
	if !r.text() {
		return r.encode(report)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, "📊 Validation Summary")
	fmt.Fprintln(r.out, rule)

	for _, f := range report.Files {
		status := "✅"
		if !f.Valid() {
			status = "❌"
		}
		fmt.Fprintf(r.out, "%s %s\n", status, f.File)
	}

	fmt.Fprintf(r.out, "\nTotal Errors: %d\n", report.TotalErrors)
	fmt.Fprintf(r.out, "Total Warnings: %d\n", report.TotalWarnings)

	switch report.Outcome {
	case OutcomeFailed:
		fmt.Fprintln(r.out, color.RedString("\n❌ Validation FAILED - Please fix errors above"))
	case OutcomePassedWithWarnings:
		fmt.Fprintln(r.out, color.YellowString("\n⚠️  Validation PASSED with warnings"))
	default:
		fmt.Fprintln(r.out, color.GreenString("\n✅ All agent configurations are valid!"))
	}
	return nil
}

// Fatal reports a condition that stops the run before any file is validated.
// hint is an optional second line telling the user what to do.
func (r *Reporter) Fatal(msg, hint string) error {
	if !r.text() {
		out := struct {
			Error string `json:"error"`
			Hint  string `json:"hint,omitempty"`
		}{msg, hint}
		return r.encode(out)
	}

	fmt.Fprintln(r.out, color.RedString("❌ Error: %s", msg))
	if hint != "" {
		fmt.Fprintf(r.out, "   %s\n", strings.TrimSpace(hint))
	}
	return nil
}

// Notice prints a non-error condition that still ends the run, such as an
// empty agents directory.
func (r *Reporter) Notice(msg string) error {
	if !r.text() {
		return r.Fatal(msg, "")
	}
	fmt.Fprintln(r.out, color.YellowString("\n⚠️  %s", msg))
	return nil
}

func (r *Reporter) encode(v any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(v), "encoding JSON report")
}
