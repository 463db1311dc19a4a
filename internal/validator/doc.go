// Package validator provides the result model and reporting used by
// agentlint.
//
// It distinguishes two severities: errors block acceptance of a file and
// warnings only flag quality concerns.
//
// # Core Concepts
//
//   - [Issue]: one message with its severity and the key it concerns.
//   - [Result]: the ordered issues found in a single file.
//   - [Report]: per-file records plus totals and the overall [Outcome].
//   - [Reporter]: streams progress as text, or writes the report as JSON.
//
// # Basic Usage
//
//	report := validator.NewReport()
//	rep := validator.NewReporter(os.Stdout, validator.FormatText)
//	for _, path := range files {
//		rep.FileStart(path)
//		rep.FileDone(report.Add(path, check(path)))
//	}
//	_ = rep.Summary(report)
package validator
