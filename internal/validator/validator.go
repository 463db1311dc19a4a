package validator

import (
	"encoding/json"
	"strings"

	"github.com/thoreinstein/agentlint/internal/errors"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a quality concern that does not block acceptance.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "decoding severity")
	}
	switch name {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return errors.Newf("unknown severity %q", name)
	}
	return nil
}

// Issue represents a single validation problem.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity `json:"severity"`
	// Field identifies the configuration key with the issue (optional).
	Field string `json:"field,omitempty"`
	// Message is the complete human-readable description, e.g.
	// "Missing required field: tools".
	Message string `json:"message"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		sb.WriteString("field \"")
		sb.WriteString(i.Field)
		sb.WriteString("\": ")
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates the issues found in one file, in the order they were found.
type Result struct {
	Issues []Issue `json:"issues"`
}

// AddError records an error.
func (r *Result) AddError(field, message string) {
	r.Issues = append(r.Issues, Issue{Severity: SeverityError, Field: field, Message: message})
}

// AddWarning records a warning.
func (r *Result) AddWarning(field, message string) {
	r.Issues = append(r.Issues, Issue{Severity: SeverityWarning, Field: field, Message: message})
}

// Errors returns a slice of all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns a slice of all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// ErrorMessages returns the messages of all errors, in order.
// It never returns nil.
func (r *Result) ErrorMessages() []string {
	return messages(r.Errors())
}

// WarningMessages returns the messages of all warnings, in order.
// It never returns nil.
func (r *Result) WarningMessages() []string {
	return messages(r.Warnings())
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

func messages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}
