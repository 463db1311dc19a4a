package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thoreinstein/agentlint/internal/errors"
	"github.com/thoreinstein/agentlint/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrMissingValue indicates a required key resolved to an empty value.
	ErrMissingValue = errors.New("value is required")

	// ErrInvalidFormat indicates an unsupported report format.
	ErrInvalidFormat = errors.New("unsupported format")

	// ErrInvalidPattern indicates a malformed file glob.
	ErrInvalidPattern = errors.New("invalid file pattern")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = paths.ErrInvalidPath
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if err := structValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []error{errors.Wrap(err, "validating config struct")}
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fieldError(fe))
		}
	}

	if cfg.AgentsDir != "" {
		if _, err := paths.Clean(cfg.AgentsDir); err != nil {
			errs = append(errs, &FieldError{Field: KeyAgentsDir, Value: cfg.AgentsDir, Err: ErrInvalidPath})
		}
	}

	if cfg.Pattern != "" && !paths.ValidPattern(cfg.Pattern) {
		errs = append(errs, &FieldError{Field: KeyPattern, Value: cfg.Pattern, Err: ErrInvalidPattern})
	}

	return errs
}

// fieldError maps a validator tag failure onto a FieldError keyed by the
// configuration key rather than the Go field name.
func fieldError(fe validator.FieldError) *FieldError {
	key := fe.Field()
	switch fe.StructField() {
	case "AgentsDir":
		key = KeyAgentsDir
	case "Pattern":
		key = KeyPattern
	case "Format":
		key = KeyFormat
	}

	var err error
	switch fe.Tag() {
	case "required":
		err = ErrMissingValue
	case "oneof":
		err = errors.Mark(errors.Newf("unsupported format, must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", ")), ErrInvalidFormat)
	default:
		err = errors.Newf("failed %q check", fe.Tag())
	}

	return &FieldError{Field: key, Value: fmt.Sprint(fe.Value()), Err: err}
}

// FieldError represents an error for a specific configuration key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: %s: %q", e.Field, e.Err.Error(), e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
