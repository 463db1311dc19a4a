// Package validator checks agent configurations against the agent schema.
package validator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/agentlint/internal/agent"
	"github.com/thoreinstein/agentlint/internal/errors"
	"github.com/thoreinstein/agentlint/internal/logging"
	results "github.com/thoreinstein/agentlint/internal/validator"
)

// Validator validates agent configuration files.
type Validator struct {
	logger *slog.Logger
}

// New creates a new Validator. A nil logger discards log output.
func New(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Validator{logger: logger}
}

// Validate checks the file at path and returns its error and warning
// messages. Both slices are non-nil.
func Validate(path string) (errs, warnings []string) {
	res := New(nil).ValidateFile(path)
	return res.ErrorMessages(), res.WarningMessages()
}

// ValidateFile loads path and checks it. A file that cannot be loaded yields
// a single error and no further checks.
func (v *Validator) ValidateFile(path string) *results.Result {
	cfg, err := agent.Load(path)
	if err != nil {
		v.logger.Debug("agent config not loadable", "path", path, "error", err)
		result := &results.Result{}
		result.AddError("", loadErrorMessage(path, err))
		return result
	}
	return v.Validate(cfg)
}

// Validate checks a loaded configuration. The checks run in a fixed order
// so the resulting messages are stable across runs.
func (v *Validator) Validate(cfg *agent.Config) *results.Result {
	result := &results.Result{}

	v.validateRequired(cfg, result)
	v.validateContext(cfg, result)
	v.validateLists(cfg, result)
	v.validateDescription(cfg, result)
	v.validateRole(cfg, result)

	v.logger.Debug("validated agent config",
		"path", cfg.Path,
		"errors", len(result.Errors()),
		"warnings", len(result.Warnings()))
	return result
}

func loadErrorMessage(path string, err error) string {
	var notMapping *agent.NotMappingError
	switch {
	case errors.Is(err, agent.ErrFileNotFound):
		return "File does not exist: " + path
	case errors.Is(err, agent.ErrEmpty):
		return "Empty configuration file"
	case errors.As(err, &notMapping):
		return "Configuration root must be a mapping, got " + notMapping.Kind
	case errors.Is(err, agent.ErrInvalidYAML):
		return "Invalid YAML syntax: " + errors.UnwrapAll(err).Error()
	default:
		return "Error reading file: " + err.Error()
	}
}

// validateRequired reports missing required fields as errors and present
// but empty ones as warnings.
func (v *Validator) validateRequired(cfg *agent.Config, result *results.Result) {
	for _, field := range RequiredFields {
		val, ok := cfg.Get(field)
		switch {
		case !ok:
			result.AddError(field, "Missing required field: "+field)
		case agent.IsEmpty(val):
			result.AddWarning(field, "Empty field: "+field)
		}
	}
}

// validateContext requires the nested context keys. A context that is not a
// mapping has no keys, so every required key is reported. That includes a
// list such as [project, repository]: its items are values, not keys.
func (v *Validator) validateContext(cfg *agent.Config, result *results.Result) {
	val, ok := cfg.Get("context")
	if !ok {
		return
	}
	keys, _ := agent.MappingKeys(val)
	for _, field := range RequiredContextFields {
		if _, ok := keys[field]; !ok {
			result.AddError("context."+field, "Missing required context field: "+field)
		}
	}
}

// validateLists checks shape then size; the first failing check wins.
func (v *Validator) validateLists(cfg *agent.Config, result *results.Result) {
	for _, field := range ListFields {
		val, ok := cfg.Get(field)
		if !ok {
			continue
		}
		items, isList := agent.AsList(val)
		v.logger.Log(context.Background(), logging.LevelTrace, "checking list field",
			"field", field, "list", isList, "items", len(items))
		switch {
		case !isList:
			result.AddError(field, field+" should be a list")
		case len(items) == 0:
			result.AddWarning(field, field+" is empty")
		case len(items) < MinListItems && !ShortListExempt[field]:
			result.AddWarning(field, fmt.Sprintf("%s has fewer than %d items", field, MinListItems))
		}
	}
}

func (v *Validator) validateDescription(cfg *agent.Config, result *results.Result) {
	val, ok := cfg.Get("description")
	if !ok {
		return
	}
	desc := strings.TrimSpace(agent.Text(val))
	if utf8.RuneCountInString(desc) < MinDescriptionLength {
		result.AddWarning("description",
			fmt.Sprintf("Description is too short (should be %d+ characters)", MinDescriptionLength))
	}
}

// validateRole warns about roles outside AllowedRoles. Only exact string
// matches are accepted.
func (v *Validator) validateRole(cfg *agent.Config, result *results.Result) {
	val, ok := cfg.Get("role")
	if !ok {
		return
	}
	if role, isString := val.(string); isString && slices.Contains(AllowedRoles, role) {
		return
	}
	result.AddWarning("role", "Unusual role: "+agent.Display(val))
}
