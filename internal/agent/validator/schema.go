package validator

// RequiredFields are the top-level keys every agent configuration must define.
var RequiredFields = []string{
	"name",
	"description",
	"role",
	"skills",
	"tools",
	"context",
	"standards",
	"deliverables",
	"example_tasks",
	"files_to_reference",
}

// RequiredContextFields are the keys the context mapping must define.
var RequiredContextFields = []string{
	"project",
	"repository",
}

// ListFields must hold sequences when present.
var ListFields = []string{
	"skills",
	"tools",
	"standards",
	"deliverables",
	"example_tasks",
	"files_to_reference",
}

// ShortListExempt lists the list fields that may hold fewer than
// MinListItems entries without a warning.
var ShortListExempt = map[string]bool{
	"files_to_reference": true,
}

// AllowedRoles are the role values that pass without a warning.
var AllowedRoles = []string{
	"Senior Frontend Developer",
	"Senior Backend Developer",
	"Senior ML Engineer",
	"Senior Integration Engineer",
	"Senior DevOps/SRE Engineer",
	"Senior Database Architect",
	"Frontend Developer + Marketing Specialist",
}

const (
	// MinListItems is the list length below which a warning is raised.
	MinListItems = 3

	// MinDescriptionLength is the minimum trimmed description length, in characters.
	MinDescriptionLength = 50
)
