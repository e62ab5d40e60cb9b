// Package platform describes the grade-export conventions of the supported
// course platforms: how many header rows an export carries, where the
// identity key and the assignment region sit, and which activity types
// count toward the course grade. Profiles ship embedded as YAML and can be
// overridden from a profiles file.
package platform

import (
	"strings"
)

// ID identifies a supported course platform.
type ID string

// Supported platform IDs.
const (
	// ProjectStem exports a single header row and every assignment column
	// is graded.
	ProjectStem ID = "projectstem"

	// CodeHS exports three stacked header rows; the third lists an activity
	// type per assignment column and only some types are graded.
	CodeHS ID = "codehs"
)

// String returns the ID as a string.
func (id ID) String() string { return string(id) }

// ParseID resolves user input to a platform ID. It accepts full IDs in any
// case and the single-letter shorthands P and C from the interactive prompt.
func ParseID(s string) (ID, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "projectstem", "project stem":
		return ProjectStem, true
	case "c", "codehs", "code hs":
		return CodeHS, true
	default:
		return "", false
	}
}

// Profile describes the shape of one platform's grade export.
type Profile struct {
	// ID is the platform identifier.
	ID ID `yaml:"id"`

	// Name is the display name.
	Name string `yaml:"name"`

	// HeaderRows is how many rows at the top of the export form the header
	// block. Data rows start after them.
	HeaderRows int `yaml:"header_rows"`

	// ActivityTypeRow is the zero-based index within the header block of
	// the row listing one activity type per assignment column, or -1 when
	// the platform has none.
	ActivityTypeRow int `yaml:"activity_type_row"`

	// KeyColumn is the zero-based column holding the student identity key
	// in data rows.
	KeyColumn int `yaml:"key_column"`

	// AssignmentStart is the zero-based column where the assignment region
	// begins. Everything before it is identity or summary columns.
	AssignmentStart int `yaml:"assignment_start"`

	// GradedTypes are the activity types that count toward the grade.
	// Empty means every assignment column is graded.
	GradedTypes []string `yaml:"graded_types"`

	// UngradedTypes are the activity types known to be informational.
	// Types in neither list are treated as ungraded and logged.
	UngradedTypes []string `yaml:"ungraded_types"`
}

// HasActivityTypes reports whether the platform marks assignment columns
// with activity types.
func (p *Profile) HasActivityTypes() bool {
	return p.ActivityTypeRow >= 0
}

// Classify reports whether an activity type is graded, and whether it is
// part of the platform's known vocabulary at all. Matching is
// case-insensitive and ignores surrounding whitespace.
func (p *Profile) Classify(activityType string) (graded, known bool) {
	t := strings.ToLower(strings.TrimSpace(activityType))
	for _, g := range p.GradedTypes {
		if t == strings.ToLower(g) {
			return true, true
		}
	}
	for _, u := range p.UngradedTypes {
		if t == strings.ToLower(u) {
			return false, true
		}
	}
	return false, false
}
