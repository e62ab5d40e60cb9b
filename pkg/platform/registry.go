package platform

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/classkit/gradeport/pkg/errors"
)

//go:embed platforms.yaml
var embeddedProfiles []byte

// Registry holds the loaded platform profiles keyed by ID.
type Registry struct {
	profiles map[ID]*Profile
}

// profilesFile is the YAML document shape of a profiles file.
type profilesFile struct {
	Platforms []*Profile `yaml:"platforms"`
}

// Default returns a registry built from the embedded profiles. The embedded
// document is compiled in, so a failure to parse it is a programming error.
func Default() *Registry {
	reg, err := parse(embeddedProfiles, "embedded platforms.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded platform profiles are invalid: %v", err))
	}
	return reg
}

// LoadFile returns a registry built from a profiles YAML file, for
// overriding the embedded defaults.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, name string) (*Registry, error) {
	var doc profilesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParseError("yaml", name, err.Error(), err)
	}
	if len(doc.Platforms) == 0 {
		return nil, errors.NewParseError("yaml", name, "no platforms defined", nil)
	}

	reg := &Registry{profiles: make(map[ID]*Profile, len(doc.Platforms))}
	for _, p := range doc.Platforms {
		if err := validate(p); err != nil {
			return nil, errors.WrapConfig(string(p.ID), err)
		}
		reg.profiles[p.ID] = p
	}
	return reg, nil
}

// validate rejects profiles whose layout indices cannot describe a real
// export.
func validate(p *Profile) error {
	switch {
	case p.ID == "":
		return errors.New("profile has no id")
	case p.HeaderRows < 1:
		return fmt.Errorf("platform %s: header_rows must be at least 1", p.ID)
	case p.ActivityTypeRow >= p.HeaderRows:
		return fmt.Errorf("platform %s: activity_type_row %d is outside the %d header rows", p.ID, p.ActivityTypeRow, p.HeaderRows)
	case p.KeyColumn < 0:
		return fmt.Errorf("platform %s: key_column must not be negative", p.ID)
	case p.AssignmentStart <= p.KeyColumn:
		return fmt.Errorf("platform %s: assignment_start %d must be after key_column %d", p.ID, p.AssignmentStart, p.KeyColumn)
	case p.HasActivityTypes() && len(p.GradedTypes) == 0:
		return fmt.Errorf("platform %s: activity types declared but no graded_types listed", p.ID)
	}
	return nil
}

// Lookup returns the profile for the given platform ID.
func (r *Registry) Lookup(id ID) (*Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("platform %q: %w", id, errors.ErrNotFound)
	}
	return p, nil
}

// IDs returns the registered platform IDs.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	return ids
}
