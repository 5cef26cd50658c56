package config

import (
	"fmt"
	"os"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
	"gopkg.in/yaml.v3"
)

// Presets are the deployment's default fatigue parameters and role presets.
type Presets struct {
	Defaults *fatigue.FatigueParameters `yaml:"defaults"`
	Roles    []fatigue.RolePreset       `yaml:"roles"`
}

// LoadPresets reads a presets file. An empty path yields the built-in roles
// and no default parameters; a file without roles keeps the built-in roles.
func LoadPresets(path string) (*Presets, error) {
	if path == "" {
		return &Presets{Roles: fatigue.DefaultRolePresets()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("presets: read %q: %w", path, err)
	}
	p := &Presets{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("presets: parse yaml: %w", err)
	}
	if len(p.Roles) == 0 {
		p.Roles = fatigue.DefaultRolePresets()
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}
	return p, nil
}

func (p *Presets) validate() error {
	if err := fatigue.ValidateParameters(p.Defaults); err != nil {
		return err
	}
	if err := fatigue.ValidateRoles(p.Roles); err != nil {
		return err
	}
	seen := make(map[string]bool, len(p.Roles))
	for _, r := range p.Roles {
		if r.Name == "" {
			return fmt.Errorf("role with empty name")
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate role %q", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

// Params returns the request parameters if set, else a copy of the defaults.
func (p *Presets) Params(req *fatigue.FatigueParameters) *fatigue.FatigueParameters {
	if req != nil {
		return req
	}
	return p.Defaults.Clone()
}
