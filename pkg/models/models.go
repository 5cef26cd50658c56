package models

import "github.com/arnavshah/fatigue-risk-api/pkg/fatigue"

// PatternInput is a shift pattern plus optional pattern-wide parameters
type PatternInput struct {
	Shifts []fatigue.ShiftDefinition  `json:"shifts" yaml:"shifts" binding:"required"`
	Params *fatigue.FatigueParameters `json:"params,omitempty" yaml:"params,omitempty"`
}

// RolesInput is a pattern evaluated once per role preset.
// Roles left empty fall back to the configured presets.
type RolesInput struct {
	PatternInput
	Roles []fatigue.RolePreset `json:"roles,omitempty"`
}

// SequenceResponse is the Risk Index result for a pattern
type SequenceResponse struct {
	Results []fatigue.FatigueResult `json:"results"`
	Summary fatigue.Summary         `json:"summary"`
}

// CombinedResponse carries both indices for a pattern
type CombinedResponse struct {
	Results []fatigue.CombinedFatigueResult `json:"results"`
	Summary fatigue.Summary                 `json:"summary"`
}

// RolesResponse is the role comparison for a pattern
type RolesResponse struct {
	Roles []fatigue.RoleComparisonResult `json:"roles"`
	// Compliant lists the roles that may work the pattern
	Compliant []string `json:"compliant"`
}

// LevelResponse is a single classification
type LevelResponse struct {
	Value      float64            `json:"value"`
	Scale      string             `json:"scale"`
	Night      bool               `json:"night"`
	Level      fatigue.RiskLevel  `json:"level"`
	Thresholds fatigue.Thresholds `json:"thresholds"`
}

// ErrorResponse is returned for rejected input
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Day   *int   `json:"day,omitempty"`
	Field string `json:"field,omitempty"`
}
