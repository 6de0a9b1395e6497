package api

import "github.com/inference-sim/npv-sim/sim"

// SimulationRequest is the body of POST /api/v1/simulations.
// Exactly one of Parameters or Preset selects the project; Parameters wins
// when both are given.
type SimulationRequest struct {
	Parameters     *sim.Parameters `json:"parameters"`
	Preset         string          `json:"preset"`
	Seed           *int64          `json:"seed"`
	Bins           int             `json:"bins"`
	IncludeSamples bool            `json:"include_samples"`
}

// SimulationResponse carries one completed run.
type SimulationResponse struct {
	ID     string      `json:"id"`
	Report *sim.Report `json:"report"`
}

// PresetInfo describes one named parameter set.
type PresetInfo struct {
	Name       string         `json:"name"`
	Parameters sim.Parameters `json:"parameters"`
}

// PresetsResponse lists every preset, sorted by name.
type PresetsResponse struct {
	Presets []PresetInfo `json:"presets"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
