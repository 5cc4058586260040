package domain

import "time"

// TargetProbe is the observed outcome of probing a single network target.
// A target that times out or fails to resolve counts as unreachable; the
// probe never distinguishes why the network is absent, only whether it is.
type TargetProbe struct {
	Target    string        `json:"target"`
	Reachable bool          `json:"reachable"`
	Detail    string        `json:"detail,omitzero"`
	Elapsed   time.Duration `json:"elapsed_ns,omitzero"`
}

// ProbeResult aggregates the outcomes of one isolation check. It is computed
// once per run and carries no state into later steps.
type ProbeResult struct {
	Probes []TargetProbe `json:"probes"`
}

// Reachable reports whether any probed target answered.
func (r ProbeResult) Reachable() bool {
	for _, p := range r.Probes {
		if p.Reachable {
			return true
		}
	}
	return false
}

// ReachableTargets returns the targets that answered, in probe order.
func (r ProbeResult) ReachableTargets() []string {
	var targets []string
	for _, p := range r.Probes {
		if p.Reachable {
			targets = append(targets, p.Target)
		}
	}
	return targets
}
