package domain

import "go.trai.ch/zerr"

// PipelineState identifies a stage of the verification pipeline.
type PipelineState string

const (
	// StateIdle is the initial state before the isolation check runs.
	StateIdle PipelineState = "idle"
	// StateProbeDone means the isolation check passed.
	StateProbeDone PipelineState = "probe-done"
	// StateEnvLoaded means the dependency environment was loaded.
	StateEnvLoaded PipelineState = "env-loaded"
	// StateBuilt means the offline build produced the artifact.
	StateBuilt PipelineState = "built"
	// StateSmokeTested means the artifact answered its smoke invocation.
	StateSmokeTested PipelineState = "smoke-tested"
	// StateFailed is the terminal state of an aborted run.
	StateFailed PipelineState = "failed"
)

// successor maps each state to the single state that may follow it on the
// success path. The pipeline only ever moves forward; re-running means a
// fresh pipeline.
var successor = map[PipelineState]PipelineState{
	StateIdle:      StateProbeDone,
	StateProbeDone: StateEnvLoaded,
	StateEnvLoaded: StateBuilt,
	StateBuilt:     StateSmokeTested,
}

// Terminal reports whether no further transitions are allowed from s.
func (s PipelineState) Terminal() bool {
	return s == StateSmokeTested || s == StateFailed
}

// CanAdvance reports whether the transition from s to next is legal. Every
// non-terminal state may fail; otherwise only the single successor is
// reachable.
func (s PipelineState) CanAdvance(next PipelineState) bool {
	if s.Terminal() {
		return false
	}
	if next == StateFailed {
		return true
	}
	return successor[s] == next
}

// Transition validates the move from s to next and returns the new state.
func Transition(s, next PipelineState) (PipelineState, error) {
	if !s.CanAdvance(next) {
		return s, zerr.With(zerr.With(zerr.Wrap(ErrInvalidTransition, "pipeline only moves forward"), "from", string(s)), "to", string(next))
	}
	return next, nil
}
