package domain

import (
	"errors"
	"time"
)

// StepKind names one of the four verification steps.
type StepKind string

const (
	// StepProbe is the network isolation check.
	StepProbe StepKind = "probe"
	// StepEnv is the dependency environment load.
	StepEnv StepKind = "environment"
	// StepBuild is the offline build.
	StepBuild StepKind = "build"
	// StepSmoke is the artifact smoke test.
	StepSmoke StepKind = "smoke"
)

// StepStatus represents the recorded outcome of a pipeline step.
type StepStatus string

const (
	// StepStatusPassed indicates the step completed successfully.
	StepStatusPassed StepStatus = "passed"
	// StepStatusFailed indicates the step aborted the run.
	StepStatusFailed StepStatus = "failed"
	// StepStatusSkipped indicates an earlier failure prevented the step.
	StepStatusSkipped StepStatus = "skipped"
)

// FailureKind classifies a fatal verification error for reporting. The four
// pipeline kinds are the only stable taxonomy; exit codes carry no meaning
// beyond pass or fail.
type FailureKind string

const (
	// FailureNone means the run passed.
	FailureNone FailureKind = ""
	// FailureHermeticity means a probe target was reachable.
	FailureHermeticity FailureKind = "hermeticity-violation"
	// FailureEnvironment means the environment file could not be loaded.
	FailureEnvironment FailureKind = "environment-load"
	// FailureBuild means the offline build failed.
	FailureBuild FailureKind = "build-failure"
	// FailureSmokeTest means the artifact failed its smoke invocation.
	FailureSmokeTest FailureKind = "smoke-test-failure"
	// FailureUnknown means the error matched none of the pipeline kinds.
	FailureUnknown FailureKind = "unknown"
)

// ClassifyFailure maps a pipeline error to its failure kind.
func ClassifyFailure(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrHermeticityViolation):
		return FailureHermeticity
	case errors.Is(err, ErrEnvironmentLoad):
		return FailureEnvironment
	case errors.Is(err, ErrBuildFailure):
		return FailureBuild
	case errors.Is(err, ErrSmokeTestFailure):
		return FailureSmokeTest
	default:
		return FailureUnknown
	}
}

// StepReport records the observed outcome of one step.
type StepReport struct {
	Kind      StepKind      `json:"kind"`
	Status    StepStatus    `json:"status"`
	StartedAt time.Time     `json:"started_at,omitzero"`
	Duration  time.Duration `json:"duration_ns,omitzero"`
	Output    string        `json:"output,omitzero"`
	Detail    string        `json:"detail,omitzero"`
}

// ArtifactInfo describes the built artifact after inspection.
type ArtifactInfo struct {
	Path        string `json:"path"`
	Size        int64  `json:"size_bytes"`
	Mode        string `json:"mode,omitzero"`
	Fingerprint string `json:"fingerprint,omitzero"`
}

// Report is the persisted record of one verification run.
type Report struct {
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at,omitzero"`
	Passed      bool          `json:"passed"`
	FailureKind FailureKind   `json:"failure_kind,omitzero"`
	Failure     string        `json:"failure,omitzero"`
	Probe       *ProbeResult  `json:"probe,omitzero"`
	EnvFile     string        `json:"env_file,omitzero"`
	EnvVars     int           `json:"env_vars,omitzero"`
	Steps       []StepReport  `json:"steps"`
	Artifact    *ArtifactInfo `json:"artifact,omitzero"`
}

// Step returns the report entry for the given kind, or nil.
func (r *Report) Step(kind StepKind) *StepReport {
	for i := range r.Steps {
		if r.Steps[i].Kind == kind {
			return &r.Steps[i]
		}
	}
	return nil
}

// Outcome returns a short human-readable verdict.
func (r *Report) Outcome() string {
	if r.Passed {
		return "passed"
	}
	if r.FailureKind != FailureNone {
		return "failed (" + string(r.FailureKind) + ")"
	}
	return "failed"
}
