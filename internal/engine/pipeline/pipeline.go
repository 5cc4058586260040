// Package pipeline implements the sequential hermetic verification pipeline.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline runs the four verification steps in strict order: probe the
// network, load the dependency environment, build offline, smoke test the
// artifact. Each step's success is a precondition for the next; the first
// failure aborts the run.
type Pipeline struct {
	prober    ports.Prober
	envLoader ports.EnvLoader
	executor  ports.Executor
	inspector ports.ArtifactInspector
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Pipeline.
func New(
	prober ports.Prober,
	envLoader ports.EnvLoader,
	executor ports.Executor,
	inspector ports.ArtifactInspector,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		prober:    prober,
		envLoader: envLoader,
		executor:  executor,
		inspector: inspector,
		telemetry: telemetry,
		logger:    logger,
	}
}

// stepOrder is the fixed sequence of verification steps and the state each
// one leads to on success.
var stepOrder = []struct {
	kind domain.StepKind
	next domain.PipelineState
}{
	{domain.StepProbe, domain.StateProbeDone},
	{domain.StepEnv, domain.StateEnvLoaded},
	{domain.StepBuild, domain.StateBuilt},
	{domain.StepSmoke, domain.StateSmokeTested},
}

// Run executes the verification described by the plan. It always returns a
// report of what happened; the error is non-nil when the run failed. There
// are no retries: a failed run is re-run from scratch after the operator
// fixes the environment.
func (p *Pipeline) Run(ctx context.Context, plan domain.Plan) (*domain.Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	r := &run{
		pipeline: p,
		plan:     plan,
		state:    domain.StateIdle,
		report:   &domain.Report{StartedAt: time.Now().UTC()},
	}

	var failure error
	for i, step := range stepOrder {
		if err := r.execute(ctx, step.kind, step.next); err != nil {
			failure = err
			r.skipFrom(ctx, i+1)
			break
		}
	}

	r.finish(failure)
	return r.report, failure
}

// run holds the state of one pipeline invocation. The overlay is written
// once by the environment step and only read afterwards.
type run struct {
	pipeline *Pipeline
	plan     domain.Plan
	state    domain.PipelineState
	overlay  *domain.Overlay
	report   *domain.Report
}

// execute runs one step inside a telemetry vertex, records its outcome and
// advances the state machine.
func (r *run) execute(ctx context.Context, kind domain.StepKind, next domain.PipelineState) error {
	ctx, vertex := r.pipeline.telemetry.Record(ctx, string(kind))

	started := time.Now().UTC()
	var output bytes.Buffer

	detail, err := r.step(ctx, kind, vertex, &output)
	duration := time.Since(started)

	status := domain.StepStatusPassed
	if err != nil {
		status = domain.StepStatusFailed
		if detail == "" {
			detail = err.Error()
		}
	}
	r.report.Steps = append(r.report.Steps, domain.StepReport{
		Kind:      kind,
		Status:    status,
		StartedAt: started,
		Duration:  duration,
		Output:    output.String(),
		Detail:    detail,
	})

	vertex.Complete(err)

	if err != nil {
		r.fail()
		return err
	}

	state, err := domain.Transition(r.state, next)
	if err != nil {
		return err
	}
	r.state = state
	return nil
}

func (r *run) step(ctx context.Context, kind domain.StepKind, vertex ports.Vertex, output *bytes.Buffer) (string, error) {
	switch kind {
	case domain.StepProbe:
		return r.probe(ctx)
	case domain.StepEnv:
		return r.loadEnv()
	case domain.StepBuild:
		return r.build(ctx, vertex, output)
	case domain.StepSmoke:
		return r.smoke(ctx, vertex, output)
	default:
		return "", zerr.With(zerr.New("unknown pipeline step"), "step", string(kind))
	}
}

// probe asserts that no configured target is reachable. A target answering
// means the sandbox leaked network access and the build must not proceed.
func (r *run) probe(ctx context.Context) (string, error) {
	result, err := r.pipeline.prober.Probe(ctx, r.plan.ProbeTargets, r.plan.ProbeTimeout)
	if err != nil {
		return "", err
	}
	r.report.Probe = &result

	if result.Reachable() {
		targets := result.ReachableTargets()
		return fmt.Sprintf("reachable: %s", strings.Join(targets, ", ")),
			zerr.With(zerr.Wrap(domain.ErrHermeticityViolation, "probe targets answered"), "targets", strings.Join(targets, ", "))
	}
	return "all targets unreachable", nil
}

// loadEnv reads the prefetched environment file into the run's overlay.
// There is deliberately no fallback when the file is missing: falling back
// to network resolution is exactly what the pipeline exists to prevent.
func (r *run) loadEnv() (string, error) {
	overlay, err := r.pipeline.envLoader.Load(r.plan.EnvFile)
	if err != nil {
		return "", err
	}
	r.overlay = overlay
	r.report.EnvFile = overlay.Source()
	r.report.EnvVars = overlay.Len()
	return fmt.Sprintf("loaded %d variables", overlay.Len()), nil
}

// build verifies the source tree, runs the toolchain with the overlay
// applied and inspects the produced artifact. The toolchain's own output is
// surfaced verbatim so a dependency missing from the prefetch shows up in
// the diagnostics unchanged.
func (r *run) build(ctx context.Context, vertex ports.Vertex, output *bytes.Buffer) (string, error) {
	if err := r.pipeline.inspector.VerifySource(r.plan.SourceDir); err != nil {
		return "", errors.Join(domain.ErrBuildFailure, err)
	}

	cmd := r.plan.BuildCommand()
	r.pipeline.logger.Info(fmt.Sprintf("building %s in %s", r.plan.Package, r.plan.SourceDir))

	stdout := io.MultiWriter(vertex.Stdout(), output)
	stderr := io.MultiWriter(vertex.Stderr(), output)
	if err := r.pipeline.executor.Execute(ctx, cmd, r.overlay.Environ(), stdout, stderr); err != nil {
		return "", errors.Join(domain.ErrBuildFailure, err)
	}

	info, err := r.pipeline.inspector.Inspect(r.plan.ArtifactPath)
	if err != nil {
		return "", errors.Join(domain.ErrBuildFailure, err)
	}
	r.report.Artifact = info

	return fmt.Sprintf("artifact %s (%d bytes)", info.Path, info.Size), nil
}

// smoke runs the artifact with its minimal invocation; exit 0 is the only
// passing outcome.
func (r *run) smoke(ctx context.Context, vertex ports.Vertex, output *bytes.Buffer) (string, error) {
	cmd := r.plan.SmokeCommand()

	stdout := io.MultiWriter(vertex.Stdout(), output)
	stderr := io.MultiWriter(vertex.Stderr(), output)
	if err := r.pipeline.executor.Execute(ctx, cmd, r.overlay.Environ(), stdout, stderr); err != nil {
		return "", errors.Join(domain.ErrSmokeTestFailure, err)
	}
	return "exit status 0", nil
}

// fail moves the state machine to its terminal failure state.
func (r *run) fail() {
	if state, err := domain.Transition(r.state, domain.StateFailed); err == nil {
		r.state = state
	}
}

// skipFrom records the steps an earlier failure prevented from running. Each
// gets a cached housekeeping vertex so the tape shows the whole sequence
// without pretending work happened.
func (r *run) skipFrom(ctx context.Context, index int) {
	for _, step := range stepOrder[index:] {
		_, vertex := r.pipeline.telemetry.Record(ctx, string(step.kind), ports.WithInternal())
		vertex.Cached()

		r.report.Steps = append(r.report.Steps, domain.StepReport{
			Kind:   step.kind,
			Status: domain.StepStatusSkipped,
		})
	}
}

func (r *run) finish(failure error) {
	r.report.FinishedAt = time.Now().UTC()
	r.report.Passed = failure == nil
	r.report.FailureKind = domain.ClassifyFailure(failure)
	if failure != nil {
		r.report.Failure = failure.Error()
		r.pipeline.logger.Error(failure)
		return
	}
	r.pipeline.logger.Info("verification passed: build is hermetic")
}
