// Package app implements the application layer for airlock.
package app

import (
	"context"
	"fmt"

	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/airgapci/airlock/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App wires the configuration, the verification pipeline and the report
// store into the operations the CLI exposes.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	prober       ports.Prober
	envLoader    ports.EnvLoader
	reportStore  ports.ReportStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	pipe *pipeline.Pipeline,
	prober ports.Prober,
	envLoader ports.EnvLoader,
	reportStore ports.ReportStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		pipeline:     pipe,
		prober:       prober,
		envLoader:    envLoader,
		reportStore:  reportStore,
		logger:       logger,
	}
}

// Plan loads the verification plan for the given config path.
func (a *App) Plan(configPath string) (*domain.Plan, error) {
	plan, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return plan, nil
}

// Verify runs the full verification pipeline and persists the report. The
// report is written for failed runs too, so the last run's diagnostics stay
// available without scrolling CI logs.
func (a *App) Verify(ctx context.Context, configPath string) error {
	plan, err := a.Plan(configPath)
	if err != nil {
		return err
	}

	report, runErr := a.pipeline.Run(ctx, *plan)
	if report != nil {
		if saveErr := a.reportStore.Save(plan.ReportPath, *report); saveErr != nil {
			if runErr != nil {
				a.logger.Error(saveErr)
			} else {
				runErr = saveErr
			}
		} else {
			a.logger.Info(fmt.Sprintf("report written to %s", plan.ReportPath))
		}
	}

	return runErr
}

// Probe runs only the network isolation check. It succeeds when every
// target is unreachable and returns ErrHermeticityViolation otherwise.
func (a *App) Probe(ctx context.Context, configPath string) (*domain.ProbeResult, error) {
	plan, err := a.Plan(configPath)
	if err != nil {
		return nil, err
	}

	result, err := a.prober.Probe(ctx, plan.ProbeTargets, plan.ProbeTimeout)
	if err != nil {
		return nil, err
	}
	if result.Reachable() {
		return &result, zerr.With(zerr.Wrap(domain.ErrHermeticityViolation, "probe targets answered"), "targets", fmt.Sprintf("%v", result.ReachableTargets()))
	}
	return &result, nil
}

// LoadEnv loads and validates an environment file without running a build.
// An empty envPath means the plan's configured file.
func (a *App) LoadEnv(configPath, envPath string) (*domain.Overlay, error) {
	if envPath == "" {
		plan, err := a.Plan(configPath)
		if err != nil {
			return nil, err
		}
		envPath = plan.EnvFile
	}
	return a.envLoader.Load(envPath)
}

// LastReport returns the persisted report of the most recent verification.
func (a *App) LastReport(configPath string) (*domain.Report, error) {
	plan, err := a.Plan(configPath)
	if err != nil {
		return nil, err
	}

	report, err := a.reportStore.Load(plan.ReportPath)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrReportNotFound, "no run recorded yet"), "path", plan.ReportPath)
	}
	return report, nil
}
