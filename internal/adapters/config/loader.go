// Package config provides the configuration loader for airlock.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file discovered in the working directory
// when no explicit path is given.
const DefaultFilename = "airlock.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the verification plan described by the config file at path.
//
// An empty path means discovery: airlock.yaml in the current directory if it
// exists, the default plan otherwise. An explicitly named file must exist.
// Relative paths in the file are resolved against the file's own directory,
// so a run behaves the same from anywhere in the checkout.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			l.logger.Info(fmt.Sprintf("no %s found, using defaults", DefaultFilename))
			return l.finish(domain.NewPlan(), ".")
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "explicitly named config file does not exist"), "path", path)
		}
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path))
	}

	plan, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return l.finish(plan, filepath.Dir(path))
}

func (l *Loader) finish(plan domain.Plan, base string) (*domain.Plan, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, zerr.Wrap(err, "failed to resolve config directory"))
	}

	plan = plan.Normalize(abs)
	if err := plan.Validate(); err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, err)
	}
	return &plan, nil
}

// Parse decodes YAML config data into a plan with defaults applied. Unknown
// fields are rejected so a typo fails loudly instead of silently running
// with defaults.
func Parse(data []byte) (domain.Plan, error) {
	plan := domain.NewPlan()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		// An empty document is a valid all-defaults config.
		if errors.Is(err, io.EOF) {
			return plan, nil
		}
		return plan, errors.Join(domain.ErrConfigParseFailed, zerr.Wrap(err, "failed to parse config file"))
	}

	if len(file.Probe.Targets) > 0 {
		plan.ProbeTargets = file.Probe.Targets
	}
	if file.Probe.Timeout != "" {
		timeout, err := time.ParseDuration(file.Probe.Timeout)
		if err != nil {
			return plan, errors.Join(domain.ErrConfigInvalid, zerr.With(zerr.Wrap(err, "invalid probe timeout"), "timeout", file.Probe.Timeout))
		}
		if timeout <= 0 {
			return plan, errors.Join(domain.ErrConfigInvalid, zerr.With(zerr.New("probe timeout must be positive"), "timeout", file.Probe.Timeout))
		}
		plan.ProbeTimeout = timeout
	}
	if file.EnvFile != "" {
		plan.EnvFile = file.EnvFile
	}
	if file.SourceDir != "" {
		plan.SourceDir = file.SourceDir
	}
	if file.Build.Toolchain != "" {
		plan.Toolchain = file.Build.Toolchain
	}
	if len(file.Build.Args) > 0 {
		plan.BuildArgs = file.Build.Args
	}
	if file.Build.Package != "" {
		plan.Package = file.Build.Package
	}
	if file.Build.Artifact != "" {
		plan.ArtifactPath = file.Build.Artifact
	}
	if file.Smoke != nil {
		plan.SmokeArgs = file.Smoke.Args
	}
	if file.Report != "" {
		plan.ReportPath = file.Report
	}

	return plan, nil
}

// DefaultYAML returns the commented config file written by `airlock init`.
func DefaultYAML() []byte {
	return []byte(`# airlock verification plan
version: "1"

probe:
  targets:
    - ` + domain.DefaultProbeTarget + `
  timeout: 5s

# Environment file staged by the dependency prefetch tool.
env_file: ` + domain.DefaultEnvFile + `

source_dir: .

build:
  toolchain: ` + domain.DefaultToolchain + `
  package: ` + domain.DefaultPackage + `
  artifact: ` + domain.DefaultArtifactPath + `

smoke:
  args: ["--help"]

report: ` + domain.DefaultReportPath() + `
`)
}
