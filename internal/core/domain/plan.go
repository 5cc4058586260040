package domain

import (
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

// Defaults for a verification plan. They mirror the conventional CI layout
// where the prefetch tool stages its output next to the checkout.
const (
	DefaultEnvFile      = "deps.env"
	DefaultSourceDir    = "."
	DefaultToolchain    = "go"
	DefaultPackage      = "."
	DefaultArtifactPath = "out/app"
	DefaultProbeTarget  = "https://www.google.com"
	DefaultProbeTimeout = 5 * time.Second
)

// DefaultSmokeArgs returns the default artifact invocation used as the smoke
// test. A fresh slice is returned so callers can append safely.
func DefaultSmokeArgs() []string {
	return []string{"--help"}
}

// DefaultReportPath returns the location where verification reports are kept.
func DefaultReportPath() string {
	return filepath.Join(".airlock", "report.json")
}

// Plan describes a single hermetic verification run.
type Plan struct {
	// ProbeTargets are the well-known endpoints the isolation check contacts.
	ProbeTargets []string
	// ProbeTimeout bounds each individual probe attempt.
	ProbeTimeout time.Duration
	// EnvFile is the path of the prefetched environment file.
	EnvFile string
	// SourceDir is the root of the source checkout to build.
	SourceDir string
	// Toolchain is the build tool binary, resolved against PATH.
	Toolchain string
	// BuildArgs are extra arguments inserted before the package path.
	BuildArgs []string
	// Package is the package path handed to the build tool.
	Package string
	// ArtifactPath is where the build must place the executable.
	ArtifactPath string
	// SmokeArgs are the arguments of the artifact's smoke invocation.
	SmokeArgs []string
	// ReportPath is where the verification report is persisted.
	ReportPath string
}

// NewPlan returns a plan populated with defaults.
func NewPlan() Plan {
	return Plan{
		ProbeTargets: []string{DefaultProbeTarget},
		ProbeTimeout: DefaultProbeTimeout,
		EnvFile:      DefaultEnvFile,
		SourceDir:    DefaultSourceDir,
		Toolchain:    DefaultToolchain,
		Package:      DefaultPackage,
		ArtifactPath: DefaultArtifactPath,
		SmokeArgs:    DefaultSmokeArgs(),
		ReportPath:   DefaultReportPath(),
	}
}

// Validate checks that the plan names everything a run needs.
func (p Plan) Validate() error {
	if len(p.ProbeTargets) == 0 {
		return ErrNoProbeTargets
	}
	if p.EnvFile == "" {
		return zerr.Wrap(ErrConfigInvalid, "env_file must not be empty")
	}
	if p.SourceDir == "" {
		return zerr.Wrap(ErrConfigInvalid, "source_dir must not be empty")
	}
	if p.Toolchain == "" {
		return zerr.Wrap(ErrConfigInvalid, "toolchain must not be empty")
	}
	if p.ArtifactPath == "" {
		return zerr.Wrap(ErrConfigInvalid, "artifact must not be empty")
	}
	return nil
}

// Normalize resolves the plan's relative paths against the given base
// directory so commands behave the same regardless of their working
// directory.
func (p Plan) Normalize(base string) Plan {
	p.EnvFile = absJoin(base, p.EnvFile)
	p.SourceDir = absJoin(base, p.SourceDir)
	p.ArtifactPath = absJoin(base, p.ArtifactPath)
	p.ReportPath = absJoin(base, p.ReportPath)
	return p
}

// BuildCommand returns the toolchain invocation that produces the artifact.
func (p Plan) BuildCommand() Command {
	argv := []string{p.Toolchain, "build", "-o", p.ArtifactPath}
	argv = append(argv, p.BuildArgs...)
	argv = append(argv, p.Package)
	return Command{
		Name: "build",
		Argv: argv,
		Dir:  p.SourceDir,
	}
}

// SmokeCommand returns the artifact invocation used as the smoke test.
func (p Plan) SmokeCommand() Command {
	argv := append([]string{p.ArtifactPath}, p.SmokeArgs...)
	return Command{
		Name: "smoke",
		Argv: argv,
		Dir:  p.SourceDir,
	}
}

func absJoin(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
