package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/airgapci/airlock/internal/adapters/config"
	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestParse_FullConfig(t *testing.T) {
	plan, err := config.Parse([]byte(`
version: "1"
probe:
  targets:
    - https://www.google.com
    - https://proxy.golang.org
  timeout: 2s
env_file: cachi2.env
source_dir: src
build:
  toolchain: go1.25
  args: ["-trimpath"]
  package: ./cmd/app
  artifact: bin/app
smoke:
  args: ["--version"]
report: reports/last.json
`))
	require.NoError(t, err)

	require.Equal(t, []string{"https://www.google.com", "https://proxy.golang.org"}, plan.ProbeTargets)
	require.Equal(t, 2*time.Second, plan.ProbeTimeout)
	require.Equal(t, "cachi2.env", plan.EnvFile)
	require.Equal(t, "src", plan.SourceDir)
	require.Equal(t, "go1.25", plan.Toolchain)
	require.Equal(t, []string{"-trimpath"}, plan.BuildArgs)
	require.Equal(t, "./cmd/app", plan.Package)
	require.Equal(t, "bin/app", plan.ArtifactPath)
	require.Equal(t, []string{"--version"}, plan.SmokeArgs)
	require.Equal(t, "reports/last.json", plan.ReportPath)
}

func TestParse_EmptyDocumentUsesDefaults(t *testing.T) {
	plan, err := config.Parse(nil)
	require.NoError(t, err)

	require.Equal(t, domain.NewPlan(), plan)
}

func TestParse_PartialConfigKeepsDefaults(t *testing.T) {
	plan, err := config.Parse([]byte("env_file: other.env\n"))
	require.NoError(t, err)

	require.Equal(t, "other.env", plan.EnvFile)
	require.Equal(t, domain.DefaultToolchain, plan.Toolchain)
	require.Equal(t, []string{domain.DefaultProbeTarget}, plan.ProbeTargets)
	require.Equal(t, domain.DefaultSmokeArgs(), plan.SmokeArgs)
}

func TestParse_EmptySmokeArgsMeansBareInvocation(t *testing.T) {
	plan, err := config.Parse([]byte("smoke:\n  args: []\n"))
	require.NoError(t, err)

	require.Empty(t, plan.SmokeArgs)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := config.Parse([]byte("env_fiel: typo.env\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := config.Parse([]byte("probe: [unclosed\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestParse_InvalidTimeout(t *testing.T) {
	for _, timeout := range []string{"soon", "-1s", "0s"} {
		_, err := config.Parse([]byte("probe:\n  timeout: " + timeout + "\n"))
		require.Error(t, err, "timeout %q must be rejected", timeout)
		require.True(t, errors.Is(err, domain.ErrConfigInvalid))
	}
}

func TestDefaultYAML_RoundTrips(t *testing.T) {
	plan, err := config.Parse(config.DefaultYAML())
	require.NoError(t, err)

	require.Equal(t, []string{domain.DefaultProbeTarget}, plan.ProbeTargets)
	require.Equal(t, domain.DefaultEnvFile, plan.EnvFile)
	require.Equal(t, domain.DefaultArtifactPath, plan.ArtifactPath)
	require.NoError(t, plan.Validate())
}
