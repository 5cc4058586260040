package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/airgapci/airlock/internal/adapters/config"
	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quietLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoader_DiscoveryWithoutFileUsesDefaults(t *testing.T) {
	dir := inTempDir(t)

	plan, err := quietLoader(t).Load("")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, domain.DefaultEnvFile), plan.EnvFile)
	require.Equal(t, dir, plan.SourceDir)
}

func TestLoader_DiscoveryFindsDefaultFilename(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(config.DefaultFilename, []byte("env_file: found.env\n"), 0o600))

	plan, err := quietLoader(t).Load("")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, "found.env"), plan.EnvFile)
}

func TestLoader_ExplicitMissingFileFails(t *testing.T) {
	inTempDir(t)

	_, err := quietLoader(t).Load("nope.yaml")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestLoader_RelativePathsResolveAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ci.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env_file: deps/prefetch.env\nsource_dir: checkout\n"), 0o600))

	// Load from elsewhere; paths must still resolve against dir.
	t.Chdir(t.TempDir())

	plan, err := quietLoader(t).Load(path)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, "deps", "prefetch.env"), plan.EnvFile)
	require.Equal(t, filepath.Join(dir, "checkout"), plan.SourceDir)
	require.Equal(t, filepath.Join(dir, domain.DefaultArtifactPath), plan.ArtifactPath)
}

func TestLoader_AbsolutePathsAreKept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ci.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env_file: /srv/prefetch/deps.env\n"), 0o600))

	plan, err := quietLoader(t).Load(path)
	require.NoError(t, err)

	require.Equal(t, "/srv/prefetch/deps.env", plan.EnvFile)
}

func TestLoader_ParseErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(": not yaml"), 0o600))

	_, err := quietLoader(t).Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}
