package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/airgapci/airlock/internal/adapters/fs"
	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestInspector_VerifySource(t *testing.T) {
	inspector := fs.NewInspector()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o600))

	require.NoError(t, inspector.VerifySource(dir))
}

func TestInspector_VerifySourceMissing(t *testing.T) {
	inspector := fs.NewInspector()

	err := inspector.VerifySource(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrSourceTreeMissing))
}

func TestInspector_VerifySourceEmpty(t *testing.T) {
	inspector := fs.NewInspector()

	err := inspector.VerifySource(t.TempDir())
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrSourceTreeEmpty))
}

func TestInspector_Inspect(t *testing.T) {
	inspector := fs.NewInspector()

	path := filepath.Join(t.TempDir(), "app")
	//nolint:gosec // Test needs an executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho ok\n"), 0o755))

	info, err := inspector.Inspect(path)
	require.NoError(t, err)

	require.Equal(t, path, info.Path)
	require.Equal(t, int64(18), info.Size)
	require.Contains(t, info.Mode, "x")
	require.Regexp(t, `^xxh64:[0-9a-f]{16}$`, info.Fingerprint)
}

func TestInspector_InspectFingerprintIsContentAddressed(t *testing.T) {
	inspector := fs.NewInspector()
	dir := t.TempDir()

	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	//nolint:gosec // Test needs executable files
	require.NoError(t, os.WriteFile(a, []byte("same content"), 0o755))
	//nolint:gosec // Test needs executable files
	require.NoError(t, os.WriteFile(b, []byte("same content"), 0o755))
	//nolint:gosec // Test needs executable files
	require.NoError(t, os.WriteFile(c, []byte("other content"), 0o755))

	infoA, err := inspector.Inspect(a)
	require.NoError(t, err)
	infoB, err := inspector.Inspect(b)
	require.NoError(t, err)
	infoC, err := inspector.Inspect(c)
	require.NoError(t, err)

	require.Equal(t, infoA.Fingerprint, infoB.Fingerprint)
	require.NotEqual(t, infoA.Fingerprint, infoC.Fingerprint)
}

func TestInspector_InspectMissing(t *testing.T) {
	inspector := fs.NewInspector()

	_, err := inspector.Inspect(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrArtifactMissing))
}

func TestInspector_InspectNotExecutable(t *testing.T) {
	inspector := fs.NewInspector()

	path := filepath.Join(t.TempDir(), "app")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	_, err := inspector.Inspect(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrArtifactNotExecutable))
}

func TestInspector_InspectDirectory(t *testing.T) {
	inspector := fs.NewInspector()

	_, err := inspector.Inspect(t.TempDir())
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrArtifactMissing))
}
