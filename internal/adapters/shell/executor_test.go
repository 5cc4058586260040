package shell_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/airgapci/airlock/internal/adapters/shell"
	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	// Expect Info to be called once for each line.
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-multiline",
		Argv: []string{"sh", "-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, nil, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	// The writer must buffer until the newline arrives.
	mockLogger.EXPECT().Info("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-fragmented",
		Argv: []string{"sh", "-c", "printf part1; sleep 0.1; echo part2"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, nil, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_OverlayReachesProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("overlay-value").Times(1)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-overlay",
		Argv: []string{"sh", "-c", "echo $AIRLOCK_TEST_VAR"},
		Dir:  t.TempDir(),
	}

	overlay := []string{"AIRLOCK_TEST_VAR=overlay-value"}
	err := executor.Execute(context.Background(), cmd, overlay, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_OverlayWinsOverBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Setenv("AIRLOCK_COLLIDING_VAR", "base-value")

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("overlay-value").Times(1)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-collision",
		Argv: []string{"sh", "-c", "echo $AIRLOCK_COLLIDING_VAR"},
		Dir:  t.TempDir(),
	}

	overlay := []string{"AIRLOCK_COLLIDING_VAR=overlay-value"}
	err := executor.Execute(context.Background(), cmd, overlay, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_CommandEnvWinsOverOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("command-value").Times(1)

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-cmd-env",
		Argv: []string{"sh", "-c", "echo $AIRLOCK_LAYERED_VAR"},
		Dir:  t.TempDir(),
		Env:  map[string]string{"AIRLOCK_LAYERED_VAR": "command-value"},
	}

	overlay := []string{"AIRLOCK_LAYERED_VAR=overlay-value"}
	err := executor.Execute(context.Background(), cmd, overlay, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-fail",
		Argv: []string{"sh", "-c", "exit 42"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, nil, io.Discard, io.Discard)
	require.Error(t, err)
	require.Contains(t, err.Error(), "command failed")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	require.Equal(t, 42, meta["exit_code"])
	require.Equal(t, "test-fail", meta["command"])
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-invalid",
		Argv: []string{"nonexistent-command-xyz123"},
		Dir:  t.TempDir(),
	}

	err := executor.Execute(context.Background(), cmd, nil, io.Discard, io.Discard)
	if err == nil {
		t.Error("Execute() expected error for invalid command")
	}
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{Name: "test-empty", Dir: t.TempDir()}

	// Empty argv should return nil without error.
	err := executor.Execute(context.Background(), cmd, nil, io.Discard, io.Discard)
	if err != nil {
		t.Errorf("Execute() unexpected error for empty command: %v", err)
	}
}

func TestExecutor_Execute_StreamsVerbatimOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-streams",
		Argv: []string{"sh", "-c", "echo to-stdout; echo to-stderr 1>&2"},
		Dir:  t.TempDir(),
	}

	var stdout, stderr bytes.Buffer
	err := executor.Execute(context.Background(), cmd, nil, &stdout, &stderr)
	require.NoError(t, err)

	if !strings.Contains(stdout.String(), "to-stdout") {
		t.Errorf("stdout writer missing output, got: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "to-stderr") {
		t.Errorf("stderr writer missing output, got: %q", stderr.String())
	}
}

func TestExecutor_Execute_FailureOutputIsPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	cmd := domain.Command{
		Name: "test-diagnostics",
		Argv: []string{"sh", "-c", "echo 'cannot find module providing package example.com/x' 1>&2; exit 1"},
		Dir:  t.TempDir(),
	}

	var stderr bytes.Buffer
	err := executor.Execute(context.Background(), cmd, nil, io.Discard, &stderr)
	require.Error(t, err)

	// Tool diagnostics must pass through unmodified.
	require.Contains(t, stderr.String(), "cannot find module providing package example.com/x")
}
