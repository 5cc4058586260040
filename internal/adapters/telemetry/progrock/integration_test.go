package progrock_test

import (
	"context"
	"testing"

	"github.com/airgapci/airlock/internal/adapters/telemetry/progrock"
	"github.com/airgapci/airlock/internal/core/domain"
	"github.com/airgapci/airlock/internal/core/ports"
	"github.com/stretchr/testify/require"
)

func TestRecorder_StepLifecycle(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "build")

	carried, ok := ports.VertexFromContext(ctx)
	require.True(t, ok, "vertex must be reachable through the context")
	require.Same(t, vertex, carried)

	_, err := vertex.Stdout().Write([]byte("go: using cached modules\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("warning\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelInfo, "build finished")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_InternalVertex(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "housekeeping", ports.WithInternal())
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}
