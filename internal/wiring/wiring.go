// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/airgapci/airlock/internal/adapters/config"
	_ "github.com/airgapci/airlock/internal/adapters/envfile"
	_ "github.com/airgapci/airlock/internal/adapters/fs"
	_ "github.com/airgapci/airlock/internal/adapters/logger"
	_ "github.com/airgapci/airlock/internal/adapters/netprobe"
	_ "github.com/airgapci/airlock/internal/adapters/report"
	_ "github.com/airgapci/airlock/internal/adapters/shell"
	_ "github.com/airgapci/airlock/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/airgapci/airlock/internal/app"
	_ "github.com/airgapci/airlock/internal/engine/pipeline"
)
