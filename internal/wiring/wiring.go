// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.heftrun.dev/heft/internal/adapters/config"
	_ "go.heftrun.dev/heft/internal/adapters/logger"
	_ "go.heftrun.dev/heft/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.heftrun.dev/heft/internal/app"
)
