// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lockcmp/internal/adapters/cargo"
	_ "go.trai.ch/lockcmp/internal/adapters/config"
	_ "go.trai.ch/lockcmp/internal/adapters/logger"
	_ "go.trai.ch/lockcmp/internal/adapters/source"
	_ "go.trai.ch/lockcmp/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/lockcmp/internal/app"
	_ "go.trai.ch/lockcmp/internal/engine/reconciler"
)
