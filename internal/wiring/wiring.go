// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depscope/internal/adapters/logger"
	_ "go.trai.ch/depscope/internal/adapters/msbuild"
	// Register app nodes.
	_ "go.trai.ch/depscope/internal/app"
)
