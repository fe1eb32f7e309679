// Package modkit wires API modules: shared deps, build options and the module contract
package modkit

import (
	phttp "billnote/internal/platform/net/http"
)

// Module is the surface every API module exposes to the composition root
type Module interface {
	// MountRoutes mounts the module under its prefix on r
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross wiring, or nil
	Ports() any
	// Name returns the module name used in logs and the port registry
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
