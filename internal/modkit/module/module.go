// Package module holds the module contract and the port registry used during composition
package module

import (
	phttp "billnote/internal/platform/net/http"
)

// Module mirrors modkit.Module; kept here so port owners avoid importing modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
