// Package module wires platform classification into the API
package module

import (
	"net/http"

	"billnote/internal/modkit"
	"billnote/internal/modkit/httpkit"
	str "billnote/internal/platform/strings"
	platformhttp "billnote/internal/services/api/platform/http"
	platformsvc "billnote/internal/services/api/platform/service"
)

// Ports is what the platform module exports
type Ports struct {
	Service *platformsvc.Svc
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *platformsvc.Svc
}

// New constructs the platform module over deps.Classifier
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps = deps.WithDefaults()
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("platform"),
		modkit.WithPrefix("/platform"),
	}, opts...)...)
	return &Module{b: b, svc: platformsvc.New(deps.Classifier)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { platformhttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares returns the per module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Ports implements modkit.Module
func (m *Module) Ports() any { return Ports{Service: m.svc} }
