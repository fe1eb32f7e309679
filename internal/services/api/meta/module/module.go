// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"

	"billnote/internal/modkit"
	"billnote/internal/modkit/httpkit"
	"billnote/internal/modkit/module"
	str "billnote/internal/platform/strings"
	metahttp "billnote/internal/services/api/meta/http"
	platformdomain "billnote/internal/services/api/platform/domain"
)

// Imports are the optional ports meta reports on
type Imports struct {
	Rules platformdomain.RulesPort
}

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps = deps.WithDefaults()
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	hd := metahttp.Deps{
		ServiceName: deps.Service,
		StartedAt:   deps.StartedAt,
		Modules:     module.Names,
	}
	if imp, ok := b.Ports.(Imports); ok {
		hd.Rules = imp.Rules
	}
	return &Module{b: b, deps: hd}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
