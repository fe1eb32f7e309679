// Package module wires source provenance into the API
package module

import (
	"net/http"

	"billnote/internal/core/platform"
	"billnote/internal/core/provenance"
	"billnote/internal/modkit"
	"billnote/internal/modkit/httpkit"
	str "billnote/internal/platform/strings"
	provhttp "billnote/internal/services/api/provenance/http"
	provsvc "billnote/internal/services/api/provenance/service"
)

// Imports are the ports this module consumes. A nil Classifier falls back to deps
type Imports struct {
	Classifier *platform.Classifier
}

// Ports is what the provenance module exports
type Ports struct {
	Service *provsvc.Svc
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *provsvc.Svc
}

// New constructs the provenance module. Pass modkit.WithPorts(Imports{...}) to
// resolve against another module's classifier
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps = deps.WithDefaults()
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("provenance"),
		modkit.WithPrefix("/provenance"),
	}, opts...)...)

	h := deps.Provenance
	if imp, ok := b.Ports.(Imports); ok && imp.Classifier != nil {
		h = provenance.NewHandler(provenance.WithStrategy(provenance.NewEvidence(imp.Classifier)))
	}
	return &Module{b: b, svc: provsvc.New(h)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { provhttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the mount prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares returns the per module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Ports implements modkit.Module
func (m *Module) Ports() any { return Ports{Service: m.svc} }
