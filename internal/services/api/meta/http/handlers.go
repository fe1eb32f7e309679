// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"billnote/internal/core/version"
	"billnote/internal/modkit/httpkit"
	perr "billnote/internal/platform/errors"
	platformdomain "billnote/internal/services/api/platform/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time

	// Rules is optional; /rules answers 404 without it
	Rules platformdomain.RulesPort
	// Modules lists mounted module names
	Modules func() []string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/rules", h.rules)
	httpkit.Get(r, "/modules", h.modules)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"billnote-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"billnote-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ModulesResponse lists mounted modules
type ModulesResponse struct {
	Modules []string `json:"modules" example:"meta,platform,provenance"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Loaded platform rule table and blocked keywords
// @Tags Meta
// @Produce json
// @Success 200 {object} platformdomain.RulesOutput "ok"
// @Failure 404 {object} httpkit.Envelope "platform module not mounted"
// @Router /meta/rules [get]
func (h *handlers) rules(r *http.Request) (any, error) {
	if h.deps.Rules == nil {
		return nil, perr.NotFoundf("platform rules are not available")
	}
	return h.deps.Rules.Rules(r.Context()), nil
}

// @Summary Mounted modules
// @Tags Meta
// @Produce json
// @Success 200 {object} ModulesResponse "ok"
// @Router /meta/modules [get]
func (h *handlers) modules(_ *http.Request) (any, error) {
	var names []string
	if h.deps.Modules != nil {
		names = h.deps.Modules()
	}
	if names == nil {
		names = []string{}
	}
	return ModulesResponse{Modules: names}, nil
}
