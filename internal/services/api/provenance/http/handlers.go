// Package http provides http transport for source provenance
package http

import (
	stdhttp "net/http"

	"billnote/internal/core/provenance"
	"billnote/internal/modkit/httpkit"
	"billnote/internal/services/api/provenance/domain"
	svc "billnote/internal/services/api/provenance/service"
)

// Register mounts the routes
func Register(r httpkit.Router, s svc.Service) {
	registerTags()

	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/resolve", h.resolve)
	httpkit.PostJSON(r, "/validate", h.validate)
	httpkit.Get(r, "/sources", h.sources)
	httpkit.PostJSON(r, "/sources/info", h.source)
	httpkit.PostJSON(r, "/forms/augment", h.augment)
	httpkit.PostJSON(r, "/forms/validate", h.validateForm)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /provenance/resolve Provenance resolve
// @Summary Label where a platform tag came from
// @Tags Provenance
// @Accept json
// @Produce json
// @Param payload body domain.ResolveInput true "Resolve"
// @Success 200 {object} domain.ResolveOutput "ok"
// @Router /provenance/resolve [post]
func (h *handlers) resolve(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	return h.svc.Resolve(r.Context(), in), nil
}

// @Summary Check a provenance claim
// @Description Failed checks are 200 responses with is_valid=false
// @Tags Provenance
// @Param payload body domain.ValidateInput true "Claim"
// @Success 200 {object} provenance.Result "ok"
// @Router /provenance/validate [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	return h.svc.Validate(r.Context(), in), nil
}

// @Summary Source labels, highest priority first
// @Tags Provenance
// @Success 200 {array} provenance.SourceInfo "ok"
// @Router /provenance/sources [get]
func (h *handlers) sources(r *stdhttp.Request) (any, error) {
	return h.svc.Sources(r.Context()), nil
}

// @Summary One source label
// @Tags Provenance
// @Param payload body domain.SourceQuery true "Source"
// @Success 200 {object} provenance.SourceInfo "ok"
// @Router /provenance/sources/info [post]
func (h *handlers) source(r *stdhttp.Request, q domain.SourceQuery) (any, error) {
	return h.svc.Source(r.Context(), q), nil
}

// @Summary Fill platform_source on a note form; other fields pass through
// @Tags Provenance
// @Param payload body provenance.Form true "Form"
// @Success 200 {object} provenance.Form "ok"
// @Router /provenance/forms/augment [post]
func (h *handlers) augment(r *stdhttp.Request, f provenance.Form) (any, error) {
	return h.svc.AugmentForm(r.Context(), f), nil
}

// @Summary Validate a note form
// @Tags Provenance
// @Param payload body provenance.Form true "Form"
// @Success 200 {object} provenance.FormValidation "ok"
// @Router /provenance/forms/validate [post]
func (h *handlers) validateForm(r *stdhttp.Request, f provenance.Form) (any, error) {
	return h.svc.ValidateForm(r.Context(), f), nil
}
