// Package http provides http transport for platform classification
package http

import (
	stdhttp "net/http"

	"billnote/internal/modkit/httpkit"
	"billnote/internal/services/api/platform/domain"
	svc "billnote/internal/services/api/platform/service"
)

// Register mounts the routes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/classify", h.classify)
	httpkit.PostJSON(r, "/describe", h.describe)
	httpkit.PostJSON(r, "/detect", h.detect)
	httpkit.PostJSON(r, "/video-id", h.videoID)
	httpkit.PostJSON(r, "/normalize", h.normalize)
	httpkit.Get(r, "/selectable", h.selectable)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /platform/classify Platform classify
// @Summary Classify a link or local path
// @Tags Platform
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Input"
// @Success 200 {object} domain.ClassifyOutput "ok"
// @Router /platform/classify [post]
func (h *handlers) classify(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Classify(r.Context(), in), nil
}

// @Summary Classification, validity and support in one call
// @Tags Platform
// @Param payload body domain.Input true "Input"
// @Success 200 {object} platform.Descriptor "ok"
// @Router /platform/describe [post]
func (h *handlers) describe(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Describe(r.Context(), in), nil
}

// @Summary Strict detection
// @Tags Platform
// @Param payload body domain.Input true "Input"
// @Success 200 {object} platform.Info "ok"
// @Failure 400 {object} httpkit.Envelope "blank or malformed link"
// @Failure 422 {object} httpkit.Envelope "unsupported platform"
// @Router /platform/detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// @Summary Extract the platform video id
// @Tags Platform
// @Param payload body domain.Input true "Input"
// @Success 200 {object} platform.VideoRef "ok"
// @Failure 422 {object} httpkit.Envelope "no id or unsupported platform"
// @Router /platform/video-id [post]
func (h *handlers) videoID(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.VideoID(r.Context(), in)
}

// @Summary Clean a pasted link (zero-width and fullwidth characters) and classify it
// @Tags Platform
// @Param payload body domain.Input true "Input"
// @Success 200 {object} domain.NormalizeOutput "ok"
// @Router /platform/normalize [post]
func (h *handlers) normalize(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.svc.Normalize(r.Context(), in), nil
}

// @Summary Platforms offered for manual selection
// @Tags Platform
// @Success 200 {array} platform.Option "ok"
// @Router /platform/selectable [get]
func (h *handlers) selectable(r *stdhttp.Request) (any, error) {
	return h.svc.Selectable(r.Context()), nil
}
