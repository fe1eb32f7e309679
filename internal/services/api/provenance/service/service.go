// Package service runs provenance operations in the caller's language
package service

import (
	"context"

	"billnote/internal/core/locale"
	"billnote/internal/core/provenance"
	"billnote/internal/platform/logger"
	pnet "billnote/internal/platform/net"
	"billnote/internal/services/api/provenance/domain"
)

// Service is the provenance service contract
type Service interface {
	domain.ServicePort
}

// Svc implements Service over a provenance handler
type Svc struct {
	h *provenance.Handler
}

// New constructs the service; h must not be nil
func New(h *provenance.Handler) *Svc {
	if h == nil {
		panic("provenance.Service requires a handler")
	}
	return &Svc{h: h}
}

func (s *Svc) in(ctx context.Context) *provenance.Handler {
	return s.h.In(pnet.Locale(ctx, locale.Default))
}

// Resolve labels the platform source
func (s *Svc) Resolve(ctx context.Context, in domain.ResolveInput) domain.ResolveOutput {
	h := s.in(ctx)
	src := h.Resolve(in.VideoURL, in.Platform)
	return domain.ResolveOutput{PlatformSource: src, Info: h.DisplayInfo(src)}
}

// Validate checks a provenance claim
func (s *Svc) Validate(ctx context.Context, in domain.ValidateInput) provenance.Result {
	res := s.in(ctx).Validate(in.VideoURL, in.Platform, in.PlatformSource)
	if !res.Valid {
		logger.C(ctx).Debug().
			Str("reason", string(res.Reason)).
			Str("platform", in.Platform.String()).
			Str("source", in.PlatformSource.String()).
			Msg("provenance claim rejected")
	}
	return res
}

// Sources lists every source label
func (s *Svc) Sources(ctx context.Context) []provenance.SourceInfo { return s.in(ctx).Sources() }

// Source returns one source label
func (s *Svc) Source(ctx context.Context, q domain.SourceQuery) provenance.SourceInfo {
	return s.in(ctx).DisplayInfo(q.Source)
}

// AugmentForm fills platform_source
func (s *Svc) AugmentForm(ctx context.Context, f provenance.Form) provenance.Form {
	return s.in(ctx).AugmentForm(f)
}

// ValidateForm validates a note form
func (s *Svc) ValidateForm(ctx context.Context, f provenance.Form) provenance.FormValidation {
	return s.in(ctx).ValidateForm(f)
}
