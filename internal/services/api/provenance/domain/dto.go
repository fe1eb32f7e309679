// Package domain holds DTOs and ports for the provenance module
package domain

import (
	"context"

	"billnote/internal/core/platform"
	"billnote/internal/core/provenance"
)

// ResolveInput asks where a platform tag came from; Platform may be omitted
type ResolveInput struct {
	VideoURL string       `json:"video_url" validate:"max=4096"                 example:"https://example.com/video/123"`
	Platform platform.Tag `json:"platform"  validate:"omitempty,platform_tag"   example:"bilibili"`
}

// ResolveOutput is the resolved source and its display metadata
type ResolveOutput struct {
	PlatformSource provenance.Source     `json:"platform_source" example:"user_provided"`
	Info           provenance.SourceInfo `json:"info"`
}

// ValidateInput is a provenance claim. Any source value is accepted; unknown
// values come back as an invalid_source result rather than a 400
type ValidateInput struct {
	VideoURL       string            `json:"video_url"       validate:"max=4096"`
	Platform       platform.Tag      `json:"platform"        validate:"omitempty,platform_tag" example:"bilibili"`
	PlatformSource provenance.Source `json:"platform_source" validate:"max=64"                 example:"auto_detected"`
}

// SourceQuery selects one source label
type SourceQuery struct {
	Source provenance.Source `json:"source" validate:"required,platform_source" example:"auto_detected"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Resolve(ctx context.Context, in ResolveInput) ResolveOutput
	Validate(ctx context.Context, in ValidateInput) provenance.Result
	Sources(ctx context.Context) []provenance.SourceInfo
	Source(ctx context.Context, q SourceQuery) provenance.SourceInfo
	AugmentForm(ctx context.Context, f provenance.Form) provenance.Form
	ValidateForm(ctx context.Context, f provenance.Form) provenance.FormValidation
}
