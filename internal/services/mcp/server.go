// Package mcp exposes platform classification and source provenance as
// read-only Model Context Protocol tools
package mcp

import (
	"context"
	"fmt"
	"strings"

	"billnote/internal/core/locale"
	"billnote/internal/core/platform"
	"billnote/internal/core/provenance"
	perr "billnote/internal/platform/errors"
	"billnote/internal/platform/logger"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"
)

// Options configures NewServer
type Options struct {
	Classifier *platform.Classifier // nil uses the embedded rule table
	Version    string
}

// LinkInput is the argument of the single-link tools
type LinkInput struct {
	Input    string `json:"input" jsonschema:"video link or local file path"`
	Language string `json:"language,omitempty" jsonschema:"response language: en (default) or zh"`
}

// ResolveInput asks where a platform tag came from
type ResolveInput struct {
	VideoURL string `json:"video_url" jsonschema:"video link or local file path"`
	Platform string `json:"platform,omitempty" jsonschema:"platform tag the user asserted, omit when none"`
	Language string `json:"language,omitempty" jsonschema:"response language: en (default) or zh"`
}

// ResolveOutput is the resolved source with its label
type ResolveOutput struct {
	PlatformSource provenance.Source     `json:"platform_source"`
	Info           provenance.SourceInfo `json:"info"`
}

// ValidateInput is a provenance claim
type ValidateInput struct {
	VideoURL       string `json:"video_url" jsonschema:"video link or local file path"`
	Platform       string `json:"platform" jsonschema:"platform tag"`
	PlatformSource string `json:"platform_source" jsonschema:"auto_detected, user_provided or unknown"`
	Language       string `json:"language,omitempty" jsonschema:"response language: en (default) or zh"`
}

// ListInput only picks the label language
type ListInput struct {
	Language string `json:"language,omitempty" jsonschema:"response language: en (default) or zh"`
}

// ListOutput is the manual selection catalog
type ListOutput struct {
	Platforms []platform.Option `json:"platforms"`
}

type tools struct {
	c *platform.Classifier
	h *provenance.Handler
}

// NewServer builds an MCP server with every tool registered
func NewServer(o Options) *sdk.Server {
	c := o.Classifier
	if c == nil {
		c = platform.Default()
	}
	version := o.Version
	if version == "" {
		version = "dev"
	}

	t := &tools{
		c: c,
		h: provenance.NewHandler(provenance.WithStrategy(provenance.NewEvidence(c))),
	}
	s := sdk.NewServer(&sdk.Implementation{Name: "billnote", Version: version}, nil)
	t.register(s)
	return s
}

func (t *tools) register(s *sdk.Server) {
	readOnly := &sdk.ToolAnnotations{ReadOnlyHint: true}

	sdk.AddTool(s, &sdk.Tool{
		Name:        "classify_video_link",
		Description: "Classify a video link or local path as bilibili, youtube, local or unknown, with format validity, fetch support and blocked-domain flags.",
		Annotations: readOnly,
	}, t.classify)

	sdk.AddTool(s, &sdk.Tool{
		Name:        "detect_video_platform",
		Description: "Strict detection: returns the platform and host, or an error for blank, malformed, blocked or unsupported links.",
		Annotations: readOnly,
	}, t.detect)

	sdk.AddTool(s, &sdk.Tool{
		Name:        "extract_video_id",
		Description: "Extract the platform video id (BV/av ids for bilibili, 11 character ids for youtube).",
		Annotations: readOnly,
	}, t.videoID)

	sdk.AddTool(s, &sdk.Tool{
		Name:        "list_platforms",
		Description: "Platforms a user may pick manually, in display order.",
		Annotations: readOnly,
	}, t.list)

	sdk.AddTool(s, &sdk.Tool{
		Name:        "resolve_platform_source",
		Description: "Label whether a platform tag was auto_detected from the link, user_provided, or unknown.",
		Annotations: readOnly,
	}, t.resolve)

	sdk.AddTool(s, &sdk.Tool{
		Name:        "validate_platform_source",
		Description: "Check that a platform source claim is backed by the link; failures come back as is_valid=false with a reason.",
		Annotations: readOnly,
	}, t.validate)
}

// lang falls back to the default language on blank or malformed tags
func lang(s string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return locale.Default
	}
	return locale.Match(tag)
}

// toolErr renders a coded error as "CODE: message" for the tool result
func toolErr(err error) error {
	w := perr.WireFrom(err)
	return fmt.Errorf("%s: %s", w.Code, w.Message)
}

func called(ctx context.Context, tool string) {
	logger.C(ctx).Debug().Str("component", "mcp").Str("tool", tool).Msg("tool call")
}

func (t *tools) classify(ctx context.Context, _ *sdk.CallToolRequest, in LinkInput) (*sdk.CallToolResult, platform.Descriptor, error) {
	called(ctx, "classify_video_link")
	return nil, t.c.WithLanguage(lang(in.Language)).Describe(in.Input), nil
}

func (t *tools) detect(ctx context.Context, _ *sdk.CallToolRequest, in LinkInput) (*sdk.CallToolResult, platform.Info, error) {
	called(ctx, "detect_video_platform")
	info, err := t.c.WithLanguage(lang(in.Language)).Detect(in.Input)
	if err != nil {
		return nil, platform.Info{}, toolErr(err)
	}
	return nil, info, nil
}

func (t *tools) videoID(ctx context.Context, _ *sdk.CallToolRequest, in LinkInput) (*sdk.CallToolResult, platform.VideoRef, error) {
	called(ctx, "extract_video_id")
	ref, err := t.c.WithLanguage(lang(in.Language)).ExtractVideoID(in.Input)
	if err != nil {
		return nil, platform.VideoRef{}, toolErr(err)
	}
	return nil, ref, nil
}

func (t *tools) list(ctx context.Context, _ *sdk.CallToolRequest, in ListInput) (*sdk.CallToolResult, ListOutput, error) {
	called(ctx, "list_platforms")
	return nil, ListOutput{Platforms: t.c.WithLanguage(lang(in.Language)).Selectable()}, nil
}

func (t *tools) resolve(ctx context.Context, _ *sdk.CallToolRequest, in ResolveInput) (*sdk.CallToolResult, ResolveOutput, error) {
	called(ctx, "resolve_platform_source")
	h := t.h.In(lang(in.Language))
	src := h.Resolve(in.VideoURL, platform.Tag(strings.TrimSpace(in.Platform)))
	return nil, ResolveOutput{PlatformSource: src, Info: h.DisplayInfo(src)}, nil
}

func (t *tools) validate(ctx context.Context, _ *sdk.CallToolRequest, in ValidateInput) (*sdk.CallToolResult, provenance.Result, error) {
	called(ctx, "validate_platform_source")
	res := t.h.In(lang(in.Language)).Validate(in.VideoURL, platform.Tag(in.Platform), provenance.Source(in.PlatformSource))
	return nil, res, nil
}
