// Package provenance decides whether a platform tag on a note form was derived
// from the URL or asserted by a person, and validates such claims against the
// classifier's evidence. All operations are total and keep no state between calls
package provenance

import (
	"strings"
	"sync"

	"billnote/internal/core/locale"
	"billnote/internal/core/platform"

	"golang.org/x/text/language"
)

// Handler runs provenance operations through a Strategy
type Handler struct {
	strategy Strategy
	lang     language.Tag
}

// Option configures a Handler
type Option func(*Handler)

// WithStrategy replaces the Evidence strategy
func WithStrategy(s Strategy) Option {
	return func(h *Handler) {
		if s != nil {
			h.strategy = s
		}
	}
}

// WithLanguage sets the language of labels and messages
func WithLanguage(lang language.Tag) Option {
	return func(h *Handler) { h.lang = locale.Match(lang) }
}

// NewHandler builds a handler over the default classifier unless WithStrategy says otherwise
func NewHandler(opts ...Option) *Handler {
	h := &Handler{lang: locale.Default}
	for _, o := range opts {
		o(h)
	}
	if h.strategy == nil {
		h.strategy = NewEvidence(platform.Default())
	}
	return h.localize()
}

func (h *Handler) localize() *Handler {
	if l, ok := h.strategy.(Localizer); ok {
		h.strategy = l.WithLanguage(h.lang)
	}
	return h
}

// In returns a copy of h speaking lang
func (h *Handler) In(lang language.Tag) *Handler {
	cp := &Handler{strategy: h.strategy, lang: locale.Match(lang)}
	return cp.localize()
}

// Language reports the handler language
func (h *Handler) Language() language.Tag { return h.lang }

// Resolve labels the provenance of asserted for url; pass "" when no platform was asserted
func (h *Handler) Resolve(url string, asserted platform.Tag) Source {
	return h.strategy.DetectSource(url, asserted)
}

// Validate checks that src is a claim url and tag can back
func (h *Handler) Validate(url string, tag platform.Tag, src Source) Result {
	return h.strategy.ValidateSource(url, tag, src)
}

// Description returns the strategy's description of src
func (h *Handler) Description(src Source) string { return h.strategy.DescribeSource(src) }

// DisplayInfo returns label, description and priority for src
func (h *Handler) DisplayInfo(src Source) SourceInfo {
	info := InfoIn(src, h.lang)
	info.Description = h.strategy.DescribeSource(info.Source)
	return info
}

// Sources lists every source, highest priority first
func (h *Handler) Sources() []SourceInfo {
	out := AllIn(h.lang)
	for i := range out {
		out[i].Description = h.strategy.DescribeSource(out[i].Source)
	}
	return out
}

// AugmentForm returns a copy of f with PlatformSource resolved from its URL and platform
func (h *Handler) AugmentForm(f Form) Form {
	out := f.clone()
	if strings.TrimSpace(f.VideoURL) == "" {
		out.PlatformSource = Unknown
		return out
	}
	out.PlatformSource = h.Resolve(f.VideoURL, f.Platform)
	return out
}

// ValidateForm requires url, platform and source in that order, reporting only
// the first missing one, then validates the provenance claim. Whitespace-only
// urls are missing
func (h *Handler) ValidateForm(f Form) FormValidation {
	switch {
	case strings.TrimSpace(f.VideoURL) == "":
		return invalid(locale.T(h.lang, locale.FormURLRequired))
	case f.Platform == "":
		return invalid(locale.T(h.lang, locale.FormPlatformRequired))
	case f.PlatformSource == "":
		return invalid(locale.T(h.lang, locale.FormSourceRequired))
	}

	res := h.Validate(f.VideoURL, f.Platform, f.PlatformSource)
	if !res.Valid {
		msg := res.Message
		if msg == "" {
			msg = locale.T(h.lang, locale.FormFailed)
		}
		return invalid(msg)
	}
	return FormValidation{IsValid: true, Errors: []string{}}
}

func invalid(msg string) FormValidation {
	return FormValidation{Errors: []string{msg}}
}

// Default returns the shared handler over the default classifier
var Default = sync.OnceValue(func() *Handler { return NewHandler() })

// Resolve is Default().Resolve
func Resolve(url string, asserted platform.Tag) Source { return Default().Resolve(url, asserted) }

// Validate is Default().Validate
func Validate(url string, tag platform.Tag, src Source) Result {
	return Default().Validate(url, tag, src)
}

// AugmentForm is Default().AugmentForm
func AugmentForm(f Form) Form { return Default().AugmentForm(f) }

// ValidateForm is Default().ValidateForm
func ValidateForm(f Form) FormValidation { return Default().ValidateForm(f) }
