package provenance

import (
	"strings"

	"billnote/internal/core/locale"
	"billnote/internal/core/platform"

	"golang.org/x/text/language"
)

// Reason classifies a failed validation
type Reason string

const (
	ReasonMissingField  Reason = "missing_field"
	ReasonMismatch      Reason = "mismatch"
	ReasonUnsupported   Reason = "unsupported_platform"
	ReasonInvalidSource Reason = "invalid_source"
)

// Result is the outcome of a provenance validation. Message is set iff Valid is false
type Result struct {
	Valid   bool   `json:"is_valid"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"error_message,omitempty"`
}

func ok() Result { return Result{Valid: true} }

func fail(r Reason, msg string) Result { return Result{Reason: r, Message: msg} }

// Strategy decides and checks provenance. Implementations must be total
type Strategy interface {
	DetectSource(url string, asserted platform.Tag) Source
	ValidateSource(url string, tag platform.Tag, src Source) Result
	DescribeSource(src Source) string
}

// Localizer is implemented by strategies whose messages follow a language
type Localizer interface {
	WithLanguage(lang language.Tag) Strategy
}

// Evidence is the default Strategy: a platform tag counts as auto detected
// only when the classifier derives the same tag from the URL
type Evidence struct {
	c *platform.Classifier
}

// NewEvidence returns an Evidence strategy over c
func NewEvidence(c *platform.Classifier) *Evidence { return &Evidence{c: c} }

// WithLanguage implements Localizer
func (e *Evidence) WithLanguage(lang language.Tag) Strategy {
	return &Evidence{c: e.c.WithLanguage(lang)}
}

// DetectSource labels asserted against the evidence in url. An empty asserted
// tag means none was given
func (e *Evidence) DetectSource(url string, asserted platform.Tag) Source {
	if strings.TrimSpace(url) == "" {
		return Unknown
	}
	detected := e.c.Classify(url)
	if asserted != "" {
		if detected == asserted && detected != platform.Unknown {
			return AutoDetected
		}
		return UserProvided
	}
	if detected != platform.Unknown {
		return AutoDetected
	}
	return Unknown
}

// ValidateSource checks that src is a claim the url and tag can back. A url
// of only whitespace counts as missing
func (e *Evidence) ValidateSource(url string, tag platform.Tag, src Source) Result {
	lang := e.c.Language()
	if strings.TrimSpace(url) == "" || tag == "" {
		return fail(ReasonMissingField, locale.T(lang, locale.ValidateMissing))
	}

	switch src {
	case AutoDetected:
		detected := e.c.Classify(url)
		if detected == platform.Unknown {
			return fail(ReasonMismatch, locale.T(lang, locale.ValidateNoEvidence))
		}
		if detected != tag {
			return fail(ReasonMismatch, locale.T(lang, locale.ValidateMismatch, detected, tag))
		}
		return ok()
	case UserProvided:
		if !e.c.Known(tag) {
			return fail(ReasonUnsupported, locale.T(lang, locale.ValidateUnsupported, tag))
		}
		return ok()
	default:
		return fail(ReasonInvalidSource, locale.T(lang, locale.ValidateInvalidSource))
	}
}

// DescribeSource returns the description of src
func (e *Evidence) DescribeSource(src Source) string {
	return InfoIn(src, e.c.Language()).Description
}
