// Package platform maps a raw video link or local path to a platform tag using
// the ordered rule table from rulepack. Every query is total: malformed input
// degrades to Unknown. Detect and ExtractVideoID are the strict variants that
// return coded errors
package platform

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"billnote/internal/core/locale"
	"billnote/internal/core/rulepack"
	perr "billnote/internal/platform/errors"
	"billnote/internal/platform/logger"

	"golang.org/x/text/language"
)

// Classifier evaluates a compiled rule pack. It is immutable and safe for concurrent use
type Classifier struct {
	pack *rulepack.Pack
	lang language.Tag
}

// New returns a classifier over pack that renders text in the default language
func New(pack *rulepack.Pack) *Classifier {
	return &Classifier{pack: pack, lang: locale.Default}
}

var (
	defOnce sync.Once
	def     *Classifier
)

// Default returns the classifier over the embedded rule table
func Default() *Classifier {
	defOnce.Do(func() {
		pack, err := rulepack.Load()
		if err != nil {
			logger.Named("platform").Panic().Err(err).Msg("embedded rule pack does not compile")
		}
		def = New(pack)
	})
	return def
}

// WithLanguage returns a copy rendering display names and messages in lang
func (c *Classifier) WithLanguage(lang language.Tag) *Classifier {
	cp := *c
	cp.lang = locale.Match(lang)
	return &cp
}

// Language reports the language text is rendered in
func (c *Classifier) Language() language.Tag { return c.lang }

// Classify returns the tag of the highest priority rule with a matching pattern,
// or Unknown for blank input and input no rule matches
func (c *Classifier) Classify(raw string) Tag {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Unknown
	}
	for _, r := range c.pack.Rules {
		for _, re := range r.Patterns {
			if re.MatchString(s) {
				return Tag(r.Tag)
			}
		}
	}
	return Unknown
}

var (
	driveLetter = regexp.MustCompile(`(?i)^[a-z]:[\\/]`)
	unixAbs     = regexp.MustCompile(`^/[a-zA-Z]`)
)

// hostSchemes must carry a host to count as a URL
var hostSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ws": true, "wss": true}

// IsValidFormat reports whether raw looks like a local path (file:, drive letter,
// /name) or parses as an absolute URL. It says nothing about platform support
func (c *Classifier) IsValidFormat(raw string) bool {
	if raw == "" {
		return false
	}
	if strings.HasPrefix(raw, "file:") || driveLetter.MatchString(raw) || unixAbs.MatchString(raw) {
		return true
	}
	_, ok := parseAbsolute(raw)
	return ok
}

func parseAbsolute(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return nil, false
	}
	return u, true
}

// IsSupported reports whether raw classifies to a platform that can be fetched remotely
func (c *Classifier) IsSupported(raw string) bool {
	r, ok := c.pack.Rule(string(c.Classify(raw)))
	return ok && r.Supported
}

// IsBlocked reports whether raw mentions a platform the service refuses outright
func (c *Classifier) IsBlocked(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return false
	}
	for _, kw := range c.pack.Blocked {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Known reports whether t is a tag of the rule table (Unknown never is)
func (c *Classifier) Known(t Tag) bool {
	_, ok := c.pack.Rule(string(t))
	return ok
}

// Descriptor aggregates the classifier queries for one input
type Descriptor struct {
	Tag           Tag    `json:"tag"`
	DisplayName   string `json:"display_name"`
	IsValid       bool   `json:"is_valid"`
	IsSupported   bool   `json:"is_supported"`
	OriginalInput string `json:"original_input"`
	Blocked       bool   `json:"blocked"`
}

// Describe bundles Classify, IsValidFormat, IsSupported and IsBlocked for raw
func (c *Classifier) Describe(raw string) Descriptor {
	tag := c.Classify(raw)
	return Descriptor{
		Tag:           tag,
		DisplayName:   DisplayNameIn(tag, c.lang),
		IsValid:       c.IsValidFormat(raw),
		IsSupported:   c.IsSupported(raw),
		OriginalInput: raw,
		Blocked:       c.IsBlocked(raw),
	}
}

// DisplayName renders t in the classifier's language
func (c *Classifier) DisplayName(t Tag) string { return DisplayNameIn(t, c.lang) }

// Info is the result of a successful Detect
type Info struct {
	Tag         Tag    `json:"tag"`
	DisplayName string `json:"display_name"`
	Input       string `json:"input"`
	Host        string `json:"host,omitempty"`
	Supported   bool   `json:"supported"`
}

// Detect classifies raw and rejects what cannot become a note: blank input and
// malformed links (InvalidVideoURL), blocked or unrecognized platforms (UnsupportedPlatform)
func (c *Classifier) Detect(raw string) (Info, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Info{}, perr.WithOp(perr.InvalidVideoURLf("%s", locale.T(c.lang, locale.DetectRequired)), "platform.detect")
	}
	if c.IsBlocked(s) {
		return Info{}, perr.WithOp(perr.UnsupportedPlatformf("%s", locale.T(c.lang, locale.DetectUnsupported)), "platform.detect")
	}

	tag := c.Classify(s)
	if tag == Unknown {
		if c.IsValidFormat(s) {
			return Info{}, perr.WithOp(perr.UnsupportedPlatformf("%s", locale.T(c.lang, locale.DetectUnsupported)), "platform.detect")
		}
		return Info{}, perr.WithOp(perr.InvalidVideoURLf("%s", locale.T(c.lang, locale.DetectInvalid)), "platform.detect")
	}

	info := Info{
		Tag:         tag,
		DisplayName: DisplayNameIn(tag, c.lang),
		Input:       s,
		Supported:   c.IsSupported(s),
	}
	if tag != Local {
		if u, ok := parseAbsolute(s); ok {
			info.Host = strings.ToLower(u.Hostname())
		}
	}
	return info, nil
}

// VideoRef identifies one video on a platform
type VideoRef struct {
	Platform Tag    `json:"platform"`
	VideoID  string `json:"video_id"`
}

// ExtractVideoID pulls the platform's video id out of raw. Short links that
// carry no id (b23.tv codes) fail; resolving them needs a network round trip
func (c *Classifier) ExtractVideoID(raw string) (VideoRef, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return VideoRef{}, perr.WithOp(perr.InvalidVideoURLf("%s", locale.T(c.lang, locale.DetectRequired)), "platform.video_id")
	}

	tag := c.Classify(s)
	r, ok := c.pack.Rule(string(tag))
	if !ok || len(r.VideoID) == 0 {
		return VideoRef{}, perr.WithOp(perr.UnsupportedPlatformf("%s", locale.T(c.lang, locale.VideoIDNoPlatform)), "platform.video_id")
	}
	for _, p := range r.VideoID {
		if m := p.Re.FindStringSubmatch(s); m != nil && m[1] != "" {
			return VideoRef{Platform: tag, VideoID: p.Prefix + m[1]}, nil
		}
	}
	return VideoRef{}, perr.WithOp(perr.VideoIDf("%s", locale.T(c.lang, locale.VideoIDFailed, DisplayNameIn(tag, c.lang))), "platform.video_id")
}

// Option is one entry of the manual platform picker
type Option struct {
	Value Tag    `json:"value"`
	Label string `json:"label"`
}

// Selectable lists the platforms a user may pick by hand, in rule declaration order
func (c *Classifier) Selectable() []Option {
	out := make([]Option, 0, len(c.pack.Rules))
	for _, t := range c.pack.Declared() {
		if r, _ := c.pack.Rule(t); r.Selectable {
			out = append(out, Option{Value: Tag(t), Label: DisplayNameIn(Tag(t), c.lang)})
		}
	}
	return out
}

// RuleInfo describes one rule for diagnostics
type RuleInfo struct {
	Tag        Tag      `json:"tag"`
	Priority   int      `json:"priority"`
	Supported  bool     `json:"supported"`
	Selectable bool     `json:"selectable"`
	Hosts      []string `json:"hosts,omitempty"`
	Patterns   []string `json:"patterns"`
}

// Rules lists the rule table in evaluation order
func (c *Classifier) Rules() []RuleInfo {
	out := make([]RuleInfo, 0, len(c.pack.Rules))
	for _, r := range c.pack.Rules {
		ri := RuleInfo{
			Tag:        Tag(r.Tag),
			Priority:   r.Priority,
			Supported:  r.Supported,
			Selectable: r.Selectable,
			Hosts:      r.Hosts,
		}
		for _, re := range r.Patterns {
			ri.Patterns = append(ri.Patterns, re.String())
		}
		out = append(out, ri)
	}
	return out
}

// BlockedKeywords lists the refused platform substrings
func (c *Classifier) BlockedKeywords() []string { return append([]string(nil), c.pack.Blocked...) }
