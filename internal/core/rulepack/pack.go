// Package rulepack loads the embedded platform rule table and compiles its patterns.
// Rules come back ordered by descending priority; equal priorities keep declaration order
package rulepack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
)

//go:embed rules.json
var embedded []byte

type rawPlatform struct {
	Tag           string   `json:"tag"`
	Priority      int      `json:"priority"`
	Supported     bool     `json:"supported"`
	Selectable    bool     `json:"selectable"`
	Hosts         []string `json:"hosts"`
	Patterns      []string `json:"patterns"`
	VideoID       []string `json:"video_id"`
	VideoIDPrefix []string `json:"video_id_prefix"`
}

type rawPack struct {
	Version   int           `json:"version"`
	Platforms []rawPlatform `json:"platforms"`
	Blocked   []string      `json:"blocked_keywords"`
}

// Rule is one compiled platform rule
type Rule struct {
	Tag        string
	Priority   int
	Supported  bool // remote fetch is possible for this platform
	Selectable bool // offered as a manual override choice
	Hosts      []string
	Patterns   []*regexp.Regexp
	VideoID    []IDPattern
}

// IDPattern extracts a video id from the first capture group; Prefix is prepended
type IDPattern struct {
	Re     *regexp.Regexp
	Prefix string
}

// Pack is the compiled rule table
type Pack struct {
	Version int
	Rules   []Rule   // descending priority
	Blocked []string // lowercased substrings
	order   []string // declaration order of tags
}

// Load compiles the embedded rules.json
func Load() (*Pack, error) { return Parse(embedded) }

// LoadFile compiles the rule table at path; an empty path loads the embedded one
func LoadFile(path string) (*Pack, error) {
	if strings.TrimSpace(path) == "" {
		return Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulepack: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles a rule table from JSON
func Parse(data []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(data, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("rulepack: unsupported rules version %d (want 1)", rp.Version)
	}
	if len(rp.Platforms) == 0 {
		return nil, fmt.Errorf("rulepack: no platforms declared")
	}

	p := &Pack{Version: rp.Version}
	seen := make(map[string]struct{}, len(rp.Platforms))
	for i, raw := range rp.Platforms {
		r, err := compile(raw)
		if err != nil {
			return nil, fmt.Errorf("rulepack: platform #%d: %w", i, err)
		}
		if _, dup := seen[r.Tag]; dup {
			return nil, fmt.Errorf("rulepack: duplicate platform %q", r.Tag)
		}
		seen[r.Tag] = struct{}{}
		p.Rules = append(p.Rules, r)
		p.order = append(p.order, r.Tag)
	}
	slices.SortStableFunc(p.Rules, func(a, b Rule) int { return b.Priority - a.Priority })

	for _, kw := range rp.Blocked {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" && !slices.Contains(p.Blocked, kw) {
			p.Blocked = append(p.Blocked, kw)
		}
	}
	return p, nil
}

func compile(raw rawPlatform) (Rule, error) {
	tag := strings.ToLower(strings.TrimSpace(raw.Tag))
	switch tag {
	case "":
		return Rule{}, fmt.Errorf("empty tag")
	case "unknown":
		return Rule{}, fmt.Errorf("tag %q is reserved for the fallback", tag)
	}
	if len(raw.Patterns) == 0 {
		return Rule{}, fmt.Errorf("%s: no patterns", tag)
	}

	r := Rule{
		Tag:        tag,
		Priority:   raw.Priority,
		Supported:  raw.Supported,
		Selectable: raw.Selectable,
		Hosts:      raw.Hosts,
	}
	for _, src := range raw.Patterns {
		re, err := regexp.Compile(src)
		if err != nil {
			return Rule{}, fmt.Errorf("%s: pattern %q: %w", tag, src, err)
		}
		r.Patterns = append(r.Patterns, re)
	}
	for i, src := range raw.VideoID {
		re, err := regexp.Compile(src)
		if err != nil {
			return Rule{}, fmt.Errorf("%s: video id pattern %q: %w", tag, src, err)
		}
		if re.NumSubexp() < 1 {
			return Rule{}, fmt.Errorf("%s: video id pattern %q needs a capture group", tag, src)
		}
		idp := IDPattern{Re: re}
		if i < len(raw.VideoIDPrefix) {
			idp.Prefix = raw.VideoIDPrefix[i]
		}
		r.VideoID = append(r.VideoID, idp)
	}
	return r, nil
}

// Rule returns the rule for tag
func (p *Pack) Rule(tag string) (Rule, bool) {
	for _, r := range p.Rules {
		if r.Tag == tag {
			return r, true
		}
	}
	return Rule{}, false
}

// Declared returns tags in declaration order
func (p *Pack) Declared() []string { return slices.Clone(p.order) }
