package provenance

import (
	"slices"

	"billnote/internal/core/locale"

	"golang.org/x/text/language"
)

// Source labels where a platform tag came from
type Source string

const (
	// AutoDetected means the URL itself proves the platform
	AutoDetected Source = "auto_detected"
	// UserProvided means a person picked or overrode the platform
	UserProvided Source = "user_provided"
	// Unknown is only ever inferred, never a valid assertion
	Unknown Source = "unknown"
)

func (s Source) String() string { return string(s) }

// ParseSource maps s onto a Source; ok is false for anything outside the set
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case AutoDetected, UserProvided, Unknown:
		return Source(s), true
	}
	return "", false
}

// SourceInfo is the display metadata of a Source. Priority orders display only
type SourceInfo struct {
	Source      Source `json:"source"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

type sourceMeta struct {
	label, desc locale.Key
	priority    int
}

var meta = map[Source]sourceMeta{
	AutoDetected: {locale.SourceAutoLabel, locale.SourceAutoDesc, 100},
	UserProvided: {locale.SourceUserLabel, locale.SourceUserDesc, 90},
	Unknown:      {locale.SourceUnknownLabel, locale.SourceUnknownDesc, 10},
}

// InfoIn returns display metadata for s in lang; unrecognized sources get the Unknown entry
func InfoIn(s Source, lang language.Tag) SourceInfo {
	m, ok := meta[s]
	if !ok {
		s, m = Unknown, meta[Unknown]
	}
	return SourceInfo{
		Source:      s,
		Label:       locale.T(lang, m.label),
		Description: locale.T(lang, m.desc),
		Priority:    m.priority,
	}
}

// AllIn lists every Source in lang, highest priority first
func AllIn(lang language.Tag) []SourceInfo {
	out := make([]SourceInfo, 0, len(meta))
	for s := range meta {
		out = append(out, InfoIn(s, lang))
	}
	slices.SortFunc(out, func(a, b SourceInfo) int { return b.Priority - a.Priority })
	return out
}
