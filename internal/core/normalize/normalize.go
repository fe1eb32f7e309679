// Package normalize cleans pasted video links before classification
// Pipeline order
// 1 drop control characters and invalid UTF-8
// 2 Unicode NFKC normalization
// 3 Remove format characters (zero-width space, joiners, BOM)
// 4 Width fold fullwidth forms to ASCII
// 5 Trim surrounding whitespace
//
// Case is preserved: video ids are case sensitive
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Link returns the cleaned form of a pasted link or path
func Link(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}
	return strings.TrimSpace(ns)
}

// Changed reports whether Link would rewrite s
func Changed(s string) bool { return Link(s) != s }
