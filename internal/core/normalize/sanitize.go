package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops what never belongs inside a link: ASCII and C1 controls
// (tabs and line breaks included), DEL and invalid UTF-8 bytes.
// Returns s unchanged when nothing needs cleaning
func Sanitize(s string) string {
	n := len(s)
	i := 0
	for i < n {
		b := s[i]
		if b < 0x20 || b == 0x7F {
			break
		}
		if b < 0x80 {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || (r >= 0x80 && r <= 0x9F) {
			break
		}
		i += size
	}
	if i == n {
		return s
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(s[:i])
	for i < n {
		c := s[i]
		if c < 0x20 || c == 0x7F {
			i++
			continue
		}
		if c < 0x80 {
			b.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || (r >= 0x80 && r <= 0x9F) {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}
