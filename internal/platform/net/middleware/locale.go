package middleware

import (
	"net/http"

	"billnote/internal/platform/logger"
	pnet "billnote/internal/platform/net"

	"golang.org/x/text/language"
)

// Locale negotiates the response language from ?lang= or Accept-Language
// against supported (first entry is the fallback). The result is stored on the
// context and echoed as Content-Language
func Locale(supported []language.Tag) func(http.Handler) http.Handler {
	neg := NewNegotiator(supported)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := neg.Pick(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Language", tag.String())

			ctx := pnet.WithRequest(r.Context(), "", tag)
			ctx = logger.WithRequest(ctx, "", tag.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Negotiator matches requested languages to a fixed supported set
type Negotiator struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewNegotiator panics on an empty set
func NewNegotiator(supported []language.Tag) Negotiator {
	if len(supported) == 0 {
		panic("middleware: locale negotiator needs at least one tag")
	}
	return Negotiator{supported: supported, matcher: language.NewMatcher(supported)}
}

// Pick returns the supported tag best matching an explicit override or an
// Accept-Language header. The returned tag is always one of the supported set
func (n Negotiator) Pick(override, acceptLanguage string) language.Tag {
	var wanted []language.Tag
	if override != "" {
		if t, err := language.Parse(override); err == nil {
			wanted = append(wanted, t)
		}
	}
	if len(wanted) == 0 && acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			wanted = tags
		}
	}
	if len(wanted) == 0 {
		return n.supported[0]
	}
	_, idx, conf := n.matcher.Match(wanted...)
	if conf == language.No {
		return n.supported[0]
	}
	return n.supported[idx]
}
