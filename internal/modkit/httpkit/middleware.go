package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"billnote/internal/core/locale"
	"billnote/internal/platform/net/middleware"

	"golang.org/x/text/language"
)

// StackOptions tunes CommonStack; zero values pick the defaults
type StackOptions struct {
	Timeout time.Duration
	Slow    time.Duration
	CORS    middleware.CORSOptions
	// RateLimit is per client; zero PerSecond disables it
	RateLimit middleware.RateLimitOptions
	// Locale is the fallback response language; zero keeps locale.Default
	Locale language.Tag
}

// CommonStack is the per API middleware chain, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.Locale(supported(o.Locale)),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RateLimit(o.RateLimit),
		middleware.NoCache(),
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	}
}

// supported moves the fallback language to the front of locale.Supported
func supported(def language.Tag) []language.Tag {
	if def == language.Und {
		return locale.Supported
	}
	def = locale.Match(def)
	out := []language.Tag{def}
	for _, t := range locale.Supported {
		if t != def {
			out = append(out, t)
		}
	}
	return out
}
