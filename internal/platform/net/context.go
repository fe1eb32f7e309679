// Package net carries request scoped values and the response envelope shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"
)

type ctxKey string

const keyLocale ctxKey = "locale"

// WithRequest annotates ctx with the request id and the negotiated locale.
// The id is stored under chi's key so chimw.GetReqID sees it too
func WithRequest(ctx context.Context, reqID string, locale language.Tag) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if locale != language.Und {
		ctx = context.WithValue(ctx, keyLocale, locale)
	}
	return ctx
}

// RequestID returns the request id on ctx, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Locale returns the negotiated locale, or def when none was set
func Locale(ctx context.Context, def language.Tag) language.Tag {
	if t, ok := ctx.Value(keyLocale).(language.Tag); ok {
		return t
	}
	return def
}
