package middleware

import (
	"encoding/json"
	stdhttp "net/http"
	"runtime/debug"

	perr "billnote/internal/platform/errors"
	"billnote/internal/platform/logger"
	pnet "billnote/internal/platform/net"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack with the request id.
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			status, body := pnet.Error(perr.PanicErrf("internal error"), pnet.RequestID(r.Context()))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
