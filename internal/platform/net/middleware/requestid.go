package middleware

import (
	"net/http"
	"strings"

	"billnote/internal/platform/logger"
	pnet "billnote/internal/platform/net"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// HeaderRequestID is read from requests and echoed on responses
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// newID is a seam for tests
var newID = uuid.NewString

// RequestID propagates a sane inbound X-Request-ID or mints a UUID, then
// stores it for pnet.RequestID, chimw.GetReqID and logger.C
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
			if id == "" || len(id) > maxRequestIDLen || strings.ContainsAny(id, "\r\n") {
				id = newID()
			}
			w.Header().Set(HeaderRequestID, id)

			ctx := pnet.WithRequest(r.Context(), id, language.Und)
			ctx = logger.WithRequest(ctx, id, "")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
