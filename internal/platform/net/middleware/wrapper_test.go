package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"billnote/internal/platform/net/middleware"
)

func TestCompress_WhenAccepted(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `"`+strings.Repeat("a", 4<<10)+`"`)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	middleware.Compress(flate.DefaultCompression)(h).ServeHTTP(rr, req)
	if rr.Result().Header.Get("Content-Encoding") == "" {
		t.Fatalf("expected Content-Encoding to be set")
	}
}

func TestCORS_Preflight(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://billnote.example"}})
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/platform/classify", nil)
	req.Header.Set("Origin", "https://billnote.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Accept-Language")

	rr := httptest.NewRecorder()
	cors(h).ServeHTTP(rr, req)
	if rr.Code != 200 && rr.Code != 204 {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://billnote.example" {
		t.Fatalf("allow-origin missing")
	}
	if rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatalf("allow-headers missing")
	}
}

func TestHeartbeat(t *testing.T) {
	h := middleware.Heartbeat("/ping")(http.NotFoundHandler())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("heartbeat status = %d", rr.Code)
	}
}

func TestRateLimit_Envelope(t *testing.T) {
	h := middleware.RateLimit(middleware.RateLimitOptions{PerSecond: 1, Burst: 1})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("first status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests || rr.Header().Get("Retry-After") != "1" {
		t.Fatalf("second status = %d headers=%v", rr.Code, rr.Header())
	}
	if !strings.Contains(rr.Body.String(), `"error":"too many requests"`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	h := middleware.RateLimit(middleware.RateLimitOptions{})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))
	for range 5 {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("status = %d", rr.Code)
		}
	}
}
