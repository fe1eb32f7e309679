package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"billnote/internal/platform/config"
	phttp "billnote/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	cases := []struct {
		enabled bool
		want    int
	}{
		{true, http.StatusOK},
		{false, http.StatusNotFound},
	}
	for _, tc := range cases {
		r := phttp.NewServer(config.New().Prefix("PPROF_")).Router()
		phttp.MountProfiler(r, "/debug", tc.enabled)

		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
		if rec.Code != tc.want {
			t.Fatalf("enabled=%v => %d, want %d", tc.enabled, rec.Code, tc.want)
		}
	}
}
