package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPprofMux(t *testing.T) {
	mux := newPprofMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/goroutine?debug=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for goroutine profile, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected api routes to be absent, got %d", rec.Code)
	}
}
