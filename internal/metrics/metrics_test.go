package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"fundsmart/internal/cache"
)

func TestRouteLabel(t *testing.T) {
	tests := map[string]string{
		"/":                        "/",
		"/dashboard":               "/dashboard",
		"/dashboard/goals":         "/dashboard/{segment}",
		"/api/v1/risk/42":          "/api/v1/risk/{score}",
		"/api/v1/routes/analytics": "/api/v1/routes/{segment}",
		"/static/app.css":          "/static/",
		"/wp-admin":                "other",
	}
	for path, want := range tests {
		if got := RouteLabel(path); got != want {
			t.Errorf("RouteLabel(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestMiddlewareCountsRequests(t *testing.T) {
	rec := New(prometheus.NewRegistry())
	h := rec.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dashboard/missing" {
			w.WriteHeader(http.StatusNotFound)
		}
		io.WriteString(w, "ok")
	}))

	for _, path := range []string{"/dashboard/goals", "/dashboard/wallets", "/dashboard/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(rec.requestsTotal.WithLabelValues("/dashboard/{segment}", "GET", "200")); got != 2 {
		t.Errorf("200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(rec.requestsTotal.WithLabelValues("/dashboard/{segment}", "GET", "404")); got != 1 {
		t.Errorf("404 count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rec.inFlight.WithLabelValues("/dashboard/{segment}", "GET")); got != 0 {
		t.Errorf("in flight = %v, want 0", got)
	}
}

func TestRecorderDomainCounters(t *testing.T) {
	rec := New(nil)
	observe := rec.CacheObserver()
	observe(cache.EventHit)
	observe(cache.EventHit)
	observe(cache.EventMiss)
	rec.RecordThemeChange("dark")
	rec.RecordSuspicious("path_traversal")
	rec.RecordPageRendered("overview")
	rec.RecordRateLimited()

	if got := testutil.ToFloat64(rec.cacheEvents.WithLabelValues("hit")); got != 2 {
		t.Errorf("cache hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(rec.themeChanges.WithLabelValues("dark")); got != 1 {
		t.Errorf("theme changes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rec.rateLimited); got != 1 {
		t.Errorf("rate limited = %v, want 1", got)
	}

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	for _, want := range []string{"fundsmart_page_cache_events_total", "fundsmart_suspicious_requests_total", "fundsmart_pages_rendered_total"} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %s", want)
		}
	}
}
