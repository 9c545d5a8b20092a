package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Middleware records request metrics. Routes are normalised by RouteLabel to
// keep label cardinality low.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		route := RouteLabel(req.URL.Path)
		method := req.Method

		r.inFlight.WithLabelValues(route, method).Inc()
		defer r.inFlight.WithLabelValues(route, method).Dec()

		start := time.Now()
		rw := &metricsResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, req)

		class := statusClass(rw.status)
		r.requestsTotal.WithLabelValues(route, method, strconv.Itoa(rw.status)).Inc()
		r.requestDuration.WithLabelValues(route, method, class).Observe(time.Since(start).Seconds())
		r.responseSize.WithLabelValues(route, method, class).Observe(float64(rw.written))
	})
}

type metricsResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *metricsResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// RouteLabel collapses path parameters into templates.
func RouteLabel(path string) string {
	switch {
	case path == "/" || path == "/dashboard" || path == "/theme" || path == "/metrics" ||
		path == "/healthz" || path == "/readyz" || path == "/api/v1/format/currency" ||
		path == "/api/v1/routes":
		return path
	case strings.HasPrefix(path, "/dashboard/"):
		return "/dashboard/{segment}"
	case strings.HasPrefix(path, "/api/v1/risk/"):
		return "/api/v1/risk/{score}"
	case strings.HasPrefix(path, "/api/v1/routes/"):
		return "/api/v1/routes/{segment}"
	case strings.HasPrefix(path, "/static/"):
		return "/static/"
	default:
		return "other"
	}
}

func statusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
