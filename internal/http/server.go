package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	applog "fundsmart/internal/log"
	"fundsmart/internal/metrics"
	"fundsmart/internal/middleware/ratelimit"
	"fundsmart/internal/middleware/security"
	"fundsmart/internal/middleware/trace"
	"fundsmart/internal/reveal"
	"fundsmart/internal/routes"
	"fundsmart/internal/theme"
	"fundsmart/internal/widgets"
	appweb "fundsmart/web"
)

// Deps are the collaborators the server renders with. Resolver, Pages,
// Builder and Theme are required; the rest have usable defaults.
type Deps struct {
	Resolver *routes.Resolver
	// Pages builds the widget set, usually a cached wrapper around Builder.
	Pages   widgets.PageBuilder
	Builder *widgets.Builder
	Theme   *theme.Service

	Metrics *metrics.Recorder
	Logger  *applog.Logger

	// Ready flips once the warm-up delay has passed.
	Ready *reveal.Flag
	// StoreHealth checks the preference backend.
	StoreHealth func(ctx context.Context) error

	Currency           string
	RateLimitPerMinute int
	Clock              func() time.Time
}

type Server struct {
	http.Server
	templates *template.Template

	resolver *routes.Resolver
	pages    widgets.PageBuilder
	builder  *widgets.Builder
	theme    *theme.Service
	metrics  *metrics.Recorder
	logger   *applog.Logger
	events   *applog.StructuredLogger
	ready    *reveal.Flag
	health   func(ctx context.Context) error
	currency string
	clock    func() time.Time
	started  time.Time

	limiter  *ratelimit.Limiter
	detector *security.Detector

	shutdownOnce sync.Once
}

// NewServer parses the embedded templates, mounts every route and wraps the
// mux in the middleware chain.
func NewServer(addr string, deps Deps) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			ReadHeaderTimeout: 10 * time.Second,
		},
		resolver: deps.Resolver,
		pages:    deps.Pages,
		builder:  deps.Builder,
		theme:    deps.Theme,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		ready:    deps.Ready,
		health:   deps.StoreHealth,
		currency: deps.Currency,
		clock:    deps.Clock,
		detector: security.NewDetector(),
	}
	if s.logger == nil {
		s.logger = applog.New(applog.DefaultConfig())
	}
	if s.metrics == nil {
		s.metrics = metrics.New(nil)
	}
	if s.pages == nil {
		s.pages = s.builder
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.currency == "" {
		s.currency = "USD"
	}
	s.events = applog.NewStructuredLogger(s.logger)
	s.started = s.clock()

	limitCfg := ratelimit.DefaultConfig()
	if deps.RateLimitPerMinute > 0 {
		limitCfg.RequestsPerMinute = deps.RateLimitPerMinute
	}
	s.limiter = ratelimit.NewLimiter(limitCfg)

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		s.logger.WithComponent(applog.ComponentTemplate).Warn("Failed parsing templates", applog.FieldError, err)
	}
	s.templates = t

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		s.logger.WithComponent(applog.ComponentTemplate).Warn("Failed to mount embedded static FS", applog.FieldError, err)
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /dashboard", s.handleDashboard)
	mux.HandleFunc("GET /dashboard/{$}", s.handleDashboard)
	mux.HandleFunc("GET /dashboard/{segment}", s.handleDashboard)

	limited := s.limiter.Middleware(s.detector.ExtractClientIP, s.handleRateLimited)
	mux.Handle("POST /theme", limited(http.HandlerFunc(s.handleTheme)))

	mux.HandleFunc("GET /api/v1/format/currency", s.handleFormatCurrency)
	mux.HandleFunc("GET /api/v1/risk/{score}", s.handleRisk)
	mux.HandleFunc("GET /api/v1/routes", s.handleRouteList)
	mux.HandleFunc("GET /api/v1/routes/{segment}", s.handleRoute)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", s.metrics.Handler())

	var handler http.Handler = mux
	handler = security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware(handler)
	handler = s.detector.Middleware(s.metrics)(handler)
	handler = s.metrics.Middleware(handler)
	handler = trace.NewMiddleware(s.logger, s.detector.ExtractClientIP).Middleware(handler)
	s.Handler = handler

	return s
}

// Shutdown stops the background janitors and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		if s.ready != nil {
			s.ready.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
