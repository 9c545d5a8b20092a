package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fundsmart/internal/fixtures"
	applog "fundsmart/internal/log"
	"fundsmart/internal/routes"
	"fundsmart/internal/theme"
	"fundsmart/internal/widgets"
)

type indexData struct {
	Title    string
	Theme    theme.Theme
	Features []fixtures.Feature
}

type dashboardData struct {
	Title   string
	Theme   theme.Theme
	Sidebar widgets.SidebarView
	Page    widgets.Page
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Title:    "Smart investing",
		Theme:    s.currentTheme(r),
		Features: s.builder.Features(),
	}
	s.render(w, r, "index.html", data)
}

// handleDashboard resolves the segment and renders its widget set. Unknown
// segments render the placeholder with status 200.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	segment := r.PathValue("segment")
	if segment == "" {
		segment = routes.SegmentFromPath(r.URL.Path)
	}
	descriptor := s.resolver.Resolve(segment)
	page := s.pages.Build(descriptor, s.clock(), widgets.Request{
		ShowAllTransactions: queryFlag(r.URL.Query(), "all"),
	})

	data := dashboardData{
		Title:   page.Title,
		Theme:   s.currentTheme(r),
		Sidebar: s.builder.Sidebar(r.URL.Path),
		Page:    page,
	}
	if s.render(w, r, "dashboard.html", data) {
		s.metrics.RecordPageRendered(string(page.Content))
		s.events.LogPageRendered(r.Context(), page.Segment, string(page.Content), len(page.Cards))
	}
}

// handleTheme applies theme=light|dark|toggle. HTMX callers get the
// re-rendered toggle plus a theme:changed event; plain form posts are
// redirected back.
func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	choice, errResp := parseThemeForm(r)
	if errResp != nil {
		errResp.Write(w)
		return
	}

	dark := systemPrefersDark(r)
	var (
		change theme.Change
		err    error
	)
	if choice.Toggle {
		change, err = s.theme.Toggle(r.Context(), dark)
	} else {
		change, err = s.theme.Set(r.Context(), choice.Theme, dark)
	}
	if err != nil {
		applog.FromContext(r.Context()).WithComponent(applog.ComponentTheme).ErrorContext(r.Context(),
			"Theme update failed", applog.FieldError, err)
		InternalServerError("Could not save theme preference").
			TriggerErrorNotification("Could not save theme preference").
			Write(w)
		return
	}

	if !isHTMX(r) {
		http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	if s.templates == nil {
		InternalServerError("Templates not loaded").Write(w)
		return
	}
	if err := s.templates.ExecuteTemplate(&buf, "theme-toggle", change.Current); err != nil {
		s.logTemplateError(r, "theme-toggle", err)
		InternalServerError("Could not render theme toggle").Write(w)
		return
	}

	resp := NewHTMXResponse().
		TriggerThemeChanged(change.Current.String()).
		BodyHTML(buf.String())
	if change.Changed() {
		resp.TriggerSuccessNotification(themeNotice(change.Current))
	}
	resp.Write(w)
}

func themeNotice(t theme.Theme) string {
	if t == theme.Dark {
		return "Dark mode on"
	}
	return "Light mode on"
}

func (s *Server) handleRateLimited(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordRateLimited()
	applog.FromContext(r.Context()).WithComponent(applog.ComponentRateLimit).WarnContext(r.Context(),
		"Rate limit exceeded",
		applog.FieldClientIP, s.detector.ExtractClientIP(r),
		applog.FieldPath, r.URL.Path)
	if isHTMX(r) {
		TooManyRequestsError("Too many requests. Please try again later.").Write(w)
		return
	}
	http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": s.clock().Format(time.RFC3339),
		"uptime":    s.clock().Sub(s.started).Round(time.Second).String(),
	})
}

// handleReady reports ready once templates are parsed, the warm-up flag has
// flipped and the preference store answers.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]any)
	fail := func(name, reason string) {
		checks[name] = reason
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	}

	if s.templates == nil {
		fail("templates", "failed: templates not loaded")
	} else {
		checks["templates"] = "ok"
	}

	if s.ready != nil && !s.ready.IsSet() {
		fail("warmup", "pending")
	} else {
		checks["warmup"] = "ok"
	}

	if s.health != nil {
		if err := s.health(ctx); err != nil {
			fail("preferences", "failed: "+err.Error())
		} else {
			checks["preferences"] = "ok"
		}
	} else {
		checks["preferences"] = "not_configured"
	}

	checks["rate_limiter"] = map[string]any{
		"active_clients": s.limiter.ActiveClients(),
		"status":         "ok",
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": s.clock().Format(time.RFC3339),
		"checks":    checks,
	})
}

// currentTheme falls back to the client hint when the store fails.
func (s *Server) currentTheme(r *http.Request) theme.Theme {
	dark := systemPrefersDark(r)
	if s.theme == nil {
		return theme.Resolve("", dark)
	}
	t, err := s.theme.Current(r.Context(), dark)
	if err != nil {
		applog.FromContext(r.Context()).WithComponent(applog.ComponentTheme).WarnContext(r.Context(),
			"Theme preference unavailable, using system preference", applog.FieldError, err)
	}
	return t
}

// render executes name into a buffer so a failing template never leaves a
// half-written page. It reports whether the page was sent.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) bool {
	if s.templates == nil {
		applog.FromContext(r.Context()).WithComponent(applog.ComponentTemplate).ErrorContext(r.Context(),
			"Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return false
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logTemplateError(r, name, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return false
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
	return true
}

func (s *Server) logTemplateError(r *http.Request, name string, err error) {
	applog.FromContext(r.Context()).WithComponent(applog.ComponentTemplate).ErrorContext(r.Context(),
		"Template execution failed", "template", name, applog.FieldError, err)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeAPIError(w http.ResponseWriter, status int, apiErr *APIError) {
	writeJSON(w, status, map[string]*APIError{"error": apiErr})
}
