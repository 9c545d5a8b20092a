package log

import (
	"maps"
	"slices"
)

const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldSegment    = "segment"
	FieldContent    = "content"
	FieldWidgets    = "widgets"
	FieldTheme      = "theme"
	FieldPrevTheme  = "previous_theme"
	FieldBackend    = "backend"
	FieldSource     = "source"
)

const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentWidgets   = "widgets"
	ComponentTheme     = "theme"
	ComponentFixtures  = "fixtures"
	ComponentAMQP      = "amqp"
	ComponentCache     = "cache"
	ComponentSecurity  = "security"
	ComponentRateLimit = "rate_limit"
	ComponentBackend   = "backend"
	ComponentTemplate  = "template"
)

const (
	OpRead     = "read"
	OpUpdate   = "update"
	OpRender   = "render"
	OpPublish  = "publish"
	OpLoad     = "load"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// LogFields collects structured attributes fluently.
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithClientIP(ip string) LogFields {
	f[FieldClientIP] = ip
	return f
}

func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithRoute adds the resolved segment and its content set.
func (f LogFields) WithRoute(segment, content string, widgets int) LogFields {
	f[FieldSegment] = segment
	f[FieldContent] = content
	f[FieldWidgets] = widgets
	return f
}

func (f LogFields) WithTheme(previous, current string) LogFields {
	f[FieldPrevTheme] = previous
	f[FieldTheme] = current
	return f
}

func (f LogFields) WithHTTPRequest(method, path, query, userAgent string) LogFields {
	f[FieldMethod] = method
	f[FieldPath] = path
	if query != "" {
		f[FieldQuery] = query
	}
	if userAgent != "" {
		f[FieldUserAgent] = userAgent
	}
	return f
}

func (f LogFields) WithHTTPResponse(statusCode int, durationMs int64) LogFields {
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	f[FieldSuccess] = statusCode < 400
	return f
}

// ToSlice flattens the fields into slog key/value pairs in key order.
func (f LogFields) ToSlice() []any {
	out := make([]any, 0, len(f)*2)
	for _, k := range slices.Sorted(maps.Keys(f)) {
		out = append(out, k, f[k])
	}
	return out
}
