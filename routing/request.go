package routing

// Request is the read-only view of an incoming request the matcher needs.
type Request interface {
	// Path is the request path, e.g. "/articles/7.json".
	Path() string
	// Method is the request method token.
	Method() string
	// Host is the request hostname without port.
	Host() string
	// AcceptedFormat is the format negotiated outside the path, typically
	// from the Accept header.
	AcceptedFormat() (string, bool)
}

// RequestContext is an immutable Request snapshot.
type RequestContext struct {
	path      string
	method    string
	host      string
	format    string
	hasFormat bool
}

// NewRequest returns a snapshot of a request without an accepted format.
func NewRequest(method, host, path string) *RequestContext {
	return &RequestContext{
		path:   path,
		method: method,
		host:   host,
	}
}

// WithAcceptedFormat returns a copy of the snapshot carrying format.
func (r *RequestContext) WithAcceptedFormat(format string) *RequestContext {
	c := *r
	c.format = format
	c.hasFormat = format != ""
	return &c
}

func (r *RequestContext) Path() string   { return r.path }
func (r *RequestContext) Method() string { return r.method }
func (r *RequestContext) Host() string   { return r.host }

func (r *RequestContext) AcceptedFormat() (string, bool) {
	return r.format, r.hasFormat
}

// Match is the outcome of a successful lookup.
type Match struct {
	// Route is the selected route. It is shared with the collection and
	// must not be modified.
	Route *Route

	// Parameters holds the captured, defaulted and negotiated values.
	Parameters map[string]string
}

// Param returns a single parameter.
func (m *Match) Param(name string) (string, bool) {
	v, ok := m.Parameters[name]
	return v, ok
}

// Format returns the resolved format, empty when none could be resolved.
func (m *Match) Format() string {
	return m.Parameters["format"]
}
