package radweb

import (
	"net/url"
	"strings"

	"github.com/rohanthewiz/radweb/core/rtr"
)

// Request is the parsed form of one HTTP/1.1 request: a method, a path, a
// raw query string, an ordered header list, path parameters bound by the
// router, and an opaque request body. Nothing past the request line and
// headers is interpreted beyond what C3's extractors ask for.
type Request struct {
	method      string
	path        string
	query       string
	headers     []Header
	body        []byte
	params      []rtr.Parameter
	paramCursor int
}

// Method returns the request method (GET, POST, ...).
func (r *Request) Method() string { return r.method }

// Path returns the request path, without the query string.
func (r *Request) Path() string { return r.path }

// Query returns the raw query string (everything after "?", not including
// it). Empty if the request had none.
func (r *Request) Query() string { return r.query }

// QueryValues parses the raw query string. Malformed percent-encoding
// yields an error from net/url, same as url.ParseQuery.
func (r *Request) QueryValues() (url.Values, error) {
	return url.ParseQuery(r.query)
}

// Body returns the raw request body.
func (r *Request) Body() []byte { return r.body }

// Header returns the first value for the given header name, or "" if it
// wasn't sent. Header names are compared case-insensitively.
func (r *Request) Header(key string) string {
	for _, h := range r.headers {
		if strings.EqualFold(h.Key, key) {
			return h.Value
		}
	}
	return ""
}

// Param returns the value bound to a path parameter (":name" in the
// registered pattern), or "" if name wasn't part of the matched route.
func (r *Request) Param(name string) string {
	for _, p := range r.params {
		if p.Key == name {
			return p.Value
		}
	}
	return ""
}

// Wildcard returns the value captured by a "*name" wildcard segment, or ""
// if the matched route had none. Wildcard bindings live in the same
// parameter list as named parameters; this is a readability alias.
func (r *Request) Wildcard(name string) string {
	return r.Param(name)
}

func (req *Request) setParams(params []rtr.Parameter) {
	req.params = params
}

// nextParam returns the next not-yet-consumed path/wildcard parameter, for
// PathParam and WildcardParam extractors to bind against in pattern order.
func (req *Request) nextParam() (string, bool) {
	if req.paramCursor >= len(req.params) {
		return "", false
	}
	v := req.params[req.paramCursor].Value
	req.paramCursor++
	return v, true
}
