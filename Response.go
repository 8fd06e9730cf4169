package radweb

import (
	"strconv"
	"strings"
	"time"

	"github.com/rohanthewiz/radweb/consts"
)

// Response is the wire-bound form of a Responder's output: a status code,
// an ordered header list, and a body. Handlers never build one directly —
// they return a Responder (Text, Status, HTML, ...) and C4's conversion
// contract produces this.
type Response struct {
	body    []byte
	headers []Header
	status  int
}

// NewResponse returns a Response defaulted to 200 with an empty body, the
// starting point every conversion in convert.go builds on.
func NewResponse() *Response {
	return &Response{status: consts.StatusOK}
}

// Body returns the response body.
func (res *Response) Body() []byte { return res.body }

// Status returns the HTTP status code.
func (res *Response) Status() int { return res.status }

// SetStatus sets the HTTP status code.
func (res *Response) SetStatus(status int) { res.status = status }

// Header returns the first value set for key, or "". Header names are
// compared case-insensitively.
func (res *Response) Header(key string) string {
	for _, h := range res.headers {
		if strings.EqualFold(h.Key, key) {
			return h.Value
		}
	}
	return ""
}

// SetHeader sets key to value, replacing any prior value for the same key
// (compared case-insensitively; the casing of a new key is preserved as
// given, an existing header's casing is left alone on replacement).
func (res *Response) SetHeader(key, value string) {
	for i, h := range res.headers {
		if strings.EqualFold(h.Key, key) {
			res.headers[i].Value = value
			return
		}
	}
	res.headers = append(res.headers, Header{Key: key, Value: value})
}

// Write appends to the response body and satisfies io.Writer.
func (res *Response) Write(p []byte) (int, error) {
	res.body = append(res.body, p...)
	return len(p), nil
}

// WriteString appends to the response body and satisfies io.StringWriter.
func (res *Response) WriteString(s string) (int, error) {
	res.body = append(res.body, s...)
	return len(s), nil
}

// finalize fills in the headers every response must carry on the wire: a
// Content-Length matching the body, and a Date header if the handler
// didn't set one already.
func (res *Response) finalize(now time.Time) {
	res.SetHeader(consts.HeaderContentLength, strconv.Itoa(len(res.body)))
	if res.Header(consts.HeaderDate) == "" {
		res.SetHeader(consts.HeaderDate, now.UTC().Format(consts.DateFormat))
	}
}
