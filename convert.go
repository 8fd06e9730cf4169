package radweb

import "github.com/rohanthewiz/radweb/consts"

// Responder is any value a handler can return that knows how to become a
// Response. The built-in conversions below cover the canonical cases.
type Responder interface {
	intoResponse() *Response
}

// responderOf is the single entry point convert.go exposes to handler.go:
// every concrete type a handler is allowed to return implements Responder,
// so dispatch never needs a type switch of its own.
func responderOf(r Responder) *Response {
	if r == nil {
		return NewResponse()
	}
	return r.intoResponse()
}

// Unit is the empty Responder: 200, no body, Content-Length: 0. Handlers
// with nothing to return should return Unit{} rather than nil.
type Unit struct{}

func (Unit) intoResponse() *Response {
	return NewResponse()
}

// Text is a plain-text Responder: 200, text/plain; charset=utf-8, the
// string as the body. A handler can also wrap a plain string with String
// (see below) instead of converting it to Text.
type Text string

func (t Text) intoResponse() *Response {
	res := NewResponse()
	res.SetHeader(consts.HeaderContentType, consts.MIMETextPlain+"; charset=utf-8")
	res.WriteString(string(t))
	return res
}

// textResponder lets a handler return a bare string and have it treated as Text.
type textResponder string

func (t textResponder) intoResponse() *Response {
	return Text(t).intoResponse()
}

// String wraps s so it satisfies Responder as plain text, for handlers that
// want to return a string literal without naming the Text type.
func String(s string) Responder { return textResponder(s) }

// HTML is an HTML-body Responder: 200, text/html; charset=utf-8, the string
// as the body, unescaped.
type HTML string

func (h HTML) intoResponse() *Response {
	res := NewResponse()
	res.SetHeader(consts.HeaderContentType, consts.MIMEHTML+"; charset=utf-8")
	res.WriteString(string(h))
	return res
}

// Status is a bare status-code Responder: the given status, empty body.
type Status int

func (s Status) intoResponse() *Response {
	res := NewResponse()
	res.SetStatus(int(s))
	return res
}

// WithStatus pairs a status code with another Responder, overriding the
// status the inner Responder would have produced while keeping its body,
// Content-Type, and any headers it set.
type WithStatus struct {
	StatusCode int
	Inner      Responder
}

func (w WithStatus) intoResponse() *Response {
	res := responderOf(w.Inner)
	res.SetStatus(w.StatusCode)
	return res
}
