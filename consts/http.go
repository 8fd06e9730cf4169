package consts

// Method names as they appear on the wire.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

const (
	HTTP1 = "HTTP/1.1"

	ProtocolTCP = "tcp"
)

// Header names the codec and request/response types treat specially.
const (
	HeaderContentLength = "Content-Length"
	HeaderContentType   = "Content-Type"
	HeaderDate          = "Date"
)

// DateFormat is the RFC 1123 GMT form the wire codec stamps on every response
// that doesn't already carry a Date header.
const DateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
