package radweb

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rohanthewiz/radweb/consts"
)

// readRequest parses one HTTP/1.1 request from r: a request line, a header
// block terminated by a blank line, and — if Content-Length says so — a
// fixed-length body. There is no keep-alive and no chunked transfer-coding;
// one request is read, then the connection this reader is attached to is
// closed by the caller.
func readRequest(r *bufio.Reader) (*Request, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, wrapError(KindParseRequestLine, "read request line", err)
	}
	line = strings.TrimRight(line, "\r\n")

	method, target, version, ok := splitRequestLine(line)
	if !ok {
		return nil, newError(KindParseRequestLine, "malformed request line")
	}
	if !isRequestMethod(method) {
		return nil, newError(KindParseMethod, "unrecognized method "+method)
	}
	if version != consts.HTTP1 {
		return nil, newError(KindParseVersion, "unsupported version "+version)
	}

	path, query := splitRequestTarget(target)
	if path == "" {
		return nil, newError(KindParsePath, "empty request path")
	}

	headers, contentLength, err := readHeaders(r)
	if err != nil {
		return nil, err
	}

	var body []byte
	if contentLength > 0 {
		body = make([]byte, contentLength)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, wrapError(KindParseRequestLine, "read request body", err)
		}
	}

	return &Request{
		method:  method,
		path:    path,
		query:   query,
		headers: headers,
		body:    body,
	}, nil
}

// splitRequestLine splits "METHOD target VERSION" on its two separating
// spaces. The target itself may not contain a space (it's already
// percent-encoded on the wire), so a simple two-way split suffices.
func splitRequestLine(line string) (method, target, version string, ok bool) {
	first := strings.IndexByte(line, ' ')
	if first < 0 {
		return "", "", "", false
	}
	last := strings.LastIndexByte(line, ' ')
	if last <= first {
		return "", "", "", false
	}
	return line[:first], line[first+1 : last], line[last+1:], true
}

// readHeaders reads header lines until a blank line, returning them in
// wire order along with the parsed Content-Length (0 if absent).
func readHeaders(r *bufio.Reader) (headers []Header, contentLength int, err error) {
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil {
			return nil, 0, wrapError(KindParseHeader, "read header line", readErr)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return headers, contentLength, nil
		}
		if !utf8.ValidString(line) {
			return nil, 0, newError(KindInvalidUTF8, "header line is not valid UTF-8")
		}

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			return nil, 0, newError(KindParseHeader, "header line missing colon: "+line)
		}
		key := strings.TrimSpace(line[:colon])
		value := strings.TrimSpace(line[colon+1:])
		headers = append(headers, Header{Key: key, Value: value})

		if strings.EqualFold(key, consts.HeaderContentLength) {
			n, convErr := strconv.Atoi(value)
			if convErr != nil {
				return nil, 0, wrapError(KindParseHeader, "malformed Content-Length", convErr)
			}
			contentLength = n
		}
	}
}

// writeResponse serializes res onto w as a status line, its headers, a
// blank line, and the body, in that order. now stamps the Date header if
// the response doesn't already carry one.
func writeResponse(w io.Writer, res *Response, now time.Time) error {
	res.finalize(now)

	var buf []byte
	buf = append(buf, consts.HTTP1...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(res.Status()), 10)
	buf = append(buf, ' ')
	buf = append(buf, consts.StatusText(res.Status())...)
	buf = append(buf, '\r', '\n')

	for _, h := range res.headers {
		buf = append(buf, h.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = append(buf, '\r', '\n')
	}
	buf = append(buf, '\r', '\n')
	buf = append(buf, res.body...)

	_, err := w.Write(buf)
	return err
}
