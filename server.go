package radweb

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/radweb/consts"
	"github.com/rohanthewiz/radweb/core/rtr"
)

// ServerOptions configures a Server. The zero value is usable: an empty
// Address means Run picks an ephemeral port.
type ServerOptions struct {
	// Address is the "host:port" Run listens on.
	Address string
	// Verbose logs every request's method, path, and resulting status.
	Verbose bool
	// Debug includes the triggering error's detail in error response bodies
	// instead of just the correlation code. Never enable in production.
	Debug bool
}

// Server routes incoming HTTP/1.1 connections to registered handlers. The
// zero value is not usable; construct one with NewServer.
type Server struct {
	options    ServerOptions
	router     *rtr.Router[uint64]
	handlers   map[uint64]HandlerFunc
	listener   net.Listener
	listenAddr string
}

// NewServer constructs a Server ready to register routes on.
func NewServer(options ServerOptions) *Server {
	return &Server{
		options:  options,
		router:   rtr.New[uint64](),
		handlers: make(map[uint64]HandlerFunc),
	}
}

// endpointID derives a stable id for a (method, pattern) pair. Patterns are
// registered once at startup, so collisions would only ever surface during
// development, not at request time.
func endpointID(method, pattern string) uint64 {
	return xxhash.Sum64String(method + "\x00" + pattern)
}

// AddMethod registers fn to handle method requests to pattern. Get, Post,
// and the rest are thin wrappers over this.
func (s *Server) AddMethod(method, pattern string, fn HandlerFunc) {
	id := endpointID(method, pattern)
	s.handlers[id] = fn
	s.router.Add(method, pattern, id)
}

func (s *Server) Get(pattern string, fn HandlerFunc)     { s.AddMethod(consts.MethodGet, pattern, fn) }
func (s *Server) Post(pattern string, fn HandlerFunc)    { s.AddMethod(consts.MethodPost, pattern, fn) }
func (s *Server) Put(pattern string, fn HandlerFunc)     { s.AddMethod(consts.MethodPut, pattern, fn) }
func (s *Server) Patch(pattern string, fn HandlerFunc)   { s.AddMethod(consts.MethodPatch, pattern, fn) }
func (s *Server) Delete(pattern string, fn HandlerFunc)  { s.AddMethod(consts.MethodDelete, pattern, fn) }
func (s *Server) Head(pattern string, fn HandlerFunc)    { s.AddMethod(consts.MethodHead, pattern, fn) }
func (s *Server) Options(pattern string, fn HandlerFunc) { s.AddMethod(consts.MethodOptions, pattern, fn) }
func (s *Server) Connect(pattern string, fn HandlerFunc) { s.AddMethod(consts.MethodConnect, pattern, fn) }
func (s *Server) Trace(pattern string, fn HandlerFunc)   { s.AddMethod(consts.MethodTrace, pattern, fn) }

// GetListenAddr returns the address Run bound to, once listening has
// started. Empty before then.
func (s *Server) GetListenAddr() string { return s.listenAddr }

// Run listens on s.options.Address and serves connections until the
// process receives SIGINT or SIGTERM, or accept fails. Each connection is
// handled on its own goroutine and closed after one request/response.
// Run may only be called once per Server; a second call returns a
// KindAlreadyBound error without touching the existing listener.
func (s *Server) Run() error {
	if s.listener != nil {
		return newError(KindAlreadyBound, "already listening on "+s.listenAddr)
	}

	ln, err := net.Listen(consts.ProtocolTCP, s.options.Address)
	if err != nil {
		return wrapError(KindNoListener, "listen on "+s.options.Address, err)
	}
	s.listener = ln
	s.listenAddr = ln.Addr().String()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			return nil
		}
		go s.handleConnection(conn)
	}
}

// handleConnection reads exactly one request off conn, dispatches it, and
// writes exactly one response before closing conn.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	req, err := readRequest(reader)
	if err != nil {
		logger.LogErr(err, "malformed request, closing connection")
		writeResponse(conn, s.errorResponse(err), time.Now())
		return
	}

	res := s.dispatch(req)
	if err := writeResponse(conn, res, time.Now()); err != nil {
		logger.LogErr(err, "write response, closing connection")
		return
	}

	if s.options.Verbose {
		logger.Log(fmt.Sprintf("%s %s -> %d", req.Method(), req.Path(), res.Status()))
	}
}

// dispatch looks up req's endpoint and runs it, turning a lookup miss or a
// handler error into an error Response rather than returning an error,
// since by this point there is no caller left to hand one to.
func (s *Server) dispatch(req *Request) *Response {
	id, params, ok := s.router.Lookup(req.method, req.path)
	if !ok {
		return s.errorResponse(newError(KindRouteNotFound, "no route for "+req.method+" "+req.path))
	}
	req.setParams(params)

	fn, ok := s.handlers[id]
	if !ok {
		return s.errorResponse(newError(KindRouteNotFound, "no handler for "+req.method+" "+req.path))
	}

	responder, err := fn(req)
	if err != nil {
		return s.errorResponse(wrapError(KindHandler, "handler failed", err))
	}
	return responderOf(responder)
}

// errorResponse builds the response an error surfaces as: the status
// statusFor maps it to, and a short text body naming a correlation code a
// client can quote back, logged alongside the real error.
func (s *Server) errorResponse(err error) *Response {
	code := genRandString(8)
	logger.LogErr(err, "request failed ["+code+"]")

	res := NewResponse()
	res.SetStatus(statusFor(err))
	res.SetHeader(consts.HeaderContentType, consts.MIMETextPlain+"; charset=utf-8")
	if s.options.Debug {
		res.WriteString(fmt.Sprintf("%s [%s]: %v", consts.StatusText(res.Status()), code, err))
	} else {
		res.WriteString(fmt.Sprintf("%s [%s]", consts.StatusText(res.Status()), code))
	}
	return res
}

// Request runs a request straight through dispatch without opening a
// socket, for tests that want to exercise routing and handlers without a
// live listener.
func (s *Server) Request(method, path string, headers []Header, body io.Reader) *Response {
	p, query := splitRequestTarget(path)
	req := &Request{method: method, path: p, query: query, headers: headers}
	if body != nil {
		b, err := io.ReadAll(body)
		if err == nil {
			req.body = b
		}
	}
	res := s.dispatch(req)
	writeResponse(io.Discard, res, time.Now())
	return res
}
