package radweb

// HandlerFunc is the type-erased form every registered endpoint reduces to:
// run whatever extractors the original function asked for, call it, and
// hand back a Responder. Server.handlers stores values of this type,
// keyed by endpoint id, so dispatch never needs to know the original
// function's arity or argument types.
type HandlerFunc func(r *Request) (Responder, error)

// Handle0 registers a handler that takes no arguments.
func Handle0(fn func() (Responder, error)) HandlerFunc {
	return func(r *Request) (Responder, error) {
		return fn()
	}
}

// Handle1 registers a handler taking one extractor argument, e.g.
// QueryParams[T], PathParam[T], WildcardParam[T], or Body.
func Handle1[T1 any, PT1 interface {
	*T1
	extractor
}](fn func(T1) (Responder, error)) HandlerFunc {
	return func(r *Request) (Responder, error) {
		var a1 T1
		if err := PT1(&a1).extractFrom(r); err != nil {
			return nil, err
		}
		return fn(a1)
	}
}

// Handle2 registers a handler taking two extractor arguments, run in
// declaration order; the first failing extractor short-circuits the rest.
func Handle2[T1, T2 any, PT1 interface {
	*T1
	extractor
}, PT2 interface {
	*T2
	extractor
}](fn func(T1, T2) (Responder, error)) HandlerFunc {
	return func(r *Request) (Responder, error) {
		var a1 T1
		if err := PT1(&a1).extractFrom(r); err != nil {
			return nil, err
		}
		var a2 T2
		if err := PT2(&a2).extractFrom(r); err != nil {
			return nil, err
		}
		return fn(a1, a2)
	}
}

// Handle3 registers a handler taking three extractor arguments, run in
// declaration order; the first failing extractor short-circuits the rest.
func Handle3[T1, T2, T3 any, PT1 interface {
	*T1
	extractor
}, PT2 interface {
	*T2
	extractor
}, PT3 interface {
	*T3
	extractor
}](fn func(T1, T2, T3) (Responder, error)) HandlerFunc {
	return func(r *Request) (Responder, error) {
		var a1 T1
		if err := PT1(&a1).extractFrom(r); err != nil {
			return nil, err
		}
		var a2 T2
		if err := PT2(&a2).extractFrom(r); err != nil {
			return nil, err
		}
		var a3 T3
		if err := PT3(&a3).extractFrom(r); err != nil {
			return nil, err
		}
		return fn(a1, a2, a3)
	}
}
