package rtr

import "github.com/rohanthewiz/radweb/consts"

// Router holds one Tree per HTTP method so lookups never need to branch on
// the method while walking a tree. Trees are lazily initialized through
// Go's zero-value semantics, so an empty Router costs nothing beyond the
// struct itself.
type Router[T any] struct {
	get     Tree[T]
	post    Tree[T]
	put     Tree[T]
	patch   Tree[T]
	delete  Tree[T]
	head    Tree[T]
	options Tree[T]
	connect Tree[T]
	trace   Tree[T]
}

// New creates a Router with an empty tree for every recognized method.
func New[T any]() *Router[T] {
	return &Router[T]{}
}

// Add registers data under method and path.
func (r *Router[T]) Add(method, path string, data T) {
	tree := r.selectTree(method)
	if tree == nil {
		return
	}
	tree.Add(path, data)
}

// Lookup finds the data and path parameters bound to method and path.
func (r *Router[T]) Lookup(method, path string) (T, []Parameter, bool) {
	tree := r.selectTree(method)
	if tree == nil {
		var zero T
		return zero, nil, false
	}
	return tree.Lookup(path)
}

// Map applies transform to every registered payload, across every method.
func (r *Router[T]) Map(transform func(T) T) {
	r.get.Map(transform)
	r.post.Map(transform)
	r.put.Map(transform)
	r.patch.Map(transform)
	r.delete.Map(transform)
	r.head.Map(transform)
	r.options.Map(transform)
	r.connect.Map(transform)
	r.trace.Map(transform)
}

func (r *Router[T]) selectTree(method string) *Tree[T] {
	switch method {
	case consts.MethodGet:
		return &r.get
	case consts.MethodPost:
		return &r.post
	case consts.MethodPut:
		return &r.put
	case consts.MethodPatch:
		return &r.patch
	case consts.MethodDelete:
		return &r.delete
	case consts.MethodHead:
		return &r.head
	case consts.MethodOptions:
		return &r.options
	case consts.MethodConnect:
		return &r.connect
	case consts.MethodTrace:
		return &r.trace
	default:
		return nil
	}
}
