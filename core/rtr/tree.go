package rtr

// Tree is a compressed-prefix (radix) tree mapping path patterns to a
// payload of type T, for a single HTTP method. The zero value is ready to
// use.
//
// Structure example for routes /user, /users, /user/:id:
//
//	root
//	 └── "user"  (data: T for /user)
//	      ├── "s" (data: T for /users)
//	      └── ":id" (parameter node, data: T for /user/:id)
type Tree[T any] struct {
	root node[T]
}

// Add registers data under path, splitting or extending existing nodes as
// needed. Re-adding the same path overwrites its data. Two routes whose
// parameter falls at the same tree position but names it differently panic,
// since both routes would otherwise have to share one parameter node.
func (t *Tree[T]) Add(path string, data T) {
	t.root.insert(splitSegments(path), data)
}

// searchState is one in-flight candidate during Lookup's breadth-first
// search: a node we've reached, the path segments still unmatched, the
// parameters bound so far, and the match priority accumulated along the
// way (the minimum node-kind priority seen, since one Parameter hop caps
// the whole match at Parameter priority even if later hops are Exact).
type searchState[T any] struct {
	n         *node[T]
	remaining []string
	params    []Parameter
	priority  int
}

// Lookup finds the highest-priority match for path, returning its data and
// the path parameters bound along the way (in route-definition order).
// Exact matches beat Parameter matches, which beat Wildcard matches,
// regardless of how deep in the tree the match occurred.
func (t *Tree[T]) Lookup(path string) (data T, params []Parameter, ok bool) {
	queue := []searchState[T]{{n: &t.root, remaining: splitSegments(path), priority: 3}}

	var best *searchState[T]

	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		if len(state.remaining) == 0 {
			if state.n.hasData && (best == nil || state.priority > best.priority) {
				s := state
				best = &s
			}
			continue
		}

		segment, rest := state.remaining[0], state.remaining[1:]

		for _, child := range state.n.children {
			switch child.kind {
			case exact:
				common := commonPrefixLen(child.constant, segment)
				if common == 0 || common < len(child.constant) {
					continue
				}
				remaining := rest
				if common < len(segment) {
					remaining = append([]string{segment[common:]}, rest...)
				}
				queue = append(queue, searchState[T]{child, remaining, state.params, state.priority})

			case parameter:
				p := append(append([]Parameter{}, state.params...), Parameter{Key: child.constant[1:], Value: segment})
				priority := state.priority
				if priority > child.kind.priority() {
					priority = child.kind.priority()
				}
				queue = append(queue, searchState[T]{child, rest, p, priority})

			case wildcard:
				value := segment
				if len(rest) > 0 {
					value = segment
					for _, r := range rest {
						value += "/" + r
					}
				}
				p := append(append([]Parameter{}, state.params...), Parameter{Key: child.constant[1:], Value: value})
				queue = append(queue, searchState[T]{child, nil, p, child.kind.priority()})
			}
		}
	}

	if best == nil {
		var zero T
		return zero, nil, false
	}
	return best.n.data, best.params, true
}

// Map applies transform to the payload of every node carrying data.
func (t *Tree[T]) Map(transform func(T) T) {
	t.root.mapData(transform)
}

func (n *node[T]) mapData(transform func(T) T) {
	if n.hasData {
		n.data = transform(n.data)
	}
	for _, child := range n.children {
		child.mapData(transform)
	}
}
