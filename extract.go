package radweb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/schema"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// extractor is implemented by a pointer to each of QueryParams, PathParam,
// and WildcardParam, so Handle1/Handle2/Handle3 can fill in an argument of
// any of those types without knowing which one it is.
type extractor interface {
	extractFrom(r *Request) error
}

// QueryParams decodes the request's query string into T, a struct tagged
// the way gorilla/schema expects (`schema:"name"` per field). Unknown query
// keys are ignored; a field with no matching key keeps its zero value.
type QueryParams[T any] struct {
	Value T
}

func (q *QueryParams[T]) extractFrom(r *Request) error {
	values, err := r.QueryValues()
	if err != nil {
		return wrapError(KindExtractQuery, "parse query string", err)
	}
	if err := queryDecoder.Decode(&q.Value, flattenBracketKeys(values)); err != nil {
		return wrapError(KindExtractQuery, "decode query params", err)
	}
	return nil
}

// flattenBracketKeys rewrites bracket-style nested query keys ("a[b]=1")
// into the dotted path gorilla/schema decodes into nested struct fields
// ("a.b=1"), so a struct with a tagged nested field can receive either
// wire form. Keys with no bracket pass through unchanged.
func flattenBracketKeys(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vals := range values {
		out[dottedKey(key)] = vals
	}
	return out
}

func dottedKey(key string) string {
	if !strings.Contains(key, "[") {
		return key
	}
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '[':
			b.WriteByte('.')
		case ']':
			// skip
		default:
			b.WriteByte(key[i])
		}
	}
	return b.String()
}

// PathParam binds to the next unconsumed path parameter of the matched
// route, parsed as T. A handler taking two PathParam arguments binds them
// to the route's parameters in the order they appear in the pattern, left
// to right — PathParam[int], PathParam[string] against "/orders/:orderId/items/:itemId"
// binds orderId then itemId.
type PathParam[T any] struct {
	Value T
}

func (p *PathParam[T]) extractFrom(r *Request) error {
	raw, ok := r.nextParam()
	if !ok {
		return newError(KindExtractPath, "no path parameter left to bind")
	}
	v, err := parseScalar[T](raw)
	if err != nil {
		return wrapError(KindExtractPath, fmt.Sprintf("parse path parameter %q", raw), err)
	}
	p.Value = v
	return nil
}

// WildcardParam binds to the route's "*name" wildcard segment, parsed as T.
// Like PathParam it consumes the next unconsumed parameter, so a wildcard
// segment should be the last one a handler's arguments ask for.
type WildcardParam[T any] struct {
	Value T
}

func (w *WildcardParam[T]) extractFrom(r *Request) error {
	raw, ok := r.nextParam()
	if !ok {
		return newError(KindExtractWildcard, "no wildcard parameter left to bind")
	}
	v, err := parseScalar[T](raw)
	if err != nil {
		return wrapError(KindExtractWildcard, fmt.Sprintf("parse wildcard parameter %q", raw), err)
	}
	w.Value = v
	return nil
}

// Body binds to the full request body, decoded as UTF-8 text. Parsing it
// further (JSON, form-encoding, ...) is left to the handler.
type Body struct {
	Value string
}

func (b *Body) extractFrom(r *Request) error {
	if !utf8.Valid(r.body) {
		return newError(KindInvalidUTF8, "request body is not valid UTF-8")
	}
	b.Value = string(r.body)
	return nil
}

// parseScalar parses raw as T, for the handful of scalar types path and
// wildcard parameters are realistically bound to.
func parseScalar[T any](raw string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(raw).(T), nil
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case uint64:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	default:
		return zero, fmt.Errorf("unsupported parameter type %T", zero)
	}
}
