package radweb

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/radweb/core/rtr"
)

func TestRequestHeaderLookup(t *testing.T) {
	req := &Request{headers: []Header{{Key: "Accept", Value: "text/plain"}}}
	assert.Equal(t, req.Header("Accept"), "text/plain")
	assert.Equal(t, req.Header("Missing"), "")
}

func TestRequestQueryValues(t *testing.T) {
	req := &Request{query: "a=1&b=2"}
	values, err := req.QueryValues()
	assert.Equal(t, err, nil)
	assert.Equal(t, values.Get("a"), "1")
	assert.Equal(t, values.Get("b"), "2")
}

func TestRequestParamAndWildcard(t *testing.T) {
	req := &Request{}
	req.setParams([]rtr.Parameter{{Key: "id", Value: "42"}, {Key: "rest", Value: "a/b"}})

	assert.Equal(t, req.Param("id"), "42")
	assert.Equal(t, req.Wildcard("rest"), "a/b")
	assert.Equal(t, req.Param("missing"), "")
}

func TestRequestNextParamCursor(t *testing.T) {
	req := &Request{}
	req.setParams([]rtr.Parameter{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})

	v, ok := req.nextParam()
	assert.True(t, ok)
	assert.Equal(t, v, "1")

	v, ok = req.nextParam()
	assert.True(t, ok)
	assert.Equal(t, v, "2")

	_, ok = req.nextParam()
	assert.True(t, !ok)
}
