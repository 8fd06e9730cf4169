package radweb

import (
	"strconv"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/radweb/consts"
	"github.com/rohanthewiz/radweb/core/rtr"
)

func TestHandle0(t *testing.T) {
	fn := Handle0(func() (Responder, error) {
		return String("ok"), nil
	})

	res, err := fn(&Request{})
	assert.Equal(t, err, nil)
	assert.Equal(t, string(responderOf(res).Body()), "ok")
}

func TestHandle1WithQueryParams(t *testing.T) {
	fn := Handle1(func(q QueryParams[pagination]) (Responder, error) {
		return String(strconv.Itoa(q.Value.Page)), nil
	})

	req := &Request{query: "page=3&limit=10"}
	responder, err := fn(req)
	assert.Equal(t, err, nil)
	assert.Equal(t, string(responderOf(responder).Body()), "3")
}

func TestHandle1WithPathParam(t *testing.T) {
	fn := Handle1(func(id PathParam[int]) (Responder, error) {
		if id.Value <= 0 {
			return nil, newError(KindHandler, "bad id")
		}
		return Status(consts.StatusOK), nil
	})

	req := &Request{}
	req.setParams([]rtr.Parameter{{Key: "id", Value: "5"}})

	responder, err := fn(req)
	assert.Equal(t, err, nil)
	assert.Equal(t, responderOf(responder).Status(), consts.StatusOK)
}

func TestHandle2WithTwoPathParams(t *testing.T) {
	fn := Handle2(func(orderID PathParam[int], itemID PathParam[int]) (Responder, error) {
		return String("order"), nil
	})

	req := &Request{}
	req.setParams([]rtr.Parameter{{Key: "orderId", Value: "1"}, {Key: "itemId", Value: "2"}})

	responder, err := fn(req)
	assert.Equal(t, err, nil)
	assert.Equal(t, string(responderOf(responder).Body()), "order")
}

func TestHandle1ShortCircuitsOnExtractError(t *testing.T) {
	fn := Handle1(func(id PathParam[int]) (Responder, error) {
		return String("unreachable"), nil
	})

	responder, err := fn(&Request{})
	assert.True(t, err != nil)
	assert.True(t, responder == nil)
}
