package ordersapi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ordersdesk.com/app/internal/orderlist"
)

func TestOrdersResource_DeliverDropsOlderSnapshots(t *testing.T) {
	t.Parallel()

	var got []Snapshot
	r := NewOrdersResource(nil, func(s Snapshot) { got = append(got, s) })

	final := Snapshot{Orders: []orderlist.Order{{ID: "o_2"}}}
	r.deliver(3, final)
	// a superseded refresh's loading snapshot arriving late
	r.deliver(1, Snapshot{IsLoading: true})
	r.deliver(3, Snapshot{IsLoading: true})

	assert.Equal(t, []Snapshot{final}, got)
}
