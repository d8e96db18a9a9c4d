package orderlist_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordersdesk.com/app/internal/orderlist"
)

func sampleOrders(n int) []orderlist.Order {
	out := make([]orderlist.Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, orderlist.Order{
			ID:        "o_" + string(rune('1'+i)),
			DisplayID: 1000 + i,
			Created:   time.Date(2024, time.March, 1+i, 14, 30, 0, 0, time.UTC),
			Email:     "buyer@example.com",
		})
	}
	return out
}

func TestProject_RowCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 3} {
		orders := sampleOrders(n)

		page := orderlist.Project(false, orders)
		assert.False(t, page.Loading)
		assert.Len(t, page.Rows, n)

		loading := orderlist.Project(true, orders)
		assert.True(t, loading.Loading)
		assert.Empty(t, loading.Rows)
	}
}

func TestRowOf(t *testing.T) {
	t.Parallel()

	o := orderlist.Order{
		ID:                "o_1",
		DisplayID:         42,
		Created:           time.Date(2024, time.March, 22, 9, 5, 0, 0, time.UTC),
		Email:             "jane@example.com",
		PaymentStatus:     "captured",
		FulfillmentStatus: "not_fulfilled",
		Items:             []orderlist.OrderItem{{ID: "i1"}, {ID: "i2"}},
	}

	row := orderlist.RowOf(o)

	assert.Equal(t, orderlist.Row{
		ID:                "o_1",
		Number:            "#42",
		Date:              "Mar 22nd 2024",
		DateTooltip:       "March 22nd 2024 09:05 am",
		Email:             "jane@example.com",
		PaymentStatus:     "captured",
		FulfillmentStatus: "not_fulfilled",
		Items:             2,
		Href:              "/a/orders/o_1",
	}, row)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	orders := sampleOrders(2)
	before := append([]orderlist.Order(nil), orders...)

	page := orderlist.Project(false, orders)

	require.Len(t, page.Rows, 2)
	assert.Equal(t, before, orders)
	assert.Equal(t, 0, page.Rows[0].Items)
}

func TestOrdinal(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th",
		13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 31: "31st",
	}
	for n, want := range cases {
		assert.Equal(t, want, orderlist.Ordinal(n))
	}
}
