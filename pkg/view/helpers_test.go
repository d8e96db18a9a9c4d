package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ordersdesk.com/app/internal/orderlist"
	"ordersdesk.com/app/pkg/view"
)

func TestMoneyFromCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "€10.00", view.MoneyFromCents(1000, "EUR"))
	assert.Equal(t, "$0.05", view.MoneyFromCents(5, "USD"))
	assert.Equal(t, "CHF 12.34", view.MoneyFromCents(1234, "CHF"))
}

func TestNewFacetMenu(t *testing.T) {
	t.Parallel()

	m := view.NewFacetMenu(orderlist.FacetPayment, "Payment",
		orderlist.FilterState{Filter: "captured"}, []string{"awaiting", "captured"})

	assert.Equal(t, "payment_status", m.Param)
	assert.True(t, m.Open)
	assert.Equal(t, []view.FacetOption{
		{Value: "awaiting"},
		{Value: "captured", Selected: true},
	}, m.Options)
}
