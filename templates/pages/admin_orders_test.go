package pages_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordersdesk.com/app/internal/orderlist"
	"ordersdesk.com/app/pkg/view"
	"ordersdesk.com/app/templates/pages"
)

func renderList(t *testing.T, p view.AdminOrdersListPage) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pages.AdminOrdersList(nil, p).Render(context.Background(), &buf))
	return buf.String()
}

func TestAdminOrdersList_Rows(t *testing.T) {
	t.Parallel()

	orders := []orderlist.Order{
		{ID: "o_1", DisplayID: 1, Created: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Email: "a@example.com", PaymentStatus: "captured"},
		{ID: "o_2", DisplayID: 2, Created: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), Email: "<b>@example.com"},
	}
	out := renderList(t, view.AdminOrdersListPage{List: orderlist.Project(false, orders)})

	assert.Equal(t, 2, strings.Count(out, "<tr data-href="))
	assert.Contains(t, out, `data-href="/a/orders/o_1"`)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "&lt;b&gt;@example.com")
	assert.NotContains(t, out, `aria-label="Loading"`)
	assert.Contains(t, out, `disabled>New draft order`)
}

func TestAdminOrdersList_Loading(t *testing.T) {
	t.Parallel()

	out := renderList(t, view.AdminOrdersListPage{List: orderlist.Project(true, []orderlist.Order{{ID: "o_1"}})})

	assert.Contains(t, out, `aria-label="Loading"`)
	assert.NotContains(t, out, "<tr data-href=")
}

func TestAdminOrdersList_SearchFormCarriesFacets(t *testing.T) {
	t.Parallel()

	menu := view.NewFacetMenu(orderlist.FacetStatus, "Status",
		orderlist.FilterState{Filter: "pending"}, []string{"pending", "completed"})
	out := renderList(t, view.AdminOrdersListPage{Q: "jane", Facets: []view.FacetMenu{menu}})

	assert.Contains(t, out, `<input type="hidden" name="status" value="pending">`)
	assert.Contains(t, out, `value="jane"`)
	assert.Contains(t, out, `<option value="pending" selected>`)
}

func TestAdminOrdersList_TotalAndFilterString(t *testing.T) {
	t.Parallel()

	out := renderList(t, view.AdminOrdersListPage{Total: 12, FilterString: "&status=pending"})
	assert.Contains(t, out, "12 orders")
	assert.Contains(t, out, `<code class="muted filter-string">&amp;status=pending</code>`)

	out = renderList(t, view.AdminOrdersListPage{Total: 1})
	assert.Contains(t, out, "1 order<")
	assert.NotContains(t, out, "filter-string")
}

func TestAdminOrderDetail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	vm := view.AdminOrderDetail{
		Number:        "#7",
		Email:         "a@example.com",
		PaymentStatus: "captured",
		Total:         "€10.00",
		BackHref:      orderlist.ListPath,
		Items:         []view.AdminOrderItem{{Title: "Mug", SKU: "MUG-1", Qty: 2, Unit: "€5.00", Line: "€10.00"}},
	}
	flash := &view.Flash{Kind: view.FlashInfo, Message: "Saved."}
	require.NoError(t, pages.AdminOrderDetail(flash, vm).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "<title>Order #7</title>")
	assert.Contains(t, out, `<span class="badge">captured</span>`)
	assert.Contains(t, out, "<td>Mug</td><td>MUG-1</td><td>2</td>")
	assert.Contains(t, out, `data-kind="info"`)
	assert.Contains(t, out, "Saved.")
}

func TestError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, pages.Error(404, "Order not found.", "rid-1", nil).Render(context.Background(), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<h1>404</h1><p>Order not found.</p>")
	assert.Contains(t, out, "Request ID: rid-1")
	assert.NotContains(t, out, `class="flash"`)
}
