package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ordersdesk.com/app/internal/http/flash"
	"ordersdesk.com/app/internal/http/middleware"
	"ordersdesk.com/app/internal/http/render"
	"ordersdesk.com/app/internal/http/validation"
	"ordersdesk.com/app/internal/modules/orders"
	"ordersdesk.com/app/internal/orderlist"
	"ordersdesk.com/app/internal/shared/apperr"
	"ordersdesk.com/app/pkg/view"
	"ordersdesk.com/app/templates/pages"
)

type OrderStore interface {
	AdminList(ctx context.Context, in orders.AdminListParams) (orders.AdminListResult, error)
	GetWithItems(ctx context.Context, id string) (orders.Order, error)
}

type OrdersHandler struct {
	Store OrderStore
	Flash *flash.Codec
}

func NewOrdersHandler(store OrderStore, fl *flash.Codec) *OrdersHandler {
	return &OrdersHandler{Store: store, Flash: fl}
}

// ListQuery is shared by the page and the JSON API. Facet values are checked
// against the known enums here, not by the client.
type ListQuery struct {
	Q                 string `form:"q" binding:"max=200"`
	Status            string `form:"status" binding:"omitempty,order_status"`
	FulfillmentStatus string `form:"fulfillment_status" binding:"omitempty,fulfillment_status"`
	PaymentStatus     string `form:"payment_status" binding:"omitempty,payment_status"`
	Limit             int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset            int    `form:"offset" binding:"omitempty,min=0"`
}

func (q ListQuery) params() orders.AdminListParams {
	return orders.AdminListParams{
		Q:                 strings.TrimSpace(q.Q),
		Status:            q.Status,
		FulfillmentStatus: q.FulfillmentStatus,
		PaymentStatus:     q.PaymentStatus,
		Limit:             q.Limit,
		Offset:            q.Offset,
	}
}

func (q ListQuery) filters() orderlist.Filters {
	return orderlist.Filters{
		Status:      orderlist.FilterState{Filter: q.Status},
		Fulfillment: orderlist.FilterState{Filter: q.FulfillmentStatus},
		Payment:     orderlist.FilterState{Filter: q.PaymentStatus},
	}
}

func bindList(c *gin.Context) (ListQuery, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid order filters.", validation.FromBindError(err, &q)))
		return ListQuery{}, false
	}
	return q, true
}

// List renders the order list page.
func (h *OrdersHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	res, err := h.Store.AdminList(c.Request.Context(), q.params())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	fs := q.filters()
	page := view.AdminOrdersListPage{
		Q: q.Q,
		Facets: []view.FacetMenu{
			view.NewFacetMenu(orderlist.FacetStatus, "Status", fs.Status, orders.Statuses),
			view.NewFacetMenu(orderlist.FacetFulfillment, "Fulfillment", fs.Fulfillment, orders.FulfillmentStatuses),
			view.NewFacetMenu(orderlist.FacetPayment, "Payment", fs.Payment, orders.PaymentStatuses),
		},
		FilterString: fs.QueryString(),
		List:         orderlist.Project(false, ToListOrders(res.Items)),
		Total:        res.Total,
		NewOrderHref: orderlist.NewOrderPath,
	}

	render.Component(c, http.StatusOK, pages.AdminOrdersList(middleware.GetFlash(c), page))
}

// APIList is the JSON endpoint behind list refreshes.
func (h *OrdersHandler) APIList(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	p := q.params()
	res, err := h.Store.AdminList(c.Request.Context(), p)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	limit := p.Limit
	if limit == 0 {
		limit = orders.DefaultLimit
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": ToListOrders(res.Items),
		"count":  res.Total,
		"offset": p.Offset,
		"limit":  limit,
	})
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	o, err := h.Store.GetWithItems(c.Request.Context(), c.Param("id"))
	if errors.Is(err, orders.ErrOrderNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	row := orderlist.RowOf(ToListOrder(o))
	vm := view.AdminOrderDetail{
		ID:                o.ID,
		Number:            row.Number,
		Email:             o.Email,
		Status:            o.Status,
		FulfillmentStatus: o.FulfillmentStatus,
		PaymentStatus:     o.PaymentStatus,
		CreatedAt:         row.DateTooltip,
		Total:             view.MoneyFromCents(o.TotalCents, o.Currency),
		BackHref:          orderlist.ListPath,
	}
	for _, it := range o.Items {
		vm.Items = append(vm.Items, view.AdminOrderItem{
			Title: it.Title,
			SKU:   it.SKU,
			Qty:   it.Quantity,
			Unit:  view.MoneyFromCents(it.UnitPriceCents, o.Currency),
			Line:  view.MoneyFromCents(it.UnitPriceCents*int64(it.Quantity), o.Currency),
		})
	}

	render.Component(c, http.StatusOK, pages.AdminOrderDetail(middleware.GetFlash(c), vm))
}

// New stands in for draft order creation, which is not available yet.
func (h *OrdersHandler) New(c *gin.Context) {
	render.RedirectWithFlash(c, h.Flash, orderlist.ListPath, view.FlashInfo, "Draft orders are not available yet.")
}

func ToListOrders(in []orders.Order) []orderlist.Order {
	out := make([]orderlist.Order, 0, len(in))
	for _, o := range in {
		out = append(out, ToListOrder(o))
	}
	return out
}

func ToListOrder(o orders.Order) orderlist.Order {
	items := make([]orderlist.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderlist.OrderItem{ID: it.ID, Title: it.Title, Quantity: it.Quantity})
	}
	return orderlist.Order{
		ID:                o.ID,
		DisplayID:         o.DisplayID,
		Created:           o.CreatedAt,
		Email:             o.Email,
		PaymentStatus:     o.PaymentStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		Items:             items,
	}
}
