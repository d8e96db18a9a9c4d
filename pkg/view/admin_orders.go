package view

import "ordersdesk.com/app/internal/orderlist"

// FacetOption is one entry of a facet dropdown.
type FacetOption struct {
	Value    string
	Selected bool
}

type FacetMenu struct {
	Facet   orderlist.Facet
	Label   string
	Param   string
	Open    bool
	Options []FacetOption
}

type AdminOrdersListPage struct {
	Q            string
	Facets       []FacetMenu
	FilterString string
	List         orderlist.Page
	Total        int64
	NewOrderHref string
	// NewOrderEnabled is false until draft orders exist.
	NewOrderEnabled bool
}

func NewFacetMenu(facet orderlist.Facet, label string, state orderlist.FilterState, values []string) FacetMenu {
	m := FacetMenu{Facet: facet, Label: label, Param: facet.Key(), Open: state.Open || state.Active()}
	for _, v := range values {
		m.Options = append(m.Options, FacetOption{Value: v, Selected: v == state.Filter})
	}
	return m
}

type AdminOrderItem struct {
	Title string
	SKU   string
	Qty   int
	Unit  string
	Line  string
}

type AdminOrderDetail struct {
	ID                string
	Number            string
	Email             string
	Status            string
	FulfillmentStatus string
	PaymentStatus     string
	CreatedAt         string
	Total             string
	Items             []AdminOrderItem
	BackHref          string
}
