package orderlist

import (
	"strconv"
	"time"
)

// Order is the read-only projection of a backend order used by the list.
type Order struct {
	ID                string      `json:"id"`
	DisplayID         int         `json:"display_id"`
	Created           time.Time   `json:"created"`
	Email             string      `json:"email"`
	PaymentStatus     string      `json:"payment_status"`
	FulfillmentStatus string      `json:"fulfillment_status"`
	Items             []OrderItem `json:"items"`
}

type OrderItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// Row holds the already-formatted cells of one table row.
type Row struct {
	ID                string
	Number            string
	Date              string
	DateTooltip       string
	Email             string
	PaymentStatus     string
	FulfillmentStatus string
	Items             int
	Href              string
}

// Page is what the list view draws: a spinner or the rows.
type Page struct {
	Loading bool
	Rows    []Row
}

var Columns = []string{"Order", "Date", "Customer", "Payment", "Fulfillment", "Items"}

// Project maps orders to rows. While loading no rows are produced.
func Project(isLoading bool, orders []Order) Page {
	if isLoading {
		return Page{Loading: true}
	}
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, RowOf(o))
	}
	return Page{Rows: rows}
}

func RowOf(o Order) Row {
	return Row{
		ID:                o.ID,
		Number:            "#" + strconv.Itoa(o.DisplayID),
		Date:              FormatShortDate(o.Created),
		DateTooltip:       FormatLongDate(o.Created),
		Email:             o.Email,
		PaymentStatus:     o.PaymentStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		Items:             len(o.Items),
		Href:              OrderPath(o.ID),
	}
}

// FormatShortDate renders "Jan 2nd 2006".
func FormatShortDate(t time.Time) string {
	return t.Format("Jan") + " " + Ordinal(t.Day()) + " " + t.Format("2006")
}

// FormatLongDate renders "January 2nd 2006 15:04 pm".
func FormatLongDate(t time.Time) string {
	return t.Format("January") + " " + Ordinal(t.Day()) + " " + t.Format("2006 15:04 pm")
}

// Ordinal renders 1 as "1st", 12 as "12th", 22 as "22nd".
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
