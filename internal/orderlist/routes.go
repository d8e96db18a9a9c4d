package orderlist

import "net/url"

const (
	ListPath     = "/a/orders"
	NewOrderPath = "/a/orders/new"
)

func OrderPath(id string) string {
	return ListPath + "/" + url.PathEscape(id)
}
