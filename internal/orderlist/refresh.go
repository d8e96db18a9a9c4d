package orderlist

import (
	"context"

	"github.com/AlekSi/pointer"
)

// RefreshOptions mirrors the optional arguments of a list refresh.
// A nil field means the option is absent, which differs from an empty value:
// Submit always sends Filters, even when it is "".
type RefreshOptions struct {
	Search  *string
	Filters *string
}

func (o RefreshOptions) IsZero() bool { return o.Search == nil && o.Filters == nil }

func (o RefreshOptions) SearchValue() string  { return pointer.GetString(o.Search) }
func (o RefreshOptions) FiltersValue() string { return pointer.GetString(o.Filters) }

// Refresher re-queries the order list. It owns the network fetch and the
// loading/orders state; errors are its responsibility to surface.
type Refresher interface {
	Refresh(ctx context.Context, opts RefreshOptions) error
}

type RefresherFunc func(ctx context.Context, opts RefreshOptions) error

func (f RefresherFunc) Refresh(ctx context.Context, opts RefreshOptions) error { return f(ctx, opts) }

// Navigator moves the UI to another route.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }
