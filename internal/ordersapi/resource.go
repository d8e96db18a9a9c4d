package ordersapi

import (
	"context"
	"sync"
	"time"

	"ordersdesk.com/app/internal/orderlist"
)

// Lister fetches one page of orders. *Client implements it.
type Lister interface {
	ListOrders(ctx context.Context, opts orderlist.RefreshOptions) ([]orderlist.Order, error)
}

type Snapshot struct {
	Orders    []orderlist.Order
	IsLoading bool
	Err       error
}

// OrdersResource is the list state a screen renders from. Refresh runs the
// fetch and publishes loading and result transitions to the change hook.
// When refreshes overlap only the latest one is applied.
//
// The hook is called from whichever goroutine ran Refresh. Deliveries are
// serialised and a snapshot older than one already delivered is dropped, so
// the hook always ends on the current state.
type OrdersResource struct {
	lister   Lister
	onChange func(Snapshot)

	mu       sync.Mutex
	seq      uint64
	inFlight int
	state    Snapshot
	version  uint64

	notifyMu  sync.Mutex
	delivered uint64
}

func NewOrdersResource(l Lister, onChange func(Snapshot)) *OrdersResource {
	if onChange == nil {
		onChange = func(Snapshot) {}
	}
	return &OrdersResource{lister: l, onChange: onChange}
}

func (r *OrdersResource) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *OrdersResource) snapshotLocked() Snapshot {
	s := r.state
	s.Orders = append([]orderlist.Order(nil), r.state.Orders...)
	return s
}

// publishLocked stamps the current state with the next version. r.mu must be held.
func (r *OrdersResource) publishLocked() (uint64, Snapshot) {
	r.version++
	return r.version, r.snapshotLocked()
}

func (r *OrdersResource) deliver(version uint64, s Snapshot) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	if version <= r.delivered {
		return
	}
	r.delivered = version
	r.onChange(s)
}

func (r *OrdersResource) Refresh(ctx context.Context, opts orderlist.RefreshOptions) error {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.inFlight++
	r.state.IsLoading = true
	lv, loading := r.publishLocked()
	r.mu.Unlock()
	r.deliver(lv, loading)

	start := time.Now()
	orders, err := r.lister.ListOrders(ctx, opts)
	refreshDuration.Observe(time.Since(start).Seconds())

	r.mu.Lock()
	r.inFlight--
	stale := seq != r.seq
	switch {
	case stale:
		refreshTotal.WithLabelValues("superseded").Inc()
	case err != nil:
		refreshTotal.WithLabelValues("error").Inc()
		r.state.Err = err
	default:
		refreshTotal.WithLabelValues("ok").Inc()
		r.state.Orders = orders
		r.state.Err = nil
	}
	r.state.IsLoading = r.inFlight > 0
	dv, done := r.publishLocked()
	r.mu.Unlock()

	r.deliver(dv, done)
	if stale {
		return nil
	}
	return err
}
