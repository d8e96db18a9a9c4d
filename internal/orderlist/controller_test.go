package orderlist_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordersdesk.com/app/internal/orderlist"
)

type call struct {
	search  *string
	filters *string
}

type recordingRefresher struct {
	mu    sync.Mutex
	calls []call
	err   error
}

func (r *recordingRefresher) Refresh(_ context.Context, opts orderlist.RefreshOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{search: opts.Search, filters: opts.Filters})
	return r.err
}

func (r *recordingRefresher) Calls() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]call(nil), r.calls...)
}

type recordingNavigator struct{ paths []string }

func (n *recordingNavigator) Navigate(path string) { n.paths = append(n.paths, path) }

func newController(t *testing.T) (*orderlist.Controller, *recordingRefresher, *recordingNavigator, *fakeScheduler) {
	t.Helper()
	ref := &recordingRefresher{}
	nav := &recordingNavigator{}
	sched := &fakeScheduler{}
	c := orderlist.NewController(ref, nav, orderlist.Options{Scheduler: sched})
	t.Cleanup(c.Close)
	return c, ref, nav, sched
}

func TestController_SetQuery_CoalescesWithinWindow(t *testing.T) {
	c, ref, _, sched := newController(t)

	c.SetQuery("a")
	sched.Advance(100 * time.Millisecond)
	c.SetQuery("ab")
	sched.Advance(100 * time.Millisecond)
	c.SetQuery("abc")
	sched.Advance(499 * time.Millisecond)
	assert.Empty(t, ref.Calls())

	sched.Advance(time.Millisecond)

	calls := ref.Calls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].search)
	assert.Equal(t, "abc", *calls[0].search)
	assert.Nil(t, calls[0].filters)
	assert.Equal(t, "abc", c.Query())
}

func TestController_SetQuery_SeparateWindows(t *testing.T) {
	c, ref, _, sched := newController(t)

	c.SetQuery("a")
	sched.Advance(600 * time.Millisecond)
	c.SetQuery("ab")
	sched.Advance(600 * time.Millisecond)

	calls := ref.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "a", *calls[0].search)
	assert.Equal(t, "ab", *calls[1].search)
}

func TestController_SetQuery_SendsActiveFilters(t *testing.T) {
	c, ref, _, sched := newController(t)

	c.SetQuery("jane")
	c.SetStatusFilter(orderlist.FilterState{Filter: "pending"})
	c.SetPaymentFilter(orderlist.FilterState{Filter: "captured"})
	sched.Advance(orderlist.DefaultDebounce)

	calls := ref.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "jane", *calls[0].search)
	require.NotNil(t, calls[0].filters)
	assert.Equal(t, "&status=pending&payment_status=captured", *calls[0].filters)
}

func TestController_Submit_IgnoresQuery(t *testing.T) {
	c, ref, _, sched := newController(t)

	c.SetQuery("jane")
	sched.Advance(orderlist.DefaultDebounce)
	c.SetFulfillmentFilter(orderlist.FilterState{Filter: "fulfilled"})

	require.NoError(t, c.Submit(context.Background()))

	calls := ref.Calls()
	require.Len(t, calls, 2)
	assert.Nil(t, calls[1].search)
	require.NotNil(t, calls[1].filters)
	assert.Equal(t, "&fulfillment_status=fulfilled", *calls[1].filters)
}

func TestController_Submit_NoFiltersSendsEmptyString(t *testing.T) {
	c, ref, _, _ := newController(t)

	require.NoError(t, c.Submit(context.Background()))

	calls := ref.Calls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].filters)
	assert.Equal(t, "", *calls[0].filters)
}

func TestController_Clear_SendsNoOptions(t *testing.T) {
	c, ref, _, sched := newController(t)

	c.SetQuery("jane")
	sched.Advance(orderlist.DefaultDebounce)
	c.SetStatusFilter(orderlist.FilterState{Filter: "pending"})
	c.SetPaymentFilter(orderlist.FilterState{Filter: "refunded"})

	require.NoError(t, c.Clear(context.Background()))

	calls := ref.Calls()
	require.Len(t, calls, 2)
	assert.Nil(t, calls[1].search)
	assert.Nil(t, calls[1].filters)
}

func TestController_PropagatesRefreshError(t *testing.T) {
	c, ref, _, _ := newController(t)
	ref.err = errors.New("backend down")

	assert.EqualError(t, c.Submit(context.Background()), "backend down")
	assert.EqualError(t, c.Clear(context.Background()), "backend down")
}

func TestController_Close_DropsPendingSearch(t *testing.T) {
	ref := &recordingRefresher{}
	sched := &fakeScheduler{}
	c := orderlist.NewController(ref, &recordingNavigator{}, orderlist.Options{Scheduler: sched})

	c.SetQuery("abc")
	c.Close()
	sched.Advance(time.Second)
	c.SetQuery("abcd")
	sched.Advance(time.Second)

	assert.Empty(t, ref.Calls())
}

func TestController_ToggleFacet(t *testing.T) {
	c, _, _, _ := newController(t)

	c.SetStatusFilter(orderlist.FilterState{Filter: "pending"})
	c.ToggleFacet(orderlist.FacetStatus)
	assert.Equal(t, orderlist.FilterState{Open: true, Filter: "pending"}, c.Filters().Status)

	c.ToggleFacet(orderlist.FacetStatus)
	assert.False(t, c.Filters().Status.Open)
	assert.False(t, c.Filters().Payment.Open)
}

func TestController_Navigation(t *testing.T) {
	c, _, nav, _ := newController(t)

	c.OpenOrder("o_1")
	c.NewDraftOrder()

	assert.Equal(t, []string{"/a/orders/o_1", "/a/orders/new"}, nav.paths)
}
