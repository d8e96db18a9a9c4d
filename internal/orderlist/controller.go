package orderlist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/AlekSi/pointer"
)

type Options struct {
	Debounce  time.Duration
	Scheduler Scheduler
	Logger    *slog.Logger
}

// Controller holds the search box and facet state of one order list screen
// and turns user input into refresh requests.
type Controller struct {
	ref Refresher
	nav Navigator
	log *slog.Logger

	// ctx scopes debounced refreshes; it is cancelled by Close.
	ctx    context.Context
	cancel context.CancelFunc

	debounce *Debouncer

	mu      sync.Mutex
	query   string
	filters Filters
}

func NewController(ref Refresher, nav Navigator, opts Options) *Controller {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		ref:      ref,
		nav:      nav,
		log:      opts.Logger,
		ctx:      ctx,
		cancel:   cancel,
		debounce: NewDebouncer(opts.Debounce, opts.Scheduler),
	}
}

// Close drops any pending search and cancels one in flight.
func (c *Controller) Close() {
	c.debounce.Stop()
	c.cancel()
}

func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetQuery stores the search text and schedules a refresh once the input has
// been quiet for the debounce period.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	c.query = text
	c.mu.Unlock()

	c.debounce.Trigger(func() { c.search(text) })
}

func (c *Controller) search(text string) {
	opts := RefreshOptions{Search: pointer.To(text)}
	if fs := c.FilterString(); fs != "" {
		opts.Filters = pointer.To(fs)
	}
	if err := c.ref.Refresh(c.ctx, opts); err != nil {
		c.log.LogAttrs(c.ctx, slog.LevelWarn, "order_search_failed",
			slog.String("search", text),
			slog.Any("err", err),
		)
	}
}

// Submit applies the facet filters. The search text is not sent.
func (c *Controller) Submit(ctx context.Context) error {
	return c.ref.Refresh(ctx, RefreshOptions{Filters: pointer.To(c.FilterString())})
}

// Clear reloads the unfiltered list. Local query and facet state are kept.
func (c *Controller) Clear(ctx context.Context) error {
	return c.ref.Refresh(ctx, RefreshOptions{})
}

func (c *Controller) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

func (c *Controller) FilterString() string {
	return c.Filters().QueryString()
}

func (c *Controller) SetFilter(facet Facet, s FilterState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.set(facet, s)
}

func (c *Controller) SetStatusFilter(s FilterState)      { c.SetFilter(FacetStatus, s) }
func (c *Controller) SetFulfillmentFilter(s FilterState) { c.SetFilter(FacetFulfillment, s) }
func (c *Controller) SetPaymentFilter(s FilterState)     { c.SetFilter(FacetPayment, s) }

// ToggleFacet flips the dropdown visibility of a facet.
func (c *Controller) ToggleFacet(facet Facet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.filters.Get(facet)
	s.Open = !s.Open
	c.filters.set(facet, s)
}

// OpenOrder navigates to the detail view of an order.
func (c *Controller) OpenOrder(id string) {
	c.nav.Navigate(OrderPath(id))
}

func (c *Controller) NewDraftOrder() {
	c.nav.Navigate(NewOrderPath)
}
