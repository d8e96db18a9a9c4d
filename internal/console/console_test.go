package console_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordersdesk.com/app/internal/console"
	"ordersdesk.com/app/internal/orderlist"
	"ordersdesk.com/app/internal/ordersapi"
)

type capture struct {
	mu   sync.Mutex
	opts []orderlist.RefreshOptions
}

func (c *capture) Refresh(_ context.Context, opts orderlist.RefreshOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts = append(c.opts, opts)
	return nil
}

func (c *capture) all() []orderlist.RefreshOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]orderlist.RefreshOptions(nil), c.opts...)
}

func newSession(t *testing.T) (*console.Session, *capture, *[]string, *bytes.Buffer) {
	t.Helper()
	ref := &capture{}
	var paths []string
	ctrl := orderlist.NewController(ref, orderlist.NavigatorFunc(func(p string) { paths = append(paths, p) }),
		orderlist.Options{Debounce: 10 * time.Millisecond})
	t.Cleanup(ctrl.Close)

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return console.NewSession(ctrl, &out, logger), ref, &paths, &out
}

func TestSession_Commands(t *testing.T) {
	s, ref, paths, out := newSession(t)

	in := strings.Join([]string{
		":status pending",
		":payment captured",
		":filters",
		":submit",
		":clear",
		":open o_1",
		":new",
		":bogus",
		":quit",
		":submit",
	}, "\n")
	require.NoError(t, s.Run(context.Background(), strings.NewReader(in)))

	calls := ref.all()
	require.Len(t, calls, 2, "commands after :quit are ignored")
	assert.Equal(t, "&status=pending&payment_status=captured", calls[0].FiltersValue())
	assert.Nil(t, calls[0].Search)
	assert.True(t, calls[1].IsZero())

	assert.Equal(t, []string{"/a/orders/o_1", "/a/orders/new"}, *paths)
	assert.Contains(t, out.String(), `filter string "&status=pending&payment_status=captured"`)
	assert.Contains(t, out.String(), `unknown command "bogus"`)
}

func TestSession_TextIsDebouncedSearch(t *testing.T) {
	s, ref, _, _ := newSession(t)

	for _, l := range []string{"j", "ja", "jan", "jane"} {
		s.Handle(context.Background(), l)
	}

	require.Eventually(t, func() bool { return len(ref.all()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	calls := ref.all()
	require.Len(t, calls, 1)
	assert.Equal(t, "jane", calls[0].SearchValue())
}

func TestRenderSnapshot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console.RenderSnapshot(&buf, ordersapi.Snapshot{IsLoading: true, Orders: []orderlist.Order{{ID: "o_1"}}})
	assert.Equal(t, "… loading\n", buf.String())

	buf.Reset()
	console.RenderSnapshot(&buf, ordersapi.Snapshot{Orders: []orderlist.Order{
		{ID: "o_1", DisplayID: 5, Created: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), Email: "a@example.com",
			PaymentStatus: "captured", FulfillmentStatus: "fulfilled", Items: []orderlist.OrderItem{{}, {}}},
	}})
	out := buf.String()
	assert.Contains(t, out, "Order")
	assert.Contains(t, out, "#5")
	assert.Contains(t, out, "Jun 1st 2024")
	assert.Contains(t, out, "[captured]")
	assert.Contains(t, out, "1 orders")
}
