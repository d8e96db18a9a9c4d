package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "ordersdesk.com/app/internal/http"
	"ordersdesk.com/app/internal/modules/orders"
)

type fakeStore struct {
	orders  []orders.Order
	lastReq orders.AdminListParams
	err     error
}

func (s *fakeStore) AdminList(_ context.Context, in orders.AdminListParams) (orders.AdminListResult, error) {
	s.lastReq = in
	if s.err != nil {
		return orders.AdminListResult{}, s.err
	}
	return orders.AdminListResult{Items: s.orders, Total: int64(len(s.orders))}, nil
}

func (s *fakeStore) GetWithItems(_ context.Context, id string) (orders.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return orders.Order{}, orders.ErrOrderNotFound
}

func newServer(t *testing.T, store *fakeStore, token string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := apphttp.NewRouter(logger, store, apphttp.RouterConfig{
		FlashSecret: []byte("test-secret-0123456789"),
		AdminToken:  token,
	})
	require.NoError(t, err)
	return r
}

func seeded() *fakeStore {
	created := time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)
	return &fakeStore{orders: []orders.Order{
		{ID: "o_1", DisplayID: 1001, Email: "jane@example.com", PaymentStatus: "captured",
			FulfillmentStatus: "not_fulfilled", Currency: "EUR", TotalCents: 2500, CreatedAt: created,
			Items: []orders.OrderItem{{ID: "i_1", Title: "Mug", Quantity: 1, UnitPriceCents: 2500}}},
		{ID: "o_2", DisplayID: 1002, Email: "joe@example.com", PaymentStatus: "awaiting",
			FulfillmentStatus: "fulfilled", Currency: "EUR", CreatedAt: created},
	}}
}

func do(r http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIList(t *testing.T) {
	store := seeded()
	r := newServer(t, store, "")

	w := do(r, http.MethodGet, "/api/admin/orders?q=jane&status=pending&payment_status=captured", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Orders []struct {
			ID        string `json:"id"`
			DisplayID int    `json:"display_id"`
			Items     []any  `json:"items"`
		} `json:"orders"`
		Count int `json:"count"`
		Limit int `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Orders, 2)
	assert.Equal(t, 1001, body.Orders[0].DisplayID)
	assert.Len(t, body.Orders[0].Items, 1)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, orders.DefaultLimit, body.Limit)

	assert.Equal(t, orders.AdminListParams{Q: "jane", Status: "pending", PaymentStatus: "captured"}, store.lastReq)
}

func TestAPIList_RejectsUnknownFacetValue(t *testing.T) {
	r := newServer(t, seeded(), "")

	w := do(r, http.MethodGet, "/api/admin/orders?status=bogus", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok, w.Body.String())
	assert.Equal(t, "Unknown order status.", fields["status"])
	assert.NotEmpty(t, body["request_id"])
}

func TestAPIList_StoreError(t *testing.T) {
	store := seeded()
	store.err = assert.AnError
	r := newServer(t, store, "")

	w := do(r, http.MethodGet, "/api/admin/orders", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestListPage(t *testing.T) {
	r := newServer(t, seeded(), "")

	w := do(r, http.MethodGet, "/a/orders?fulfillment_status=fulfilled", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, "<tr data-href="))
	assert.Contains(t, body, `data-href="/a/orders/o_2"`)
	assert.Contains(t, body, "May 3rd 2024")
	assert.Contains(t, body, `<input type="hidden" name="fulfillment_status" value="fulfilled">`)
	assert.Contains(t, body, "2 orders")
	assert.Contains(t, body, "&amp;fulfillment_status=fulfilled")
}

func TestDetailPage(t *testing.T) {
	r := newServer(t, seeded(), "")

	w := do(r, http.MethodGet, "/a/orders/o_1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "€25.00")
	assert.Contains(t, w.Body.String(), "Mug")

	w = do(r, http.MethodGet, "/a/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found.")
}

func TestNewOrder_RedirectsWithFlash(t *testing.T) {
	r := newServer(t, seeded(), "")

	w := do(r, http.MethodGet, "/a/orders/new", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/a/orders", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/a/orders", nil)
	req.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Contains(t, w2.Body.String(), "Draft orders are not available yet.")
}

func TestAdminGuard(t *testing.T) {
	r := newServer(t, seeded(), "s3cret")

	w := do(r, http.MethodGet, "/api/admin/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/admin/orders", map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/a/orders?token=s3cret&status=pending", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/a/orders?status=pending", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestHealthAndRequestID(t *testing.T) {
	r := newServer(t, seeded(), "")

	w := do(r, http.MethodGet, "/healthz", map[string]string{"X-Request-ID": "abc"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}
