package ordersapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"ordersdesk.com/app/internal/orderlist"
)

const ordersPath = "/api/admin/orders"

// RetryConfig bounds retries of transport errors and 5xx responses.
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

var DefaultRetry = RetryConfig{
	InitialInterval: 200 * time.Millisecond,
	MaxInterval:     2 * time.Second,
	MaxElapsedTime:  10 * time.Second,
}

// Client talks to the admin orders API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	retry   RetryConfig
}

type ClientOption func(*Client)

func WithToken(token string) ClientOption { return func(c *Client) { c.token = token } }

func WithHTTPClient(h *http.Client) ClientOption { return func(c *Client) { c.http = h } }

func WithRetry(r RetryConfig) ClientOption { return func(c *Client) { c.retry = r } }

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		retry:   DefaultRetry,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type listResponse struct {
	Orders []orderlist.Order `json:"orders"`
	Count  int64             `json:"count"`
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("orders api: %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("orders api: %d", e.Code)
}

// ListURL builds the list request. The filter string is appended verbatim
// after the search parameter.
func (c *Client) ListURL(opts orderlist.RefreshOptions) string {
	var q string
	if opts.Search != nil {
		q = "q=" + url.QueryEscape(*opts.Search)
	}
	q += opts.FiltersValue()
	q = strings.TrimPrefix(q, "&")

	u := c.baseURL + ordersPath
	if q != "" {
		u += "?" + q
	}
	return u
}

func (c *Client) ListOrders(ctx context.Context, opts orderlist.RefreshOptions) ([]orderlist.Order, error) {
	target := c.ListURL(opts)

	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(c.retry.InitialInterval),
		backoff.WithMaxInterval(c.retry.MaxInterval),
		backoff.WithMaxElapsedTime(c.retry.MaxElapsedTime),
	)

	var out listResponse
	attempt := 0
	op := func() error {
		attempt++
		if attempt > 1 {
			refreshRetries.Inc()
		}
		err := c.get(ctx, target, &out)
		var se *StatusError
		if errors.As(err, &se) && se.Code < 500 {
			return backoff.Permanent(err)
		}
		return err
	}
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) get(ctx context.Context, target string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)
		return &StatusError{Code: resp.StatusCode, Message: body.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return backoff.Permanent(fmt.Errorf("decode orders: %w", err))
	}
	return nil
}
