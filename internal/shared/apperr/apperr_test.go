package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"ordersdesk.com/app/internal/shared/apperr"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{apperr.InvalidErr("bad", nil), http.StatusBadRequest},
		{apperr.NotFoundErr("missing"), http.StatusNotFound},
		{apperr.UnauthorizedErr("who"), http.StatusUnauthorized},
		{apperr.ForbiddenErr("no"), http.StatusForbidden},
		{fmt.Errorf("ctx: %w", apperr.NotFoundErr("missing")), http.StatusNotFound},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, apperr.HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("db gone")
	wrapped := apperr.Wrap(cause)

	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "Something went wrong.", apperr.PublicMessage(wrapped))
	assert.Nil(t, apperr.Wrap(nil))

	nf := apperr.NotFoundErr("Order not found.")
	assert.Same(t, nf, apperr.Wrap(nf))
	assert.Equal(t, "Order not found.", apperr.PublicMessage(nf))
}
