package orders

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmailRequired = errors.New("order email is required")
)
