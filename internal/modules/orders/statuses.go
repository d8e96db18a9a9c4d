package orders

// Values the backend recognises for each facet filter.
var (
	Statuses            = []string{"pending", "completed", "archived", "canceled", "requires_action"}
	FulfillmentStatuses = []string{"not_fulfilled", "partially_fulfilled", "fulfilled", "partially_shipped", "shipped", "partially_returned", "returned", "canceled", "requires_action"}
	PaymentStatuses     = []string{"not_paid", "awaiting", "captured", "partially_refunded", "refunded", "canceled", "requires_action"}
)
