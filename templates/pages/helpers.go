package pages

import "strconv"

func ordersCount(n int64) string {
	if n == 1 {
		return "1 order"
	}
	return strconv.FormatInt(n, 10) + " orders"
}
