package orders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ordersdesk.com/app/internal/modules/orders"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pass@tcp(127.0.0.1:3306)/orders?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestAdminFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   orders.AdminListParams
		contains []string
		vars     []any
	}{
		{
			name:   "no filters",
			params: orders.AdminListParams{},
			vars:   nil,
		},
		{
			name:     "facets in order",
			params:   orders.AdminListParams{Status: "pending", PaymentStatus: "captured"},
			contains: []string{"status = ?", "payment_status = ?"},
			vars:     []any{"pending", "captured"},
		},
		{
			name:     "text search",
			params:   orders.AdminListParams{Q: " jane "},
			contains: []string{"(email LIKE ? OR id LIKE ?)"},
			vars:     []any{"%jane%", "%jane%"},
		},
		{
			name:     "display id search",
			params:   orders.AdminListParams{Q: "#1042", FulfillmentStatus: "fulfilled"},
			contains: []string{"fulfillment_status = ?", "display_id = ?"},
			vars:     []any{"fulfilled", "%1042%", "%1042%", 1042},
		},
	}

	db := dryRunDB(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out []orders.Order
			stmt := db.Scopes(orders.AdminFilter(tt.params)).Find(&out).Statement

			sql := stmt.SQL.String()
			for _, frag := range tt.contains {
				assert.Contains(t, sql, frag)
			}
			if tt.vars == nil {
				assert.NotContains(t, sql, "WHERE")
				return
			}
			assert.Equal(t, tt.vars, stmt.Vars)
		})
	}
}
