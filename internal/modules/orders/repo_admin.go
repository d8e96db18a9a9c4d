package orders

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type AdminListParams struct {
	Q                 string
	Status            string
	FulfillmentStatus string
	PaymentStatus     string
	Limit             int
	Offset            int
}

type AdminListResult struct {
	Items []Order
	Total int64
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

func (r *Repo) AdminList(ctx context.Context, in AdminListParams) (AdminListResult, error) {
	limit := in.Limit
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	// Session makes base safe to reuse for both the count and the page query
	base := AdminFilter(in)(r.db.WithContext(ctx).Model(&Order{})).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return AdminListResult{}, err
	}

	var items []Order
	if err := base.
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return AdminListResult{}, err
	}

	return AdminListResult{Items: items, Total: total}, nil
}

// AdminFilter narrows an order query by facets and free-text search.
// Search matches email, order id, or an exact display id.
func AdminFilter(in AdminListParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v := strings.TrimSpace(in.Status); v != "" {
			db = db.Where("status = ?", v)
		}
		if v := strings.TrimSpace(in.FulfillmentStatus); v != "" {
			db = db.Where("fulfillment_status = ?", v)
		}
		if v := strings.TrimSpace(in.PaymentStatus); v != "" {
			db = db.Where("payment_status = ?", v)
		}
		q := strings.TrimPrefix(strings.TrimSpace(in.Q), "#")
		if q == "" {
			return db
		}
		like := "%" + q + "%"
		if n, err := strconv.Atoi(q); err == nil {
			return db.Where("(email LIKE ? OR id LIKE ? OR display_id = ?)", like, like, n)
		}
		return db.Where("(email LIKE ? OR id LIKE ?)", like, like)
	}
}
