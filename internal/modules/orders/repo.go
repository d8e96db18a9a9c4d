package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) GetWithItems(ctx context.Context, id string) (Order, error) {
	var o Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

type CreateInput struct {
	Email             string
	Status            string
	FulfillmentStatus string
	PaymentStatus     string
	Currency          string
	Items             []CreateItem
}

type CreateItem struct {
	Title          string
	SKU            string
	Quantity       int
	UnitPriceCents int64
}

// Create inserts an order and its items, assigning the next display id.
func (r *Repo) Create(ctx context.Context, in CreateInput) (Order, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return Order{}, ErrEmailRequired
	}

	now := time.Now().UTC()
	o := Order{
		ID:                uuid.NewString(),
		Email:             email,
		Status:            defaultStr(in.Status, "pending"),
		FulfillmentStatus: defaultStr(in.FulfillmentStatus, "not_fulfilled"),
		PaymentStatus:     defaultStr(in.PaymentStatus, "awaiting"),
		Currency:          defaultStr(in.Currency, "EUR"),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, it := range in.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		o.Items = append(o.Items, OrderItem{
			ID:             uuid.NewString(),
			OrderID:        o.ID,
			Title:          it.Title,
			SKU:            it.SKU,
			Quantity:       qty,
			UnitPriceCents: it.UnitPriceCents,
			CreatedAt:      now,
		})
		o.TotalCents += int64(qty) * it.UnitPriceCents
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last Order
		// lock the highest row so concurrent creates don't share a display id
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("display_id").
			Order("display_id DESC").
			Take(&last).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		o.DisplayID = last.DisplayID + 1
		return tx.Create(&o).Error
	})
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func defaultStr(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
