package orders

import "time"

type Order struct {
	ID                string `gorm:"primaryKey;size:36"`
	DisplayID         int    `gorm:"uniqueIndex;autoIncrement:false"`
	Email             string `gorm:"size:255;index"`
	Status            string `gorm:"size:32;index"`
	FulfillmentStatus string `gorm:"size:32;index"`
	PaymentStatus     string `gorm:"size:32;index"`
	Currency          string `gorm:"size:3"`
	TotalCents        int64
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID             string `gorm:"primaryKey;size:36"`
	OrderID        string `gorm:"size:36;index"`
	Title          string `gorm:"size:255"`
	SKU            string `gorm:"size:64"`
	Quantity       int
	UnitPriceCents int64
	CreatedAt      time.Time
}
