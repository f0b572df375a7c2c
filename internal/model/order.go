package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus values an order moves through. Admins may set free-form
// statuses beyond these; "pending" is the initial one.
const (
	OrderStatusPending = "pending"
)

// Order is an append-only checkout record. Items holds a JSON snapshot of the
// purchased lines taken at checkout time, so later medicine edits never
// rewrite history.
type Order struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	CustomerName string          `json:"customer_name" gorm:"size:255;not null"`
	Phone        string          `json:"phone" gorm:"size:32;not null;index"`
	Address      string          `json:"address" gorm:"type:text"`
	Items        string          `json:"items" gorm:"type:text;not null"`
	TotalPrice   decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null"`
	Status       string          `json:"status" gorm:"size:50;not null;default:'pending';index"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderItem is one line of the checkout snapshot serialized into Order.Items.
type OrderItem struct {
	MedicineID uint            `json:"medicine_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}
