package model

import "time"

// CartItem maps a (session, medicine) pair to a quantity. At most one row
// exists per pair; adding the same medicine again increments the quantity.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SessionID  string    `json:"session_id" gorm:"size:128;not null;index:idx_session_medicine,unique"`
	MedicineID uint      `json:"medicine_id" gorm:"not null;index:idx_session_medicine,unique"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
