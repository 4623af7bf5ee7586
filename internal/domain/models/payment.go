package models

import "time"

// Payment records money received against a laundry order. Amount is in cents.
type Payment struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	Amount     int64     `json:"amount"`
	Method     string    `json:"method"` // cash | transfer | card
	Reference  string    `json:"reference"`
	ReceivedBy int64     `json:"received_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case "cash", "transfer", "card":
		return true
	}
	return false
}
