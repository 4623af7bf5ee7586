package models

import "time"

// Order statuses form a linear flow; transitions outside it are rejected.
const (
	OrderStatusReceived   = "received"
	OrderStatusInProgress = "in_progress"
	OrderStatusReady      = "ready"
	OrderStatusCollected  = "collected"
)

// Order is a laundry order. TotalAmount is in cents and caller-supplied;
// pricing itself lives outside this backend.
type Order struct {
	ID          int64      `json:"id"`
	ClientID    int64      `json:"client_id"`
	ClientName  string     `json:"client_name,omitempty"`
	ServiceType string     `json:"service_type"` // wash_fold | dry_clean | bedding
	Status      string     `json:"status"`
	WeightKg    float64    `json:"weight_kg"`
	TotalAmount int64      `json:"total_amount"`
	Notes       string     `json:"notes"`
	ReceivedAt  time.Time  `json:"received_at"`
	CollectedAt *time.Time `json:"collected_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NextOrderStatus returns the only status an order may advance to, or "".
func NextOrderStatus(current string) string {
	switch current {
	case OrderStatusReceived:
		return OrderStatusInProgress
	case OrderStatusInProgress:
		return OrderStatusReady
	case OrderStatusReady:
		return OrderStatusCollected
	}
	return ""
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusReceived, OrderStatusInProgress, OrderStatusReady, OrderStatusCollected:
		return true
	}
	return false
}
