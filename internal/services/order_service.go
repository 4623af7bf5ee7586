package services

import (
	"fmt"

	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/repositories"
)

// OrderService owns the order status flow:
// received -> in_progress -> ready -> collected.
type OrderService struct {
	OrderRepo repositories.OrderRepository
}

// Create validates a new order and stores it in the received state.
func (s OrderService) Create(o models.Order) (int64, error) {
	if o.ClientID <= 0 {
		return 0, domain.ValidationError{Field: "client_id", Msg: "is required"}
	}
	switch o.ServiceType {
	case "wash_fold", "dry_clean", "bedding":
	default:
		return 0, domain.ValidationError{Field: "service_type", Msg: "must be wash_fold, dry_clean, or bedding"}
	}
	if o.WeightKg < 0 {
		return 0, domain.ValidationError{Field: "weight_kg", Msg: "cannot be negative"}
	}
	if o.TotalAmount < 0 {
		return 0, domain.ValidationError{Field: "total_amount", Msg: "cannot be negative"}
	}
	return s.OrderRepo.Create(o)
}

// AdvanceStatus moves an order to the requested status. Only the single next
// step in the flow is legal; anything else is a conflict, so a double "mark
// ready" from two tabs surfaces instead of silently passing.
func (s OrderService) AdvanceStatus(id int64, requested string) (string, error) {
	if !models.ValidOrderStatus(requested) {
		return "", domain.ValidationError{Field: "status", Msg: "unknown status " + requested}
	}

	current, err := s.OrderRepo.GetStatus(id)
	if err != nil {
		return "", err
	}

	next := models.NextOrderStatus(current)
	if next == "" || next != requested {
		return "", domain.ConflictError{
			Resource: "order",
			Msg:      fmt.Sprintf("cannot move from %s to %s", current, requested),
		}
	}

	if err := s.OrderRepo.SetStatus(id, requested); err != nil {
		return "", err
	}
	return requested, nil
}
