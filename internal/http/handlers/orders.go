package handlers

import (
	"net/http"
	"strings"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"
	"laundryops/internal/repositories"
	"laundryops/internal/services"

	"github.com/gin-gonic/gin"
)

var orderSortFields = []string{"id", "status", "received_at", "total_amount"}

func orderService() services.OrderService {
	return services.OrderService{
		OrderRepo: repositories.OrderRepository{DB: intconfig.DB},
	}
}

// GET /api/orders?status=&client_id=&limit=&offset=&sort=&order=
func GetOrders(c *gin.Context) {
	p, err := NormalizePagination(c.Request.URL.Query(), orderSortFields...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	where := []string{}
	args := []any{}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !models.ValidOrderStatus(status) {
			RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status " + status})
			return
		}
		where = append(where, "o.status = ?")
		args = append(args, status)
	}
	if clientID := strings.TrimSpace(c.Query("client_id")); clientID != "" {
		where = append(where, "o.client_id = ?")
		args = append(args, clientID)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	list, total, err := orderService().OrderRepo.List(clause, args, "o."+p.Sort+" "+p.Order, p.Limit, p.Offset)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.List(c, list, p.Page(total))
}

// GET /api/portal/orders — a client's own orders only.
func GetPortalOrders(c *gin.Context) {
	p, err := NormalizePagination(c.Request.URL.Query(), "id", "received_at")
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// portal accounts are linked to their client record by email
	where := " WHERE c.email = (SELECT email FROM users WHERE id = ?)"
	args := []any{middleware.UserID(c)}

	list, total, err := orderService().OrderRepo.List(where, args, "o."+p.Sort+" "+p.Order, p.Limit, p.Offset)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.List(c, list, p.Page(total))
}

// GET /api/orders/:id
func GetOrderByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	o, err := orderService().OrderRepo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.OK(c, http.StatusOK, o)
}

type orderRequest struct {
	ClientID    int64   `json:"client_id"`
	ServiceType string  `json:"service_type"`
	WeightKg    float64 `json:"weight_kg"`
	TotalAmount int64   `json:"total_amount"`
	Notes       string  `json:"notes"`
}

// POST /api/orders
func CreateOrder(c *gin.Context) {
	var req orderRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	id, err := orderService().Create(models.Order{
		ClientID:    req.ClientID,
		ServiceType: req.ServiceType,
		WeightKg:    req.WeightKg,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.OK(c, http.StatusCreated, gin.H{"id": id, "status": models.OrderStatusReceived})
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/orders/:id/status
func UpdateOrderStatus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req orderStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	status, err := orderService().AdvanceStatus(id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.OK(c, http.StatusOK, gin.H{"id": id, "status": status})
}
