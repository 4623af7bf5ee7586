package handlers

import (
	"net/http"
	"strings"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/domain/models"
	"laundryops/internal/http/middleware"
	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

var paymentSortFields = []string{"id", "amount", "created_at"}

type paymentRequest struct {
	OrderID   int64  `json:"order_id"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
}

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var req paymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if req.Amount <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "amount", Msg: "must be a positive amount in cents"})
		return
	}
	if !models.ValidPaymentMethod(req.Method) {
		RespondDomainError(c, domain.ValidationError{Field: "method", Msg: "must be cash, transfer, or card"})
		return
	}

	var exists int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM orders WHERE id = ?", req.OrderID).Scan(&exists); err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists == 0 {
		RespondDomainError(c, domain.NotFoundError{Resource: "order"})
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO payments (order_id, amount, method, reference, received_by, created_at)
        VALUES (?, ?, ?, ?, ?, NOW())
    `, req.OrderID, req.Amount, req.Method, req.Reference, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	id, _ := res.LastInsertId()
	respond.OK(c, http.StatusCreated, gin.H{"id": id})
}

// GET /api/payments?order_id=&method=&limit=&offset=&sort=&order=
func GetPayments(c *gin.Context) {
	p, err := NormalizePagination(c.Request.URL.Query(), paymentSortFields...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	where := []string{}
	args := []any{}
	if orderID := strings.TrimSpace(c.Query("order_id")); orderID != "" {
		where = append(where, "order_id = ?")
		args = append(args, orderID)
	}
	if method := strings.TrimSpace(c.Query("method")); method != "" {
		if !models.ValidPaymentMethod(method) {
			RespondDomainError(c, domain.ValidationError{Field: "method", Msg: "must be cash, transfer, or card"})
			return
		}
		where = append(where, "method = ?")
		args = append(args, method)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM payments"+clause, args...).Scan(&total); err != nil {
		RespondDomainError(c, err)
		return
	}

	query := `
        SELECT id, order_id, amount, method, reference, received_by, created_at
        FROM payments` + clause + " ORDER BY " + p.Sort + " " + p.Order + " LIMIT ? OFFSET ?"
	rows, err := intconfig.DB.Query(query, append(args, p.Limit, p.Offset)...)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	list := []models.Payment{}
	for rows.Next() {
		var pay models.Payment
		if err := rows.Scan(&pay.ID, &pay.OrderID, &pay.Amount, &pay.Method, &pay.Reference, &pay.ReceivedBy, &pay.CreatedAt); err != nil {
			RespondDomainError(c, err)
			return
		}
		list = append(list, pay)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.List(c, list, p.Page(total))
}
