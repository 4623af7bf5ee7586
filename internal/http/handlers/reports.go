package handlers

import (
	"net/http"
	"strings"
	"time"

	intconfig "laundryops/internal/config"
	"laundryops/internal/domain"
	"laundryops/internal/http/respond"
	"laundryops/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/finance?from=YYYY-MM-DD&to=YYYY-MM-DD
// Payment totals over a date range, grouped by method. Finance data is
// admin/master territory; the route guard keeps workers out.
func GetFinanceReport(c *gin.Context) {
	from, to, err := reportRange(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	var totalAmount int64
	var count int64
	err = intconfig.DB.QueryRow(`
        SELECT COALESCE(SUM(amount), 0), COUNT(*)
        FROM payments
        WHERE created_at >= ? AND created_at < ?
    `, from, to).Scan(&totalAmount, &count)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rows, err := intconfig.DB.Query(`
        SELECT method, COALESCE(SUM(amount), 0), COUNT(*)
        FROM payments
        WHERE created_at >= ? AND created_at < ?
        GROUP BY method
        ORDER BY method
    `, from, to)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	type methodTotal struct {
		Method string `json:"method"`
		Amount int64  `json:"amount"`
		Count  int64  `json:"count"`
	}
	byMethod := []methodTotal{}
	for rows.Next() {
		var m methodTotal
		if err := rows.Scan(&m.Method, &m.Amount, &m.Count); err != nil {
			RespondDomainError(c, err)
			return
		}
		byMethod = append(byMethod, m)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}

	respond.OK(c, http.StatusOK, gin.H{
		"from":             utils.FormatDate(from),
		"to":               utils.FormatDate(to.AddDate(0, 0, -1)),
		"total_amount":     totalAmount,
		"total_formatted":  utils.FormatCents(totalAmount),
		"payment_count":    count,
		"totals_by_method": byMethod,
	})
}

// reportRange parses from/to dates, defaulting to the current month. The
// upper bound is exclusive (day after "to").
func reportRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ValidationError{Field: "from", Msg: "must be YYYY-MM-DD"}
		}
		from = t
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ValidationError{Field: "to", Msg: "must be YYYY-MM-DD"}
		}
		to = t.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "to", Msg: "must not be before from"}
	}
	return from, to, nil
}
