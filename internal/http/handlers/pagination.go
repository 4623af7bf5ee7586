package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"laundryops/internal/domain"
	"laundryops/internal/http/respond"
)

const (
	defaultLimit = 50
	maxLimit     = 100
	defaultSort  = "id"
)

// Pagination is the normalized, bounded form of list query parameters.
// sort is guaranteed to be on the endpoint's allow-list and order is ASC or
// DESC, so both are safe to interpolate into an ORDER BY clause.
type Pagination struct {
	Limit  int
	Offset int
	Sort   string
	Order  string
}

// NormalizePagination parses limit/offset/sort/order from raw query values.
// Out-of-range limit and offset are clamped: they are benign client bugs and
// clamping preserves availability. An unknown sort column or order keyword is
// ambiguous and rejected with a 400 instead of being silently defaulted.
func NormalizePagination(query url.Values, allowedSortFields ...string) (Pagination, error) {
	p := Pagination{
		Limit:  defaultLimit,
		Offset: 0,
		Sort:   defaultSort,
		Order:  "DESC",
	}

	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			p.Limit = n
		}
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	if raw := strings.TrimSpace(query.Get("offset")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			p.Offset = n
		}
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	if raw := strings.TrimSpace(query.Get("sort")); raw != "" {
		if !contains(allowedSortFields, raw) {
			return Pagination{}, domain.ValidationError{
				Field: "sort",
				Msg:   fmt.Sprintf("invalid sort field %q, allowed: %s", raw, strings.Join(allowedSortFields, ", ")),
				Code:  respond.CodeInvalidSortField,
			}
		}
		p.Sort = raw
	}

	if raw := strings.TrimSpace(query.Get("order")); raw != "" {
		switch strings.ToUpper(raw) {
		case "ASC":
			p.Order = "ASC"
		case "DESC":
			p.Order = "DESC"
		default:
			return Pagination{}, domain.ValidationError{
				Field: "order",
				Msg:   fmt.Sprintf("invalid order %q, allowed: ASC, DESC", raw),
				Code:  respond.CodeInvalidOrder,
			}
		}
	}

	return p, nil
}

// Page converts the normalized request plus a row count into list metadata.
func (p Pagination) Page(total int64) respond.Page {
	return respond.Page{Total: total, Limit: p.Limit, Offset: p.Offset}
}

func contains(fields []string, s string) bool {
	for _, f := range fields {
		if f == s {
			return true
		}
	}
	return false
}
