// Package respond renders every API response in one envelope shape:
//
//	success: {"success": true,  "data": ..., "_meta": {...}}
//	failure: {"success": false, "error": "...", "code": "...", "_meta": {...}}
//
// _meta always carries the request's correlation ID and an RFC 3339 UTC
// timestamp; list responses add total/limit/offset/count. No handler writes
// a bare body.
package respond

import (
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
)

// Stable machine codes. Clients branch on these, not on error prose.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidSortField = "INVALID_SORT_FIELD"
	CodeInvalidOrder     = "INVALID_ORDER"
	CodeAuthRequired     = "AUTH_REQUIRED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeServerError      = "SERVER_ERROR"
)

// Meta is the envelope metadata block.
type Meta struct {
	CorrelationID string `json:"correlationId"`
	Timestamp     string `json:"timestamp"`
	Total         *int64 `json:"total,omitempty"`
	Limit         *int   `json:"limit,omitempty"`
	Offset        *int   `json:"offset,omitempty"`
	Count         *int   `json:"count,omitempty"`
}

// Page carries list metadata into the envelope.
type Page struct {
	Total  int64
	Limit  int
	Offset int
}

func newMeta(c *gin.Context) Meta {
	return Meta{
		CorrelationID: CorrelationID(c),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

// OK writes a success envelope with the given payload.
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"_meta":   newMeta(c),
	})
}

// List writes a success envelope for a page of items. count is always the
// length of the returned page; total is the full matching-row count.
func List(c *gin.Context, items any, page Page) {
	count := sliceLen(items)
	meta := newMeta(c)
	meta.Total = &page.Total
	meta.Limit = &page.Limit
	meta.Offset = &page.Offset
	meta.Count = &count
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"_meta":   meta,
	})
}

// Err writes a failure envelope. code may be empty for purely human errors.
func Err(c *gin.Context, status int, message, code string) {
	body := gin.H{
		"success": false,
		"error":   message,
		"_meta":   newMeta(c),
	}
	if code != "" {
		body["code"] = code
	}
	c.JSON(status, body)
}

// AbortErr writes a failure envelope and stops the middleware chain.
func AbortErr(c *gin.Context, status int, message, code string) {
	Err(c, status, message, code)
	c.Abort()
}

// RateLimited writes the 429 envelope with a retry hint in seconds and stops
// the chain.
func RateLimited(c *gin.Context, message string, retryAfter int) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"success":    false,
		"error":      message,
		"code":       CodeRateLimited,
		"retryAfter": retryAfter,
		"_meta":      newMeta(c),
	})
	c.Abort()
}

func sliceLen(items any) int {
	if items == nil {
		return 0
	}
	v := reflect.ValueOf(items)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		return v.Len()
	}
	return 0
}
