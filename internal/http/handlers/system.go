package handlers

import (
	"net/http"

	intconfig "laundryops/internal/config"
	"laundryops/internal/http/respond"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	respond.OK(c, http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		respond.Err(c, http.StatusInternalServerError, "database unreachable", respond.CodeServerError)
		return
	}
	respond.OK(c, http.StatusOK, gin.H{"database": "ok"})
}
