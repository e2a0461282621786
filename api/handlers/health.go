package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness probe.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
