package handlers

import (
	"fitconsole/api/dto"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Write the failure envelope.
func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, dto.ErrorResponse{Success: false, Error: err.Error()})
}

// Bind the JSON body, replying 400 when it can't be parsed.
func bindJSON(c *gin.Context, log logger.Interface, body any) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		log.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		respondError(c, http.StatusBadRequest, messages.ErrInvalidPayload)
		return false
	}
	return true
}

// Log and reply a store failure.
func respondStoreError(c *gin.Context, log logger.Interface, err error) {
	log.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	respondError(c, http.StatusInternalServerError, err)
}

func orNop(log logger.Interface) logger.Interface {
	if log == nil {
		return logger.Nop{}
	}
	return log
}
