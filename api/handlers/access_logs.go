package handlers

import (
	"fitconsole/api/dto"
	resourceservice "fitconsole/api/services/resource"
	"fitconsole/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AccessLogHandler is the handler for the entrance log endpoints.
type AccessLogHandler struct {
	resourceService *resourceservice.ResourceService
	logger          logger.Interface
}

type AccessLogHandlerDependencies struct {
	ResourceService *resourceservice.ResourceService
	Logger          logger.Interface
}

// NewAccessLogHandler creates a new instance of the access log handler.
func NewAccessLogHandler(deps *AccessLogHandlerDependencies) *AccessLogHandler {
	return &AccessLogHandler{
		resourceService: deps.ResourceService,
		logger:          orNop(deps.Logger),
	}
}

// ListAccessLogs returns every access attempt.
func (h *AccessLogHandler) ListAccessLogs(c *gin.Context) {
	logs, err := h.resourceService.ListAccessLogs(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccessLogsResponse{Success: true, Logs: logs})
}

// CreateAccessLog records an access attempt.
func (h *AccessLogHandler) CreateAccessLog(c *gin.Context) {
	var input dto.AccessLogInput
	if !bindJSON(c, h.logger, &input) {
		return
	}

	accessLog, err := h.resourceService.CreateAccessLog(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccessLogResponse{Success: true, AccessLog: *accessLog})
}
