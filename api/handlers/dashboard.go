package handlers

import (
	"fitconsole/api/dto"
	statsservice "fitconsole/api/services/stats"
	"fitconsole/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard handler.
type DashboardHandler struct {
	statsService *statsservice.StatsService
	logger       logger.Interface
}

type DashboardHandlerDependencies struct {
	StatsService *statsservice.StatsService
	Logger       logger.Interface
}

// Create a new instance of the dashboard handler.
func NewDashboardHandler(deps *DashboardHandlerDependencies) *DashboardHandler {
	return &DashboardHandler{
		statsService: deps.StatsService,
		logger:       orNop(deps.Logger),
	}
}

// Handler for the dashboard numbers.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.DashboardStats(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{Success: true, Stats: *stats})
}

// Handler for the stored daily snapshots.
func (h *DashboardHandler) GetHistory(c *gin.Context) {
	history, err := h.statsService.History(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsHistoryResponse{Success: true, History: history})
}
