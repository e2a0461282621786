package handlers

import (
	"fitconsole/api/dto"
	seedservice "fitconsole/api/services/seed"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SeedHandler is the handler for the demo data endpoint.
type SeedHandler struct {
	seedService *seedservice.SeedService
	logger      logger.Interface
}

type SeedHandlerDependencies struct {
	SeedService *seedservice.SeedService
	Logger      logger.Interface
}

// NewSeedHandler creates a new instance of the seed handler.
func NewSeedHandler(deps *SeedHandlerDependencies) *SeedHandler {
	return &SeedHandler{
		seedService: deps.SeedService,
		logger:      orNop(deps.Logger),
	}
}

// SeedData inserts the sample batch, without duplicates when ?idempotent=true.
func (h *SeedHandler) SeedData(c *gin.Context) {
	var qp dto.SeedQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := h.seedService.Seed(c.Request.Context(), qp.Idempotent); err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: messages.SeedSuccessMsg})
}
