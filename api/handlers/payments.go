package handlers

import (
	"fitconsole/api/dto"
	resourceservice "fitconsole/api/services/resource"
	"fitconsole/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentHandler is the handler for the payment endpoints.
type PaymentHandler struct {
	resourceService *resourceservice.ResourceService
	logger          logger.Interface
}

type PaymentHandlerDependencies struct {
	ResourceService *resourceservice.ResourceService
	Logger          logger.Interface
}

// NewPaymentHandler creates a new instance of the payment handler.
func NewPaymentHandler(deps *PaymentHandlerDependencies) *PaymentHandler {
	return &PaymentHandler{
		resourceService: deps.ResourceService,
		logger:          orNop(deps.Logger),
	}
}

// ListPayments returns every payment.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.resourceService.ListPayments(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentsResponse{Success: true, Payments: payments})
}

// CreatePayment records a payment made today.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var input dto.PaymentInput
	if !bindJSON(c, h.logger, &input) {
		return
	}

	payment, err := h.resourceService.CreatePayment(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentResponse{Success: true, Payment: *payment})
}
