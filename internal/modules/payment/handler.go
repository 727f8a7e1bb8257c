package payment

import (
	"context"
	"errors"
	"log"
	"net/http"

	"lakeview/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Gateway is the payment-processor surface the HTTP layer needs.
type Gateway interface {
	CreateIntent(ctx context.Context, p CreateIntentParams) (*Intent, error)
}

type Handler struct {
	gateway Gateway
}

func NewHandler(gateway Gateway) *Handler {
	return &Handler{gateway: gateway}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/create-payment-intent", h.CreatePaymentIntent)
}

func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount and currency are required")
		return
	}

	intent, err := h.gateway.CreateIntent(c.Request.Context(), CreateIntentParams{
		Amount:        req.Amount,
		Currency:      req.Currency,
		Metadata:      req.Metadata,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		if errors.Is(err, ErrAmountAndCurrencyRequired) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount and currency are required")
			return
		}
		log.Printf("level=error msg=create payment intent failed err=%v", err)
		response.Error(c, http.StatusInternalServerError, "PAYMENT_ERROR", "Failed to create payment intent")
		return
	}

	response.Success(c, http.StatusOK, CreatePaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}
