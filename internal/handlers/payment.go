// internal/handlers/payment.go
package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/agntslab/marketplace-backend/internal/payments"
	"github.com/agntslab/marketplace-backend/internal/services"
	"github.com/agntslab/marketplace-backend/internal/utils"
)

type PaymentHandler struct {
	purchaseService *services.PurchaseService
	gateway         payments.Gateway
}

func NewPaymentHandler(purchaseService *services.PurchaseService, gateway payments.Gateway) *PaymentHandler {
	return &PaymentHandler{
		purchaseService: purchaseService,
		gateway:         gateway,
	}
}

type createPaymentIntentRequest struct {
	AgentID uint `json:"agentId" binding:"required"`
}

// POST /api/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	id, ok := utils.GetIdentityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req createPaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "agentId is required", nil)
		return
	}

	intent, err := h.purchaseService.Initiate(id.UserID, req.AgentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, intent)
}

// POST /api/webhook
// Unauthenticated; trust comes from the gateway signature alone.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read request body", nil)
		return
	}

	event, err := h.gateway.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, payments.ErrInvalidSignature) {
			utils.BadRequestResponse(c, "Invalid webhook signature", nil)
			return
		}
		utils.BadRequestResponse(c, "Invalid webhook payload", nil)
		return
	}

	if err := h.purchaseService.HandlePaymentEvent(event); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"received": true})
}
