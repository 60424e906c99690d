package handlers

import (
	"net/http"

	"github.com/AdAtelier/atelier-go/internal/application/services"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/logging"
	"github.com/AdAtelier/atelier-go/internal/infrastructure/observability/performance"
	"github.com/AdAtelier/atelier-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// PaymentHandlers contains the payment verification handlers.
type PaymentHandlers struct {
	paymentService *services.PaymentService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewPaymentHandlers creates payment handlers with injected dependencies
func NewPaymentHandlers(paymentService *services.PaymentService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PaymentHandlers {
	return &PaymentHandlers{
		paymentService: paymentService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// PostVerify handles POST /api/v1/payments/verify.
func (h *PaymentHandlers) PostVerify(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req services.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.paymentService.VerifyPayment(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.logger.LogError(logging.ChannelPayments, "verify_payment", err, sessionID, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment verification failed"})
		return
	}
	if !result.Verified {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RedeemRequest is the body for POST /api/v1/payments/redeem.
type RedeemRequest struct {
	PaymentID  string `json:"paymentId" binding:"required"`
	AccessCode string `json:"accessCode" binding:"required"`
}

// PostRedeem handles POST /api/v1/payments/redeem, restoring premium
// access from a previously issued code.
func (h *PaymentHandlers) PostRedeem(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ok, err := h.paymentService.RedeemAccessCode(c.Request.Context(), req.PaymentID, req.AccessCode)
	if err != nil {
		h.logger.LogError(logging.ChannelPayments, "redeem_access_code", err, sessionID, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "redemption failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid access code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"redeemed": true})
}
