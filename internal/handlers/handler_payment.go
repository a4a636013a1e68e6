package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests against the payment ledger.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// registerPaymentRoutes registers ledger routes. Listing and recording hang
// off the stay; corrections target the payment itself.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	stays := rg.Group("/stays/:stayID")
	{
		stays.POST("/payments", h.recordPayment)
		stays.GET("/payments", h.listPayments)
		stays.GET("/audit-logs", h.listAuditLogs)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("/:paymentID/cancel", h.cancelPayment)
		payments.POST("/:paymentID/adjust", h.adjustPayment)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends a payment entry to an open stay's ledger.
// @Tags payments
// @Accept json
// @Produce json
// @Param stayID path string true "Stay ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or method"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Stay is not open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stays/{stayID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stayID := c.Param("stayID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for record payment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), stayID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment amount must be positive"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoActiveStay):
			c.JSON(http.StatusConflict, gin.H{"error": "Stay is not open"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Stay not found"})
		default:
			logger.Error("Failed to record payment", slog.String("stay_id", stayID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*payment))
}

// listPayments godoc
// @Summary List a stay's ledger
// @Description Returns all ledger entries for a stay, oldest first, including reversals and adjustments.
// @Tags payments
// @Produce json
// @Param stayID path string true "Stay ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stays/{stayID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stayID := c.Param("stayID")

	payments, err := h.paymentService.ListPayments(c.Request.Context(), stayID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stay not found"})
			return
		}
		logger.Error("Failed to list payments", slog.String("stay_id", stayID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// listAuditLogs godoc
// @Summary List a stay's payment audit trail
// @Description Returns the cancel/edit audit rows for a stay, newest first.
// @Tags payments
// @Produce json
// @Param stayID path string true "Stay ID"
// @Success 200 {array} dto.AuditLogResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stays/{stayID}/audit-logs [get]
func (h *paymentHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stayID := c.Param("stayID")

	logs, err := h.paymentService.ListAuditLogs(c.Request.Context(), stayID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stay not found"})
			return
		}
		logger.Error("Failed to list audit logs", slog.String("stay_id", stayID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit logs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogResponses(logs))
}

// cancelPayment godoc
// @Summary Cancel a payment
// @Description Appends a reversal negating the payment plus an audit row, atomically. The original row is untouched.
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Param cancellation body dto.CancelPaymentRequest true "Cancellation reason"
// @Success 201 {object} dto.PaymentResponse "The reversal entry"
// @Failure 400 {object} ErrorResponse "Missing reason"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry cannot be cancelled"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID}/cancel [post]
func (h *paymentHandler) cancelPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.CancelPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for cancel payment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversal, err := h.paymentService.CancelPayment(c.Request.Context(), paymentID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingReason):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A reason is required to cancel a payment"})
		case errors.Is(err, apperrors.ErrNotCancelable):
			c.JSON(http.StatusConflict, gin.H{"error": "This entry cannot be cancelled"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		default:
			logger.Error("Failed to cancel payment", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*reversal))
}

// adjustPayment godoc
// @Summary Adjust a payment
// @Description Appends a reversal of the payment, a replacement entry with the new amount/method, and an audit row linking all three, atomically.
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Param adjustment body dto.AdjustPaymentRequest true "Adjustment details"
// @Success 201 {object} dto.AdjustPaymentResponse
// @Failure 400 {object} ErrorResponse "Missing reason or invalid new amount"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry cannot be edited"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID}/adjust [post]
func (h *paymentHandler) adjustPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.AdjustPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for adjust payment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversal, replacement, err := h.paymentService.AdjustPayment(c.Request.Context(), paymentID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingReason):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A reason is required to adjust a payment"})
		case errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "New amount must be positive"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotEditable):
			c.JSON(http.StatusConflict, gin.H{"error": "This entry cannot be edited"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		default:
			logger.Error("Failed to adjust payment", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AdjustPaymentResponse{
		Reversal:    dto.ToPaymentResponse(*reversal),
		Replacement: dto.ToPaymentResponse(*replacement),
	})
}
