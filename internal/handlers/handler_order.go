package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests for POS orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(orderService portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: orderService}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("/recent", h.listRecentOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.POST("/:orderID/print", h.markPrinted)
	}
}

// createOrder godoc
// @Summary Create a POS order
// @Description Saves an order with its line items. Tied to a stay for room charges, untied for walk-in sales.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Outlet or stay not found"
// @Failure 409 {object} ErrorResponse "Stay is not open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create order", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoActiveStay):
			c.JSON(http.StatusConflict, gin.H{"error": "Stay is not open"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Outlet or stay not found"})
		default:
			logger.Error("Failed to create order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(*order))
}

// listRecentOrders godoc
// @Summary List recent orders
// @Description Returns the latest orders across all stays, newest first.
// @Tags orders
// @Produce json
// @Param limit query int false "Maximum rows to return" default(50)
// @Success 200 {array} dto.OrderResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/recent [get]
func (h *orderHandler) listRecentOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.orderService.ListRecentOrders(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list recent orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recent orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}

// getOrder godoc
// @Summary Get an order
// @Description Returns one order with its items and total.
// @Tags orders
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		logger.Error("Failed to get order", slog.String("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// markPrinted godoc
// @Summary Mark an order as printed
// @Description Records that a receipt was produced. The first print wins; re-prints keep the original timestamp.
// @Tags orders
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 204 "Marked"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID}/print [post]
func (h *orderHandler) markPrinted(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.orderService.MarkPrinted(c.Request.Context(), orderID, actorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		logger.Error("Failed to mark order printed", slog.String("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark order printed"})
		return
	}

	c.Status(http.StatusNoContent)
}
