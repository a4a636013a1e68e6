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

// stayHandler handles HTTP requests for the stay lifecycle and folio view.
type stayHandler struct {
	stayService portssvc.StaySvcFacade
}

func newStayHandler(stayService portssvc.StaySvcFacade) *stayHandler {
	return &stayHandler{stayService: stayService}
}

// registerStayRoutes registers routes related to stays.
func registerStayRoutes(rg *gin.RouterGroup, stayService portssvc.StaySvcFacade) {
	h := newStayHandler(stayService)

	stays := rg.Group("/stays")
	{
		stays.POST("", h.checkIn)
		stays.GET("", h.listOpenStays)
		stays.GET("/:stayID/folio", h.getFolio)
		stays.POST("/:stayID/close", h.closeStay)
	}
}

// checkIn godoc
// @Summary Check in a guest
// @Description Creates a guest and an open stay for the requested room. Unknown room numbers create the room; deactivated rooms are reactivated.
// @Tags stays
// @Accept json
// @Produce json
// @Param stay body dto.CheckInRequest true "Check-in details"
// @Success 201 {object} dto.StayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Room already has an open stay"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stays [post]
func (h *stayHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for check-in", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stay, err := h.stayService.CheckIn(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRoomOccupied):
			c.JSON(http.StatusConflict, gin.H{"error": "Room already has an open stay"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to check in", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check in"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToStayResponse(*stay))
}

// listOpenStays godoc
// @Summary List open stays
// @Description Returns all open stays with room, guest and current balance, newest check-in first.
// @Tags stays
// @Produce json
// @Success 200 {array} dto.StayResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stays [get]
func (h *stayHandler) listOpenStays(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stays, err := h.stayService.ListOpenStays(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list open stays", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list open stays"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStayResponses(stays))
}

// getFolio godoc
// @Summary Get a stay's folio
// @Description Returns the full bill for one stay: orders, payment ledger, audit trail and the reconciled balance.
// @Tags stays
// @Produce json
// @Param stayID path string true "Stay ID"
// @Success 200 {object} dto.FolioResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stays/{stayID}/folio [get]
func (h *stayHandler) getFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stayID := c.Param("stayID")

	folio, err := h.stayService.GetFolio(c.Request.Context(), stayID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stay not found"})
			return
		}
		logger.Error("Failed to get folio", slog.String("stay_id", stayID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get folio"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFolioResponse(*folio))
}

// closeStay godoc
// @Summary Close a stay
// @Description Transitions an open stay to closed. A remaining balance does not block the close.
// @Tags stays
// @Produce json
// @Param stayID path string true "Stay ID"
// @Success 204 "Closed"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Stay is already closed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stays/{stayID}/close [post]
func (h *stayHandler) closeStay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stayID := c.Param("stayID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.stayService.CloseStay(c.Request.Context(), stayID, actorID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Stay not found"})
		case errors.Is(err, apperrors.ErrStayClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Stay is already closed"})
		default:
			logger.Error("Failed to close stay", slog.String("stay_id", stayID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close stay"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
