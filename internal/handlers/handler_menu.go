package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	portsrepo "github.com/kyigit/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// menuHandler handles HTTP requests for the outlet catalog.
type menuHandler struct {
	menuService portssvc.MenuSvcFacade
}

func newMenuHandler(menuService portssvc.MenuSvcFacade) *menuHandler {
	return &menuHandler{menuService: menuService}
}

// registerMenuRoutes registers catalog read routes on rg and catalog write
// routes on adminRG.
func registerMenuRoutes(rg *gin.RouterGroup, adminRG *gin.RouterGroup, menuService portssvc.MenuSvcFacade) {
	h := newMenuHandler(menuService)

	rg.GET("/outlets", h.listOutlets)
	rg.GET("/menu-items", h.listMenuItems)

	items := adminRG.Group("/menu-items")
	{
		items.POST("", h.createMenuItem)
		items.PUT("/:menuItemID", h.updateMenuItem)
		items.POST("/:menuItemID/toggle", h.toggleMenuItem)
	}
}

// listOutlets godoc
// @Summary List outlets
// @Description Returns all points of sale, ordered by name.
// @Tags menu
// @Produce json
// @Success 200 {array} dto.OutletResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /outlets [get]
func (h *menuHandler) listOutlets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	outlets, err := h.menuService.ListOutlets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list outlets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list outlets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOutletResponses(outlets))
}

// listMenuItems godoc
// @Summary List menu items
// @Description Returns menu items, optionally filtered by outlet and active status.
// @Tags menu
// @Produce json
// @Param outletID query string false "Outlet ID"
// @Param status query string false "Status filter" Enums(all, active, inactive) default(active)
// @Success 200 {array} dto.MenuItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /menu-items [get]
func (h *menuHandler) listMenuItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	outletID := c.Query("outletID")
	status := portsrepo.MenuItemStatusFilter(c.Query("status"))

	items, err := h.menuService.ListMenuItems(c.Request.Context(), outletID, status)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list menu items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMenuItemResponses(items))
}

// createMenuItem godoc
// @Summary Create a menu item
// @Description Adds a new active catalog item to an outlet.
// @Tags menu
// @Accept json
// @Produce json
// @Param item body dto.CreateMenuItemRequest true "Menu item details"
// @Success 201 {object} dto.MenuItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Outlet not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /menu-items [post]
func (h *menuHandler) createMenuItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create menu item", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Outlet not found"})
		default:
			logger.Error("Failed to create menu item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMenuItemResponse(*item))
}

// updateMenuItem godoc
// @Summary Update a menu item
// @Description Edits an item's name, category, price and image. Past order lines keep their sale-time snapshots.
// @Tags menu
// @Accept json
// @Produce json
// @Param menuItemID path string true "Menu item ID"
// @Param item body dto.UpdateMenuItemRequest true "Updated details"
// @Success 200 {object} dto.MenuItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /menu-items/{menuItemID} [put]
func (h *menuHandler) updateMenuItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	menuItemID := c.Param("menuItemID")

	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update menu item", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.menuService.UpdateMenuItem(c.Request.Context(), menuItemID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		default:
			logger.Error("Failed to update menu item", slog.String("menu_item_id", menuItemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMenuItemResponse(*item))
}

// toggleMenuItem godoc
// @Summary Toggle a menu item
// @Description Flips an item's active flag and returns the new state.
// @Tags menu
// @Produce json
// @Param menuItemID path string true "Menu item ID"
// @Success 200 {object} dto.MenuItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /menu-items/{menuItemID}/toggle [post]
func (h *menuHandler) toggleMenuItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	menuItemID := c.Param("menuItemID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.menuService.ToggleMenuItem(c.Request.Context(), menuItemID, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		logger.Error("Failed to toggle menu item", slog.String("menu_item_id", menuItemID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle menu item"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMenuItemResponse(*item))
}
