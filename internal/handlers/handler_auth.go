package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/kyigit/hotel_folio_app/internal/apperrors"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/dto"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// authHandler handles staff authentication requests.
type authHandler struct {
	staffService portssvc.StaffSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(staffService portssvc.StaffSvcFacade, tokenService portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		staffService: staffService,
		tokenService: tokenService,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per IP to slow down PIN guessing at the shared terminal.
func registerAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Staff, services.Token)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.GET("/staff", h.listStaffByRole)
	}
}

// login godoc
// @Summary Staff login
// @Description Authenticates a staff member by username and PIN and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.staffService.Authenticate(c.Request.Context(), req.Username, req.PIN)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or PIN"})
			return
		}
		logger.Error("Login failed in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process login"})
		return
	}

	token, _, err := h.tokenService.IssueToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	logger.Info("Staff logged in", slog.String("staff_user_id", user.StaffUserID), slog.String("role", string(user.Role)))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToStaffUserResponse(*user),
	})
}

// listStaffByRole godoc
// @Summary List staff for a role
// @Description Returns active staff users for one role, for the login role picker.
// @Tags auth
// @Produce json
// @Param role query string true "Staff role" Enums(reception, service, admin)
// @Success 200 {array} dto.StaffUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/staff [get]
func (h *authHandler) listStaffByRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	role := domain.StaffRole(c.Query("role"))
	users, err := h.staffService.ListStaffByRole(c.Request.Context(), role)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffUserResponses(users))
}
