package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reservas/internal/model"
	"reservas/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"correo" validate:"required"`
	Password string `json:"contraseña" validate:"required"`
}

// LoginResponse represents a successful login. The credential is never included.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
}

// Login godoc
// @Summary Login user
// @Description Unknown e-mails and wrong passwords return the same 401 body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errorFrom(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User:    user,
	})
}
