package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "reservas/internal/errors"
	"reservas/internal/service"
)

// UserHandler handles user registration.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required,max=255"`
	Email    string `json:"correo" validate:"required,max=255,email"`
	Password string `json:"contraseña" validate:"required"`
	Role     string `json:"rol" validate:"required,max=50"`
	AdminKey string `json:"claveAdmin"`
}

// Register godoc
// @Summary Register a new user
// @Description Registering the Administrador role requires claveAdmin to match the server key.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	// the role gate runs first so an elevated request without the key is always refused
	if err := h.authService.AuthorizeRole(req.Role, req.AdminKey); err != nil {
		return errorFrom(err)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		AdminKey: req.AdminKey,
	})
	if err != nil {
		if httpErr := apperrors.MapErrorToHTTP(err); httpErr.StatusCode != http.StatusInternalServerError {
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		log.Printf("register user: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "error interno del servidor al crear usuario",
			Code:  "REGISTRATION_FAILED",
		})
	}

	return c.JSON(http.StatusOK, CreatedResponse{
		Success: true,
		ID:      user.ID,
		Message: "Usuario registrado exitosamente.",
	})
}
