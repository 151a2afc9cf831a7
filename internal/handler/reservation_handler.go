package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "reservas/internal/errors"
	"reservas/internal/service"
)

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// CreateReservationRequest represents a booking request.
type CreateReservationRequest struct {
	Type     string `json:"tipo" validate:"required,max=100"`
	Location string `json:"ubicacion" validate:"required,max=255"`
	Space    string `json:"espacio" validate:"required,max=100"`
	Date     string `json:"fecha" validate:"required,datetime=2006-01-02"`
	Time     string `json:"hora" validate:"required,datetime=15:04"`
	Reason   string `json:"motivo"`
	UserID   uint   `json:"usuario_id" validate:"required"`
}

// CreateReservation godoc
// @Summary Book a space
// @Description Fails with 409 when the space is already booked for the same fecha and hora.
// @Tags reservas
// @Accept json
// @Produce json
// @Param request body CreateReservationRequest true "Reservation data"
// @Success 200 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reservas [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	reservation, err := h.reservationService.Create(c.Request().Context(), service.CreateReservationInput{
		Type:     req.Type,
		Location: req.Location,
		Space:    req.Space,
		Date:     req.Date,
		Time:     req.Time,
		Reason:   req.Reason,
		UserID:   req.UserID,
	})
	if err != nil {
		return errorFrom(err)
	}

	return c.JSON(http.StatusOK, CreatedResponse{
		Success: true,
		ID:      reservation.ID,
		Message: "Reserva creada exitosamente.",
	})
}

// ListUserReservations godoc
// @Summary List a user's reservations
// @Tags reservas
// @Produce json
// @Param usuario_id path int true "User ID"
// @Success 200 {array} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reservas-usuario/{usuario_id} [get]
func (h *ReservationHandler) ListUserReservations(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("usuario_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "usuario_id inválido",
			Code:  "INVALID_ID",
		})
	}

	reservations, err := h.reservationService.ListByUser(c.Request().Context(), uint(userID))
	if err != nil {
		return errorFrom(err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// ListAllReservations godoc
// @Summary List all reservations with their owners
// @Tags reservas
// @Produce json
// @Success 200 {array} model.ReservationWithOwner
// @Failure 500 {object} errors.ErrorResponse
// @Router /ver-reservas [get]
func (h *ReservationHandler) ListAllReservations(c echo.Context) error {
	reservations, err := h.reservationService.ListAll(c.Request().Context())
	if err != nil {
		return errorFrom(err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// DeleteReservation godoc
// @Summary Delete a reservation
// @Tags reservas
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reserva/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	// an id that cannot exist is reported like any other missing reservation
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return errorFrom(apperrors.ErrReservationNotFound)
	}

	if err := h.reservationService.Delete(c.Request().Context(), uint(id)); err != nil {
		return errorFrom(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Reserva eliminada exitosamente.",
	})
}
