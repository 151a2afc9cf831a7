package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAdminKeyInvalid is returned when an administrator registration carries a wrong or missing key.
	ErrAdminKeyInvalid = errors.New("clave de administrador incorrecta, no puedes registrar este rol")
	// ErrEmailTaken is returned when the e-mail is already registered.
	ErrEmailTaken = errors.New("el correo ya está registrado")
	// ErrInvalidCredentials is returned for an unknown e-mail or a wrong password alike.
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	// ErrSlotTaken is returned when the space is already booked for that date and time.
	ErrSlotTaken = errors.New("el espacio ya está reservado para esa fecha y hora")
	// ErrUnknownUser is returned when a reservation references a user that does not exist.
	ErrUnknownUser = errors.New("el usuario de la reserva no existe")
	// ErrReservationNotFound is returned when no reservation matches the id.
	ErrReservationNotFound = errors.New("reserva no encontrada")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unclassified errors keep
// their message and become 500s.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAdminKeyInvalid):
		return NewHTTPError(http.StatusForbidden, ErrAdminKeyInvalid.Error(), "ADMIN_KEY_INVALID")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrSlotTaken):
		return NewHTTPError(http.StatusConflict, ErrSlotTaken.Error(), "SLOT_ALREADY_BOOKED")
	case errors.Is(err, ErrUnknownUser):
		return NewHTTPError(http.StatusBadRequest, ErrUnknownUser.Error(), "UNKNOWN_USER")
	case errors.Is(err, ErrReservationNotFound):
		return NewHTTPError(http.StatusNotFound, ErrReservationNotFound.Error(), "RESERVATION_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
