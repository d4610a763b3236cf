package handlers

import (
	"errors"

	"Savora-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain sentinels onto HTTP status codes; anything
// unrecognised is treated as a bad request.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrCartLineNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDateFullyBooked),
		errors.Is(err, domain.ErrCancellationWindowClosed),
		errors.Is(err, domain.ErrCartConflict),
		errors.Is(err, domain.ErrInvalidStatusTransition):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrUnauthorizedOrderAccess),
		errors.Is(err, domain.ErrUnauthorizedReservationAccess):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
