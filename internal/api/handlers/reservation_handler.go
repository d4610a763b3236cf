package handlers

import (
	"Savora-Backend/domain"
	"Savora-Backend/internal/api/presenters"
	"Savora-Backend/pkg/reservation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReservationHandler interface {
		CreateReservation(c *fiber.Ctx) error
		GetReservations(c *fiber.Ctx) error
		CancelReservation(c *fiber.Ctx) error
	}

	reservationHandler struct {
		reservationService reservation.ReservationService
		validator          *validator.Validate
	}
)

func NewReservationHandler(reservationService reservation.ReservationService, validator *validator.Validate) ReservationHandler {
	return &reservationHandler{
		reservationService: reservationService,
		validator:          validator,
	}
}

func (h *reservationHandler) CreateReservation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateReservationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReservation, err)
	}

	resp, err := h.reservationService.CreateReservation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateReservation, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreateReservation)
}

func (h *reservationHandler) GetReservations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	resp, err := h.reservationService.ListReservations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReservations, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetReservations)
}

func (h *reservationHandler) CancelReservation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reservationID := c.Params("reservation_id")

	if err := h.reservationService.CancelReservation(c.Context(), reservationID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCancelReservation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelReservation)
}
