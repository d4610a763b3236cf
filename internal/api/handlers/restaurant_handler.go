package handlers

import (
	"Savora-Backend/domain"
	"Savora-Backend/internal/api/presenters"
	"Savora-Backend/pkg/reservation"
	"Savora-Backend/pkg/restaurant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RestaurantHandler interface {
		GetRestaurants(c *fiber.Ctx) error
		GetRestaurant(c *fiber.Ctx) error
		GetMenu(c *fiber.Ctx) error
		AddMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		GetAvailability(c *fiber.Ctx) error
		MarkDateFullyBooked(c *fiber.Ctx) error
		UnmarkDateFullyBooked(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService  restaurant.RestaurantService
		reservationService reservation.ReservationService
		validator          *validator.Validate
	}
)

func NewRestaurantHandler(
	restaurantService restaurant.RestaurantService,
	reservationService reservation.ReservationService,
	validator *validator.Validate,
) RestaurantHandler {
	return &restaurantHandler{
		restaurantService:  restaurantService,
		reservationService: reservationService,
		validator:          validator,
	}
}

func (h *restaurantHandler) GetRestaurants(c *fiber.Ctx) error {
	resp, err := h.restaurantService.GetRestaurants(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) GetRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurant_id")

	resp, err := h.restaurantService.GetRestaurant(c.Context(), restaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRestaurant, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetRestaurant)
}

func (h *restaurantHandler) GetMenu(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurant_id")

	resp, err := h.restaurantService.GetMenu(c.Context(), restaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *restaurantHandler) AddMenuItem(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurant_id")

	req := new(domain.AddMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMenuItem, err)
	}

	resp, err := h.restaurantService.AddMenuItem(c.Context(), restaurantID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddMenuItem, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessAddMenuItem)
}

func (h *restaurantHandler) UpdateMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("item_id")

	req := new(domain.UpdateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	if err := h.restaurantService.UpdateMenuItem(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateMenuItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *restaurantHandler) GetAvailability(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurant_id")
	date := c.Query("date")

	resp, err := h.reservationService.GetAvailability(c.Context(), restaurantID, date)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetAvailability, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetAvailability)
}

func (h *restaurantHandler) MarkDateFullyBooked(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurant_id")

	req := new(domain.MarkDateBookedRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkDateBooked, err)
	}

	if err := h.restaurantService.MarkDateFullyBooked(c.Context(), restaurantID, *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedMarkDateBooked, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkDateBooked)
}

func (h *restaurantHandler) UnmarkDateFullyBooked(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurant_id")

	req := new(domain.MarkDateBookedRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnmarkDateBooked, err)
	}

	if err := h.restaurantService.UnmarkDateFullyBooked(c.Context(), restaurantID, *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUnmarkDateBooked, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnmarkDateBooked)
}
