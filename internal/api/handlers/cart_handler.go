package handlers

import (
	"strconv"

	"Savora-Backend/domain"
	"Savora-Backend/internal/api/presenters"
	"Savora-Backend/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		GetCart(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		SetQuantity(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		ClearCart(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	resp, err := h.cartService.GetCart(c.Context(), userID, restaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.AddCartItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCartItem, err)
	}

	resp, err := h.cartService.AddItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddCartItem, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessAddCartItem)
}

func (h *cartHandler) SetQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SetQuantityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetQuantity, err)
	}

	resp, err := h.cartService.SetQuantity(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSetQuantity, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessSetQuantity)
}

func (h *cartHandler) RemoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RemoveCartItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCartItem, err)
	}

	resp, err := h.cartService.RemoveItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}

func (h *cartHandler) ClearCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	restaurantID := c.Params("restaurant_id")

	version, err := strconv.Atoi(c.Query("version", "0"))
	if err != nil || version < 0 {
		version = 0
	}

	resp, err := h.cartService.ClearCart(c.Context(), userID, restaurantID, version)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedClearCart, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessClearCart)
}
