package handlers

import (
	"Savora-Backend/domain"
	"Savora-Backend/internal/api/presenters"
	"Savora-Backend/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		UpsertReview(c *fiber.Ctx) error
		GetReviews(c *fiber.Ctx) error
		GetAverageRating(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) UpsertReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpsertReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertReview, err)
	}

	resp, err := h.reviewService.UpsertReview(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpsertReview, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUpsertReview)
}

func (h *reviewHandler) GetReviews(c *fiber.Ctx) error {
	targetID := c.Params("target_id")

	resp, err := h.reviewService.ListReviews(c.Context(), targetID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetAverageRating(c *fiber.Ctx) error {
	targetID := c.Params("target_id")

	resp, err := h.reviewService.AverageRating(c.Context(), targetID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetAverageRating, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetAverageRating)
}
