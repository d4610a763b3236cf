package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessUpsertReview     = "review submitted successfully"
	MessageSuccessGetReviews       = "reviews retrieved successfully"
	MessageSuccessGetAverageRating = "average rating retrieved successfully"

	MessageFailedUpsertReview     = "failed to submit review"
	MessageFailedGetReviews       = "failed to retrieve reviews"
	MessageFailedGetAverageRating = "failed to retrieve average rating"

	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidTargetType = errors.New("invalid review target type")
)

type (
	UpsertReviewRequest struct {
		TargetID   string `json:"target_id" validate:"required,uuid"`
		TargetType string `json:"target_type" validate:"required,oneof=restaurant menu_item"`
		Rating     int    `json:"rating" validate:"required,min=1,max=5"`
		ReviewText string `json:"review_text" validate:"omitempty,max=2000"`
	}

	ReviewResponse struct {
		ID         string    `json:"id"`
		UserID     string    `json:"user_id"`
		UserName   string    `json:"user_name,omitempty"`
		TargetID   string    `json:"target_id"`
		TargetType string    `json:"target_type"`
		Rating     int       `json:"rating"`
		ReviewText string    `json:"review_text"`
		CreatedAt  time.Time `json:"created_at"`
	}

	AverageRatingResponse struct {
		TargetID      string  `json:"target_id"`
		AverageRating float64 `json:"average_rating"` // 0 when no reviews exist
		ReviewCount   int64   `json:"review_count"`
	}
)
