package review

import (
	"context"
	"errors"
	"math"

	"Savora-Backend/domain"
	"Savora-Backend/entities"
	"Savora-Backend/internal/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		UpsertReview(ctx context.Context, req domain.UpsertReviewRequest, userID string) (domain.ReviewResponse, error)
		ListReviews(ctx context.Context, targetID string) ([]domain.ReviewResponse, error)
		AverageRating(ctx context.Context, targetID string) (domain.AverageRatingResponse, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		cache            RatingCache
		publisher        events.Publisher
	}
)

func NewReviewService(reviewRepository ReviewRepository, cache RatingCache, publisher events.Publisher) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		cache:            cache,
		publisher:        publisher,
	}
}

// UpsertReview enforces the at-most-one-review-per-(user, target) rule:
// a second submission by the same user replaces the first.
func (s *reviewService) UpsertReview(ctx context.Context, req domain.UpsertReviewRequest, userID string) (domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ReviewResponse{}, domain.ErrInvalidRating
	}
	if req.TargetType != "restaurant" && req.TargetType != "menu_item" {
		return domain.ReviewResponse{}, domain.ErrInvalidTargetType
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}
	targetUUID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	existing, err := s.reviewRepository.GetReviewByUserAndTarget(ctx, userID, req.TargetID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReviewResponse{}, err
	}

	var review *entities.Review
	if existing != nil {
		existing.Rating = req.Rating
		existing.ReviewText = req.ReviewText
		if err := s.reviewRepository.UpdateReview(ctx, existing); err != nil {
			return domain.ReviewResponse{}, err
		}
		review = existing
	} else {
		review = &entities.Review{
			ID:         uuid.New(),
			UserID:     userUUID,
			TargetID:   targetUUID,
			TargetType: req.TargetType,
			Rating:     req.Rating,
			ReviewText: req.ReviewText,
		}
		if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
			return domain.ReviewResponse{}, err
		}
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, req.TargetID)
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.Event{
			Type:     events.TypeReviewUpdated,
			UserID:   userID,
			EntityID: req.TargetID,
		})
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) ListReviews(ctx context.Context, targetID string) ([]domain.ReviewResponse, error) {
	reviews, err := s.reviewRepository.ListReviews(ctx, targetID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, toReviewResponse(review))
	}
	return result, nil
}

// AverageRating returns 0 with no error when the target has no reviews.
func (s *reviewService) AverageRating(ctx context.Context, targetID string) (domain.AverageRatingResponse, error) {
	if s.cache != nil {
		if avg, count, ok := s.cache.GetAverage(ctx, targetID); ok {
			return domain.AverageRatingResponse{
				TargetID:      targetID,
				AverageRating: avg,
				ReviewCount:   count,
			}, nil
		}
	}

	avg, count, err := s.reviewRepository.AverageRating(ctx, targetID)
	if err != nil {
		return domain.AverageRatingResponse{}, err
	}

	rounded := roundTo2(avg)
	if s.cache != nil {
		s.cache.SetAverage(ctx, targetID, rounded, count)
	}

	return domain.AverageRatingResponse{
		TargetID:      targetID,
		AverageRating: rounded,
		ReviewCount:   count,
	}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toReviewResponse(review *entities.Review) domain.ReviewResponse {
	resp := domain.ReviewResponse{
		ID:         review.ID.String(),
		UserID:     review.UserID.String(),
		TargetID:   review.TargetID.String(),
		TargetType: review.TargetType,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
	}
	if review.User != nil {
		resp.UserName = review.User.Name
	}
	return resp
}
