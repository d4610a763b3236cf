package review

import (
	"context"
	"errors"

	"Savora-Backend/entities"

	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		GetReviewByUserAndTarget(ctx context.Context, userID, targetID string) (*entities.Review, error)
		CreateReview(ctx context.Context, review *entities.Review) error
		UpdateReview(ctx context.Context, review *entities.Review) error
		ListReviews(ctx context.Context, targetID string) ([]*entities.Review, error)
		AverageRating(ctx context.Context, targetID string) (float64, int64, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetReviewByUserAndTarget(ctx context.Context, userID, targetID string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ?", userID, targetID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) ListReviews(ctx context.Context, targetID string) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("target_id = ?", targetID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, targetID string) (float64, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Review{}).
		Where("target_id = ?", targetID).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}

	var avg float64
	row := r.db.WithContext(ctx).Model(&entities.Review{}).
		Where("target_id = ?", targetID).
		Select("COALESCE(AVG(rating), 0) as avg").
		Row()
	if err := row.Scan(&avg); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	return avg, count, nil
}
