package review

import (
	"context"
	"testing"

	"Savora-Backend/domain"
	"Savora-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReviewRepo struct {
	reviews map[string]*entities.Review // keyed by userID + "/" + targetID
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*entities.Review{}}
}

func (f *fakeReviewRepo) GetReviewByUserAndTarget(_ context.Context, userID, targetID string) (*entities.Review, error) {
	r, ok := f.reviews[userID+"/"+targetID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeReviewRepo) CreateReview(_ context.Context, r *entities.Review) error {
	f.reviews[r.UserID.String()+"/"+r.TargetID.String()] = r
	return nil
}

func (f *fakeReviewRepo) UpdateReview(_ context.Context, r *entities.Review) error {
	f.reviews[r.UserID.String()+"/"+r.TargetID.String()] = r
	return nil
}

func (f *fakeReviewRepo) ListReviews(_ context.Context, targetID string) ([]*entities.Review, error) {
	var out []*entities.Review
	for _, r := range f.reviews {
		if r.TargetID.String() == targetID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) AverageRating(_ context.Context, targetID string) (float64, int64, error) {
	sum, count := 0, int64(0)
	for _, r := range f.reviews {
		if r.TargetID.String() == targetID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func TestUpsertReview_ReplacesExisting(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := &reviewService{reviewRepository: repo}
	ctx := context.Background()

	userID := uuid.New().String()
	targetID := uuid.New().String()

	first, err := svc.UpsertReview(ctx, domain.UpsertReviewRequest{
		TargetID:   targetID,
		TargetType: "restaurant",
		Rating:     5,
		ReviewText: "great",
	}, userID)
	require.NoError(t, err)

	second, err := svc.UpsertReview(ctx, domain.UpsertReviewRequest{
		TargetID:   targetID,
		TargetType: "restaurant",
		Rating:     2,
		ReviewText: "changed my mind",
	}, userID)
	require.NoError(t, err)

	// Same row replaced, never a second one.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Rating)
	assert.Equal(t, "changed my mind", second.ReviewText)
	assert.Len(t, repo.reviews, 1)
}

func TestUpsertReview_Validation(t *testing.T) {
	svc := &reviewService{reviewRepository: newFakeReviewRepo()}
	ctx := context.Background()
	userID := uuid.New().String()
	targetID := uuid.New().String()

	_, err := svc.UpsertReview(ctx, domain.UpsertReviewRequest{
		TargetID: targetID, TargetType: "restaurant", Rating: 0,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = svc.UpsertReview(ctx, domain.UpsertReviewRequest{
		TargetID: targetID, TargetType: "restaurant", Rating: 6,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = svc.UpsertReview(ctx, domain.UpsertReviewRequest{
		TargetID: targetID, TargetType: "waiter", Rating: 3,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidTargetType)
}

func TestAverageRating(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := &reviewService{reviewRepository: repo}
	ctx := context.Background()
	targetID := uuid.New().String()

	t.Run("zero with no reviews", func(t *testing.T) {
		resp, err := svc.AverageRating(ctx, targetID)
		require.NoError(t, err)
		assert.Zero(t, resp.AverageRating)
		assert.Zero(t, resp.ReviewCount)
	})

	t.Run("mean rounded to two decimals", func(t *testing.T) {
		for _, rating := range []int{4, 5, 3} {
			_, err := svc.UpsertReview(ctx, domain.UpsertReviewRequest{
				TargetID:   targetID,
				TargetType: "restaurant",
				Rating:     rating,
			}, uuid.New().String())
			require.NoError(t, err)
		}

		resp, err := svc.AverageRating(ctx, targetID)
		require.NoError(t, err)
		assert.Equal(t, 4.0, resp.AverageRating)
		assert.Equal(t, int64(3), resp.ReviewCount)
	})

	t.Run("non-terminating mean", func(t *testing.T) {
		other := uuid.New().String()
		for _, rating := range []int{5, 5, 4} {
			_, err := svc.UpsertReview(ctx, domain.UpsertReviewRequest{
				TargetID:   other,
				TargetType: "menu_item",
				Rating:     rating,
			}, uuid.New().String())
			require.NoError(t, err)
		}

		resp, err := svc.AverageRating(ctx, other)
		require.NoError(t, err)
		// 14/3 = 4.666... rounds to 4.67
		assert.Equal(t, 4.67, resp.AverageRating)
	})
}

type memoryRatingCache struct {
	entries map[string]struct {
		avg   float64
		count int64
	}
	invalidated []string
}

func (m *memoryRatingCache) GetAverage(_ context.Context, targetID string) (float64, int64, bool) {
	e, ok := m.entries[targetID]
	return e.avg, e.count, ok
}

func (m *memoryRatingCache) SetAverage(_ context.Context, targetID string, avg float64, count int64) {
	m.entries[targetID] = struct {
		avg   float64
		count int64
	}{avg, count}
}

func (m *memoryRatingCache) Invalidate(_ context.Context, targetID string) {
	delete(m.entries, targetID)
	m.invalidated = append(m.invalidated, targetID)
}

func TestUpsertReview_InvalidatesCache(t *testing.T) {
	repo := newFakeReviewRepo()
	cache := &memoryRatingCache{entries: map[string]struct {
		avg   float64
		count int64
	}{}}
	svc := &reviewService{reviewRepository: repo, cache: cache}
	ctx := context.Background()
	targetID := uuid.New().String()

	// Warm the cache, then write a review through it.
	_, err := svc.UpsertReview(ctx, domain.UpsertReviewRequest{
		TargetID:   targetID,
		TargetType: "restaurant",
		Rating:     4,
	}, uuid.New().String())
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, targetID)

	resp, err := svc.AverageRating(ctx, targetID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, resp.AverageRating)

	// Second read is served from the refreshed cache.
	resp, err = svc.AverageRating(ctx, targetID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, resp.AverageRating)
	assert.Equal(t, int64(1), resp.ReviewCount)
}
