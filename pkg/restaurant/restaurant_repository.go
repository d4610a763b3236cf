package restaurant

import (
	"context"
	"time"

	"Savora-Backend/entities"

	"gorm.io/gorm"
)

type (
	RestaurantRepository interface {
		GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error)
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
		GetMenuItems(ctx context.Context, restaurantID string) ([]*entities.MenuItem, error)
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		CreateMenuItem(ctx context.Context, item *entities.MenuItem) error
		UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error

		// Fully-booked dates for the availability filter
		GetFullyBookedDates(ctx context.Context, restaurantID string) ([]time.Time, error)
		IsDateFullyBooked(ctx context.Context, restaurantID string, date time.Time) (bool, error)
		MarkDateFullyBooked(ctx context.Context, booked *entities.FullyBookedDate) error
		UnmarkDateFullyBooked(ctx context.Context, restaurantID string, date time.Time) error
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetMenuItems(ctx context.Context, restaurantID string) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *restaurantRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *restaurantRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *restaurantRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *restaurantRepository) GetFullyBookedDates(ctx context.Context, restaurantID string) ([]time.Time, error) {
	var booked []*entities.FullyBookedDate
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("date ASC").
		Find(&booked).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(booked))
	for _, b := range booked {
		dates = append(dates, b.Date)
	}
	return dates, nil
}

func (r *restaurantRepository) IsDateFullyBooked(ctx context.Context, restaurantID string, date time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FullyBookedDate{}).
		Where("restaurant_id = ? AND date = ?", restaurantID, date.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *restaurantRepository) MarkDateFullyBooked(ctx context.Context, booked *entities.FullyBookedDate) error {
	return r.db.WithContext(ctx).Create(booked).Error
}

func (r *restaurantRepository) UnmarkDateFullyBooked(ctx context.Context, restaurantID string, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("restaurant_id = ? AND date = ?", restaurantID, date.Format("2006-01-02")).
		Delete(&entities.FullyBookedDate{}).Error
}
