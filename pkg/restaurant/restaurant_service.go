package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Savora-Backend/domain"
	"Savora-Backend/entities"
	"Savora-Backend/internal/utils/storage"
	"Savora-Backend/pkg/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RestaurantService interface {
		GetRestaurants(ctx context.Context) ([]domain.RestaurantResponse, error)
		GetRestaurant(ctx context.Context, id string) (domain.RestaurantResponse, error)
		GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuItemResponse, error)
		AddMenuItem(ctx context.Context, restaurantID string, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, itemID string, req domain.UpdateMenuItemRequest) error
		MarkDateFullyBooked(ctx context.Context, restaurantID string, req domain.MarkDateBookedRequest) error
		UnmarkDateFullyBooked(ctx context.Context, restaurantID string, req domain.MarkDateBookedRequest) error
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
		reviewRepository     review.ReviewRepository
		s3                   storage.AwsS3
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository, reviewRepository review.ReviewRepository, s3 storage.AwsS3) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		reviewRepository:     reviewRepository,
		s3:                   s3,
	}
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		// Restaurants without reviews show an average of 0.
		avg, _, err := s.reviewRepository.AverageRating(ctx, restaurant.ID.String())
		if err != nil {
			return nil, err
		}
		result = append(result, toRestaurantResponse(restaurant, avg))
	}

	return result, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id string) (domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RestaurantResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.RestaurantResponse{}, err
	}

	avg, _, err := s.reviewRepository.AverageRating(ctx, restaurant.ID.String())
	if err != nil {
		return domain.RestaurantResponse{}, err
	}

	return toRestaurantResponse(restaurant, avg), nil
}

func (s *restaurantService) GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuItemResponse, error) {
	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}

	items, err := s.restaurantRepository.GetMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toMenuItemResponse(item))
	}
	return result, nil
}

func (s *restaurantService) AddMenuItem(ctx context.Context, restaurantID string, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if req.Price < 0 {
		return domain.MenuItemResponse{}, domain.ErrInvalidPrice
	}

	itemID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("menu-%s", itemID.String()),
			req.Image,
			"menu-items",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.MenuItemResponse{}, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	item := &entities.MenuItem{
		ID:              itemID,
		RestaurantID:    restaurant.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		ImageURL:        imageURL,
		IsAvailable:     req.IsAvailable,
		PrepTimeMinutes: req.PrepTimeMinutes,
	}

	if err := s.restaurantRepository.CreateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toMenuItemResponse(item), nil
}

func (s *restaurantService) UpdateMenuItem(ctx context.Context, itemID string, req domain.UpdateMenuItemRequest) error {
	item, err := s.restaurantRepository.GetMenuItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.ErrInvalidPrice
		}
		item.Price = *req.Price
	}
	if req.PrepTimeMinutes > 0 {
		item.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("menu-%s", item.ID.String()),
			req.Image,
			"menu-items",
			storage.AllowImage...,
		)
		if err != nil {
			return err
		}
		item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	return s.restaurantRepository.UpdateMenuItem(ctx, item)
}

func (s *restaurantService) MarkDateFullyBooked(ctx context.Context, restaurantID string, req domain.MarkDateBookedRequest) error {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ErrInvalidDateFormat
	}

	return s.restaurantRepository.MarkDateFullyBooked(ctx, &entities.FullyBookedDate{
		ID:           uuid.New(),
		RestaurantID: restaurant.ID,
		Date:         date,
	})
}

func (s *restaurantService) UnmarkDateFullyBooked(ctx context.Context, restaurantID string, req domain.MarkDateBookedRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ErrInvalidDateFormat
	}
	return s.restaurantRepository.UnmarkDateFullyBooked(ctx, restaurantID, date)
}

func toRestaurantResponse(restaurant *entities.Restaurant, avgRating float64) domain.RestaurantResponse {
	return domain.RestaurantResponse{
		ID:            restaurant.ID.String(),
		Name:          restaurant.Name,
		Description:   restaurant.Description,
		Category:      restaurant.Category,
		OpeningTime:   restaurant.OpeningTime,
		ClosingTime:   restaurant.ClosingTime,
		Address:       restaurant.Address,
		ImageURL:      restaurant.ImageURL,
		AverageRating: avgRating,
	}
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:              item.ID.String(),
		RestaurantID:    item.RestaurantID.String(),
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		ImageURL:        item.ImageURL,
		IsAvailable:     item.IsAvailable,
		PrepTimeMinutes: item.PrepTimeMinutes,
	}
}
