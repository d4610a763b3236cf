package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetRestaurants   = "restaurants retrieved successfully"
	MessageSuccessGetRestaurant    = "restaurant retrieved successfully"
	MessageSuccessGetMenu          = "menu retrieved successfully"
	MessageSuccessAddMenuItem      = "menu item added successfully"
	MessageSuccessUpdateMenuItem   = "menu item updated successfully"
	MessageSuccessGetAvailability  = "availability retrieved successfully"
	MessageSuccessMarkDateBooked   = "date marked as fully booked"
	MessageSuccessUnmarkDateBooked = "date unmarked as fully booked"

	MessageFailedGetRestaurants   = "failed to retrieve restaurants"
	MessageFailedGetRestaurant    = "failed to retrieve restaurant"
	MessageFailedGetMenu          = "failed to retrieve menu"
	MessageFailedAddMenuItem      = "failed to add menu item"
	MessageFailedUpdateMenuItem   = "failed to update menu item"
	MessageFailedGetAvailability  = "failed to retrieve availability"
	MessageFailedMarkDateBooked   = "failed to mark date as fully booked"
	MessageFailedUnmarkDateBooked = "failed to unmark date as fully booked"

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidDateFormat  = errors.New("invalid date format, expected YYYY-MM-DD")
)

type (
	RestaurantResponse struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		Category      string  `json:"category"`
		OpeningTime   string  `json:"opening_time"`
		ClosingTime   string  `json:"closing_time"`
		Address       string  `json:"address"`
		ImageURL      string  `json:"image_url,omitempty"`
		AverageRating float64 `json:"average_rating"`
	}

	MenuItemResponse struct {
		ID              string  `json:"id"`
		RestaurantID    string  `json:"restaurant_id"`
		Name            string  `json:"name"`
		Description     string  `json:"description"`
		Price           float64 `json:"price"`
		ImageURL        string  `json:"image_url,omitempty"`
		IsAvailable     bool    `json:"is_available"`
		PrepTimeMinutes int     `json:"prep_time_minutes"`
	}

	AddMenuItemRequest struct {
		Name            string                `json:"name" form:"name" validate:"required"`
		Description     string                `json:"description" form:"description" validate:"omitempty"`
		Price           float64               `json:"price" form:"price" validate:"required,min=0"`
		PrepTimeMinutes int                   `json:"prep_time_minutes" form:"prep_time_minutes" validate:"omitempty,min=0"`
		IsAvailable     bool                  `json:"is_available" form:"is_available"`
		Image           *multipart.FileHeader `json:"image" form:"image"`
	}

	UpdateMenuItemRequest struct {
		Name            string                `json:"name" form:"name" validate:"omitempty"`
		Description     string                `json:"description" form:"description" validate:"omitempty"`
		Price           *float64              `json:"price" form:"price" validate:"omitempty,min=0"`
		PrepTimeMinutes int                   `json:"prep_time_minutes" form:"prep_time_minutes" validate:"omitempty,min=0"`
		IsAvailable     *bool                 `json:"is_available" form:"is_available"`
		Image           *multipart.FileHeader `json:"image" form:"image"`
	}

	AvailabilityResponse struct {
		RestaurantID     string   `json:"restaurant_id"`
		FullyBookedDates []string `json:"fully_booked_dates"` // YYYY-MM-DD
		TimeSlots        []string `json:"time_slots"`         // for the requested date, when given
	}

	MarkDateBookedRequest struct {
		Date string `json:"date" validate:"required"`
	}
)
