package domain

import (
	"errors"
)

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddCartItem    = "item added to cart successfully"
	MessageSuccessSetQuantity    = "cart quantity updated successfully"
	MessageSuccessRemoveCartItem = "item removed from cart successfully"
	MessageSuccessClearCart      = "cart cleared successfully"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddCartItem    = "failed to add item to cart"
	MessageFailedSetQuantity    = "failed to update cart quantity"
	MessageFailedRemoveCartItem = "failed to remove item from cart"
	MessageFailedClearCart      = "failed to clear cart"

	ErrCartNotFound        = errors.New("cart not found")
	ErrCartLineNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrCartConflict        = errors.New("cart was modified by another request")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)

type (
	AddCartItemRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
		ProductID    string `json:"product_id" validate:"required,uuid"`
		Version      int    `json:"version" validate:"omitempty,min=0"`
	}

	SetQuantityRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
		ProductID    string `json:"product_id" validate:"required,uuid"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
		Version      int    `json:"version" validate:"omitempty,min=0"`
	}

	RemoveCartItemRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
		ProductID    string `json:"product_id" validate:"required,uuid"`
		Version      int    `json:"version" validate:"omitempty,min=0"`
	}

	CartLineResponse struct {
		ProductID       string  `json:"product_id"`
		Name            string  `json:"name"`
		Quantity        int     `json:"quantity"`
		PriceAtPurchase float64 `json:"price_at_purchase"`
		ImageURL        string  `json:"image_url,omitempty"`
	}

	CartResponse struct {
		ID           string             `json:"id"`
		RestaurantID string             `json:"restaurant_id"`
		Version      int                `json:"version"`
		Lines        []CartLineResponse `json:"lines"`
		Total        float64            `json:"total"` // rounded to 2 decimals for display
	}
)
