package domain

import (
	"errors"
	"time"
)

const (
	OrderStatusOngoing   = "ongoing"
	OrderStatusCollected = "collected"
	OrderStatusCancelled = "cancelled"

	PaymentMethodWallet  = "Wallet"
	PaymentMethodVoucher = "Voucher"
)

var (
	MessageSuccessCheckout          = "order placed successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessGetOrder          = "order retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated successfully"
	MessageSuccessGetPickupQR       = "pickup code generated successfully"

	MessageFailedCheckout          = "failed to place order"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedGetOrder          = "failed to retrieve order"
	MessageFailedUpdateOrderStatus = "failed to update order status"
	MessageFailedGetPickupQR       = "failed to generate pickup code"

	ErrOrderNotFound           = errors.New("order not found")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInsufficientFunds       = errors.New("insufficient wallet balance")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrVoucherRequired         = errors.New("voucher code is required")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrUnauthorizedOrderAccess = errors.New("unauthorized access to order")
)

type (
	CheckoutRequest struct {
		RestaurantID  string `json:"restaurant_id" validate:"required,uuid"`
		PaymentMethod string `json:"payment_method" validate:"required,oneof=Wallet Voucher"`
		VoucherCode   string `json:"voucher_code" validate:"omitempty"`
	}

	CheckoutResponse struct {
		OrderID     string  `json:"order_id"`
		Status      string  `json:"status"`
		TotalAmount float64 `json:"total_amount"`
	}

	OrderItemResponse struct {
		ProductID       string  `json:"product_id"`
		Name            string  `json:"name"`
		Quantity        int     `json:"quantity"`
		PriceAtPurchase float64 `json:"price_at_purchase"`
		ImageURL        string  `json:"image_url,omitempty"`
	}

	OrderResponse struct {
		ID            string              `json:"id"`
		RestaurantID  string              `json:"restaurant_id"`
		Status        string              `json:"status"`
		TotalAmount   float64             `json:"total_amount"`
		PaymentMethod string              `json:"payment_method"`
		Items         []OrderItemResponse `json:"items"`
		CreatedAt     time.Time           `json:"created_at"`
		UpdatedAt     time.Time           `json:"updated_at"`
		CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=collected cancelled"`
	}
)
