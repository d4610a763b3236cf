package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID  `gorm:"index" json:"user_id"`
	RestaurantID  uuid.UUID  `json:"restaurant_id"`
	Status        string     `json:"status"` // ongoing, collected, cancelled
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"` // Wallet, Voucher
	VoucherCode   string     `json:"voucher_code,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	Items []*OrderItem `gorm:"foreignKey:OrderID"`
	User  *User        `gorm:"foreignKey:UserID"`
	Timestamp
}

// OrderItem is a frozen snapshot of a cart line; never updated after the
// order is created.
type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID         uuid.UUID `gorm:"index" json:"order_id"`
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	PriceAtPurchase float64   `json:"price_at_purchase"`
	ImageURL        string    `json:"image_url,omitempty"`

	Timestamp
}
