package entities

import (
	"github.com/google/uuid"
)

// Cart holds the in-progress selection for one (user, restaurant) pair.
// Version is the optimistic-concurrency token: every mutation must present
// the version it read and bumps it by one on success.
type Cart struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"uniqueIndex:idx_user_restaurant_cart" json:"user_id"`
	RestaurantID uuid.UUID `gorm:"uniqueIndex:idx_user_restaurant_cart" json:"restaurant_id"`
	Version      int       `json:"version"`

	Lines []*CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"lines"`
	User  *User       `gorm:"foreignKey:UserID"`
	Timestamp
}

type CartLine struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CartID          uuid.UUID `gorm:"index" json:"cart_id"`
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	PriceAtPurchase float64   `json:"price_at_purchase"` // frozen at add time
	ImageURL        string    `json:"image_url,omitempty"`

	Timestamp
}
