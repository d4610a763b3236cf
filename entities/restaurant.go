package entities

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OpeningTime string    `json:"opening_time"` // "HH:MM"
	ClosingTime string    `json:"closing_time"` // "HH:MM"
	Address     string    `json:"address"`
	ImageURL    string    `json:"image_url,omitempty"`

	MenuItems []*MenuItem `gorm:"foreignKey:RestaurantID"`
	Timestamp
}

type MenuItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID    uuid.UUID `gorm:"index" json:"restaurant_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	ImageURL        string    `json:"image_url,omitempty"`
	IsAvailable     bool      `json:"is_available"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}

// FullyBookedDate marks a calendar date on which a restaurant accepts no
// further reservations. Dates are stored truncated to midnight.
type FullyBookedDate struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID `gorm:"index;uniqueIndex:idx_restaurant_booked_date" json:"restaurant_id"`
	Date         time.Time `gorm:"type:date;uniqueIndex:idx_restaurant_booked_date" json:"date"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
