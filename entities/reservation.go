package entities

import (
	"time"

	"github.com/google/uuid"
)

// Reservation rows only exist while active. Cancellation is a hard delete;
// the Upcoming/Imminent/Attended status is derived from Date at read time
// and never persisted.
type Reservation struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"index" json:"user_id"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Date           time.Time `json:"date"` // start instant of the booked slot
	NumberOfPeople int       `json:"number_of_people"`

	User       *User       `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
