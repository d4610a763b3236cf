package entities

import (
	"github.com/google/uuid"
)

// Review targets either a restaurant or a single menu item; TargetID carries
// whichever applies. The composite unique index enforces the
// one-review-per-(user, target) replace semantics.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_user_target_review" json:"user_id"`
	TargetID   uuid.UUID `gorm:"uniqueIndex:idx_user_target_review;index" json:"target_id"`
	TargetType string    `json:"target_type"` // restaurant, menu_item
	Rating     int       `json:"rating"`      // 1..5
	ReviewText string    `json:"review_text"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
