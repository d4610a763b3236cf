package entities

import (
	"github.com/google/uuid"
)

// WalletTransaction is an append-only ledger row. Balance carries the
// post-transaction balance, so the current balance is the latest row.
type WalletTransaction struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `gorm:"index" json:"user_id"`
	Amount      float64    `json:"amount"` // negative for debits
	Type        string     `json:"type"`   // TopUp, OrderPayment
	Description string     `json:"description"`
	Balance     float64    `json:"balance"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
