package domain

import (
	"errors"
	"time"
)

const (
	WalletTransactionTopUp        = "TopUp"
	WalletTransactionOrderPayment = "OrderPayment"
)

var (
	MessageSuccessGetWalletBalance = "wallet balance retrieved successfully"
	MessageSuccessTopUpWallet      = "wallet topped up successfully"
	MessageSuccessGetWalletHistory = "wallet transaction history retrieved successfully"

	MessageFailedGetWalletBalance = "failed to retrieve wallet balance"
	MessageFailedTopUpWallet      = "failed to top up wallet"
	MessageFailedGetWalletHistory = "failed to retrieve wallet transaction history"

	ErrInvalidTopUpAmount = errors.New("top up amount must be positive")
)

type (
	TopUpRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	WalletBalanceResponse struct {
		Balance float64 `json:"balance"`
	}

	WalletTransactionResponse struct {
		ID          string    `json:"id"`
		Amount      float64   `json:"amount"`
		Type        string    `json:"type"`
		Description string    `json:"description"`
		Balance     float64   `json:"balance"`
		OrderID     string    `json:"order_id,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
