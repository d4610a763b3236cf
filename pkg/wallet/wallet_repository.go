package wallet

import (
	"context"
	"errors"

	"Savora-Backend/entities"

	"gorm.io/gorm"
)

type (
	WalletRepository interface {
		GetBalance(ctx context.Context, userID string) (float64, error)
		CreateTransaction(ctx context.Context, tx *entities.WalletTransaction) error
		GetTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.WalletTransaction, int64, error)
	}

	walletRepository struct {
		db *gorm.DB
	}
)

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetBalance(ctx context.Context, userID string) (float64, error) {
	// The latest ledger row carries the current balance.
	var latestTx entities.WalletTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&latestTx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // No transactions yet, balance is 0
		}
		return 0, err
	}

	return latestTx.Balance, nil
}

func (r *walletRepository) CreateTransaction(ctx context.Context, tx *entities.WalletTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *walletRepository) GetTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.WalletTransaction, int64, error) {
	var transactions []*entities.WalletTransaction
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.WalletTransaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}
