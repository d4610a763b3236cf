package order

import (
	"context"

	"Savora-Backend/domain"
	"Savora-Backend/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		// PerformCheckout writes the order (with its item snapshot), the
		// wallet debit when present, and the cart clear in one database
		// transaction. Any failure rolls the whole step back; no partial
		// order is ever left behind.
		PerformCheckout(ctx context.Context, order *entities.Order, walletTx *entities.WalletTransaction, cartID string, cartVersion int) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		ListOrders(ctx context.Context, userID string) ([]*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, order *entities.Order) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) PerformCheckout(ctx context.Context, order *entities.Order, walletTx *entities.WalletTransaction, cartID string, cartVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if walletTx != nil {
			if err := tx.Create(walletTx).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&entities.Cart{}).
			Where("id = ? AND version = ?", cartID, cartVersion).
			Update("version", cartVersion+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCartConflict
		}

		return tx.Where("cart_id = ?", cartID).Delete(&entities.CartLine{}).Error
	})
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":       order.Status,
			"completed_at": order.CompletedAt,
		}).Error
}
