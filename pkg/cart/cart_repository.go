package cart

import (
	"context"

	"Savora-Backend/domain"
	"Savora-Backend/entities"

	"gorm.io/gorm"
)

type (
	CartRepository interface {
		GetCart(ctx context.Context, userID, restaurantID string) (*entities.Cart, error)
		CreateCart(ctx context.Context, cart *entities.Cart) error
		// SaveCart replaces the cart's lines and bumps its version, but only
		// if the stored version still matches expectedVersion. A stale
		// version returns domain.ErrCartConflict and writes nothing.
		SaveCart(ctx context.Context, cart *entities.Cart, expectedVersion int) error
		ClearCart(ctx context.Context, cartID string, expectedVersion int) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCart(ctx context.Context, userID, restaurantID string) (*entities.Cart, error) {
	var cart entities.Cart
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *entities.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) SaveCart(ctx context.Context, cart *entities.Cart, expectedVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Cart{}).
			Where("id = ? AND version = ?", cart.ID, expectedVersion).
			Update("version", expectedVersion+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCartConflict
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&entities.CartLine{}).Error; err != nil {
			return err
		}
		for _, line := range cart.Lines {
			line.CartID = cart.ID
			if err := tx.Create(line).Error; err != nil {
				return err
			}
		}

		cart.Version = expectedVersion + 1
		return nil
	})
}

func (r *cartRepository) ClearCart(ctx context.Context, cartID string, expectedVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Cart{}).
			Where("id = ? AND version = ?", cartID, expectedVersion).
			Update("version", expectedVersion+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCartConflict
		}
		return tx.Where("cart_id = ?", cartID).Delete(&entities.CartLine{}).Error
	})
}
