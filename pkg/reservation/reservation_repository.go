package reservation

import (
	"context"

	"Savora-Backend/entities"

	"gorm.io/gorm"
)

type (
	ReservationRepository interface {
		CreateReservation(ctx context.Context, reservation *entities.Reservation) error
		GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error)
		ListReservations(ctx context.Context, userID string) ([]*entities.Reservation, error)
		// DeleteReservation is a hard delete; cancelled reservations leave
		// no archived row behind.
		DeleteReservation(ctx context.Context, id string) error
	}

	reservationRepository struct {
		db *gorm.DB
	}
)

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	var reservation entities.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) ListReservations(ctx context.Context, userID string) ([]*entities.Reservation, error) {
	var reservations []*entities.Reservation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) DeleteReservation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Reservation{}).Error
}
