package domain

import (
	"errors"
	"time"
)

const (
	ReservationStatusUpcoming = "Upcoming"
	ReservationStatusImminent = "Imminent"
	ReservationStatusAttended = "Attended"

	MinReservationPeople = 1
	MaxReservationPeople = 8
)

var (
	MessageSuccessCreateReservation = "reservation created successfully"
	MessageSuccessGetReservations   = "reservations retrieved successfully"
	MessageSuccessCancelReservation = "reservation cancelled successfully"

	MessageFailedCreateReservation = "failed to create reservation"
	MessageFailedGetReservations   = "failed to retrieve reservations"
	MessageFailedCancelReservation = "failed to cancel reservation"

	ErrReservationNotFound           = errors.New("reservation not found")
	ErrDateFullyBooked               = errors.New("date is no longer available")
	ErrReservationInPast             = errors.New("reservation date must be in the future")
	ErrTimeSlotRequired              = errors.New("date and time slot are required")
	ErrInvalidTimeSlot               = errors.New("time slot is outside opening hours")
	ErrInvalidOpeningHours           = errors.New("opening time must be before closing time")
	ErrCancellationWindowClosed      = errors.New("reservations can only be cancelled more than an hour in advance")
	ErrUnauthorizedReservationAccess = errors.New("unauthorized access to reservation")
)

type (
	CreateReservationRequest struct {
		RestaurantID   string `json:"restaurant_id" validate:"required,uuid"`
		Date           string `json:"date" validate:"required"`      // YYYY-MM-DD
		TimeSlot       string `json:"time_slot" validate:"required"` // HH:MM
		NumberOfPeople int    `json:"number_of_people" validate:"omitempty"`
	}

	ReservationResponse struct {
		ID             string    `json:"id"`
		RestaurantID   string    `json:"restaurant_id"`
		RestaurantName string    `json:"restaurant_name"`
		Date           time.Time `json:"date"`
		NumberOfPeople int       `json:"number_of_people"`
		Status         string    `json:"status"` // derived, never stored
	}
)
