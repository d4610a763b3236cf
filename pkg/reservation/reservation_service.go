package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Savora-Backend/domain"
	"Savora-Backend/entities"
	"Savora-Backend/pkg/restaurant"
	"Savora-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mailer sends the reservation confirmation; failures are not surfaced to
// the booking flow.
type Mailer interface {
	SendMail(toEmail string, subject string, body string) error
}

type (
	ReservationService interface {
		GetAvailability(ctx context.Context, restaurantID string, date string) (domain.AvailabilityResponse, error)
		CreateReservation(ctx context.Context, req domain.CreateReservationRequest, userID string) (domain.ReservationResponse, error)
		ListReservations(ctx context.Context, userID string) ([]domain.ReservationResponse, error)
		CancelReservation(ctx context.Context, reservationID string, userID string) error
	}

	reservationService struct {
		reservationRepository ReservationRepository
		restaurantRepository  restaurant.RestaurantRepository
		userRepository        user.UserRepository
		cache                 AvailabilityCache
		mailer                Mailer
		now                   func() time.Time
	}
)

func NewReservationService(
	reservationRepository ReservationRepository,
	restaurantRepository restaurant.RestaurantRepository,
	userRepository user.UserRepository,
	cache AvailabilityCache,
	mailer Mailer,
) ReservationService {
	return &reservationService{
		reservationRepository: reservationRepository,
		restaurantRepository:  restaurantRepository,
		userRepository:        userRepository,
		cache:                 cache,
		mailer:                mailer,
		now:                   time.Now,
	}
}

// GetAvailability serves the selection-time view: the restaurant's fully
// booked dates plus, when a date is given, the open slots for that date.
// This path may read the cache; CreateReservation never does.
func (s *reservationService) GetAvailability(ctx context.Context, restaurantID string, date string) (domain.AvailabilityResponse, error) {
	rest, err := s.restaurantRepository.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AvailabilityResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.AvailabilityResponse{}, err
	}

	bookedDates, err := s.fullyBookedDates(ctx, restaurantID)
	if err != nil {
		return domain.AvailabilityResponse{}, err
	}

	resp := domain.AvailabilityResponse{
		RestaurantID:     restaurantID,
		FullyBookedDates: bookedDates,
		TimeSlots:        []string{},
	}

	if date == "" {
		return resp, nil
	}

	target, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return domain.AvailabilityResponse{}, domain.ErrInvalidDateFormat
	}

	// A blocked date has no bookable slots; the rejection at selection
	// time mirrors the re-check at confirmation time.
	for _, booked := range bookedDates {
		if booked == date {
			return resp, nil
		}
	}

	slots, err := GenerateTimeSlots(rest.OpeningTime, rest.ClosingTime, target, s.now())
	if err != nil {
		return domain.AvailabilityResponse{}, err
	}
	resp.TimeSlots = slots
	return resp, nil
}

func (s *reservationService) CreateReservation(ctx context.Context, req domain.CreateReservationRequest, userID string) (domain.ReservationResponse, error) {
	if req.Date == "" || req.TimeSlot == "" {
		return domain.ReservationResponse{}, domain.ErrTimeSlotRequired
	}

	rest, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReservationResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.ReservationResponse{}, err
	}

	target, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return domain.ReservationResponse{}, domain.ErrInvalidDateFormat
	}

	now := s.now()
	start := SlotInstant(target, req.TimeSlot)
	if start.IsZero() || !start.After(now) {
		return domain.ReservationResponse{}, domain.ErrReservationInPast
	}

	slots, err := GenerateTimeSlots(rest.OpeningTime, rest.ClosingTime, target, now)
	if err != nil {
		return domain.ReservationResponse{}, err
	}
	valid := false
	for _, slot := range slots {
		if slot == req.TimeSlot {
			valid = true
			break
		}
	}
	if !valid {
		return domain.ReservationResponse{}, domain.ErrInvalidTimeSlot
	}

	// Confirmation-time re-check against the store, closing the race
	// between listing availability and booking.
	blocked, err := s.restaurantRepository.IsDateFullyBooked(ctx, req.RestaurantID, target)
	if err != nil {
		return domain.ReservationResponse{}, err
	}
	if blocked {
		return domain.ReservationResponse{}, domain.ErrDateFullyBooked
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReservationResponse{}, domain.ErrParseUUID
	}

	reservation := &entities.Reservation{
		ID:             uuid.New(),
		UserID:         userUUID,
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Date:           start,
		NumberOfPeople: clampPeople(req.NumberOfPeople),
	}

	if err := s.reservationRepository.CreateReservation(ctx, reservation); err != nil {
		return domain.ReservationResponse{}, err
	}

	s.sendConfirmation(ctx, userID, reservation)

	return toReservationResponse(reservation, now), nil
}

func (s *reservationService) ListReservations(ctx context.Context, userID string) ([]domain.ReservationResponse, error) {
	reservations, err := s.reservationRepository.ListReservations(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]domain.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, toReservationResponse(reservation, now))
	}
	return result, nil
}

// CancelReservation hard-deletes the reservation, but only while it is
// still Upcoming: strictly more than one hour before the booked slot.
func (s *reservationService) CancelReservation(ctx context.Context, reservationID string, userID string) error {
	reservation, err := s.reservationRepository.GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReservationNotFound
		}
		return err
	}

	if reservation.UserID.String() != userID {
		return domain.ErrUnauthorizedReservationAccess
	}

	if DeriveStatus(reservation.Date, s.now()) != domain.ReservationStatusUpcoming {
		return domain.ErrCancellationWindowClosed
	}

	return s.reservationRepository.DeleteReservation(ctx, reservationID)
}

func (s *reservationService) fullyBookedDates(ctx context.Context, restaurantID string) ([]string, error) {
	if s.cache != nil {
		if dates, ok := s.cache.GetDates(ctx, restaurantID); ok {
			return dates, nil
		}
	}

	dates, err := s.restaurantRepository.GetFullyBookedDates(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}

	if s.cache != nil {
		s.cache.SetDates(ctx, restaurantID, formatted)
	}
	return formatted, nil
}

func (s *reservationService) sendConfirmation(ctx context.Context, userID string, reservation *entities.Reservation) {
	if s.mailer == nil || s.userRepository == nil {
		return
	}
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return
	}
	subject := fmt.Sprintf("Reservation confirmed at %s", reservation.RestaurantName)
	body := fmt.Sprintf(
		"<p>Your table for %d at %s is booked for %s.</p>",
		reservation.NumberOfPeople,
		reservation.RestaurantName,
		reservation.Date.Format("Monday, 2 January 2006 15:04"),
	)
	_ = s.mailer.SendMail(u.Email, subject, body)
}

func clampPeople(n int) int {
	if n < domain.MinReservationPeople {
		return domain.MinReservationPeople
	}
	if n > domain.MaxReservationPeople {
		return domain.MaxReservationPeople
	}
	return n
}

func toReservationResponse(reservation *entities.Reservation, now time.Time) domain.ReservationResponse {
	return domain.ReservationResponse{
		ID:             reservation.ID.String(),
		RestaurantID:   reservation.RestaurantID.String(),
		RestaurantName: reservation.RestaurantName,
		Date:           reservation.Date,
		NumberOfPeople: reservation.NumberOfPeople,
		Status:         DeriveStatus(reservation.Date, now),
	}
}
