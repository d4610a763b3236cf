package reservation

import (
	"time"

	"Savora-Backend/domain"
)

// SlotInterval is the booking granularity for every restaurant.
const SlotInterval = 30 * time.Minute

// GenerateTimeSlots expands a restaurant's opening hours into the bookable
// "HH:MM" labels for one calendar date, over the half-open interval
// [opening, closing). When the date is today, slots at or before now are
// dropped; only slots starting strictly after now remain.
//
// opening == closing yields an empty schedule. Malformed or inverted hours
// return ErrInvalidOpeningHours.
func GenerateTimeSlots(openingTime, closingTime string, date time.Time, now time.Time) ([]string, error) {
	open, err := time.Parse("15:04", openingTime)
	if err != nil {
		return nil, domain.ErrInvalidOpeningHours
	}
	close_, err := time.Parse("15:04", closingTime)
	if err != nil {
		return nil, domain.ErrInvalidOpeningHours
	}

	if open.Equal(close_) {
		return []string{}, nil
	}
	if close_.Before(open) {
		return nil, domain.ErrInvalidOpeningHours
	}

	slots := make([]string, 0, int(close_.Sub(open)/SlotInterval))
	for t := open; t.Before(close_); t = t.Add(SlotInterval) {
		start := SlotInstant(date, t.Format("15:04"))
		if !start.After(now) {
			continue
		}
		slots = append(slots, t.Format("15:04"))
	}

	return slots, nil
}

// SlotInstant combines a calendar date with an already validated "HH:MM"
// label into the slot's start instant, in the date's location.
func SlotInstant(date time.Time, timeSlot string) time.Time {
	parsed, err := time.Parse("15:04", timeSlot)
	if err != nil {
		return time.Time{}
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		date.Location(),
	)
}

// DeriveStatus classifies a reservation relative to now. The status is
// computed at read time and never persisted.
func DeriveStatus(date time.Time, now time.Time) string {
	if !now.Before(date) {
		return domain.ReservationStatusAttended
	}
	if date.Sub(now) <= time.Hour {
		return domain.ReservationStatusImminent
	}
	return domain.ReservationStatusUpcoming
}
