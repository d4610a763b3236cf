package reservation

import (
	"testing"
	"time"

	"Savora-Backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlots_FullDay(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	slots, err := GenerateTimeSlots("07:00", "17:00", date, now)
	require.NoError(t, err)

	// Half-open interval: 07:00 included, 17:00 excluded.
	assert.Len(t, slots, 20)
	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])
	assert.NotContains(t, slots, "17:00")
}

func TestGenerateTimeSlots_TodayDropsElapsedSlots(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 15, 0, 0, time.Local)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)

	slots, err := GenerateTimeSlots("07:00", "17:00", date, now)
	require.NoError(t, err)

	// 12:00 has started, 12:30 is the first slot strictly after now.
	assert.Equal(t, "12:30", slots[0])
	assert.NotContains(t, slots, "12:00")
}

func TestGenerateTimeSlots_SlotAtExactlyNowIsDropped(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 30, 0, 0, time.Local)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)

	slots, err := GenerateTimeSlots("07:00", "17:00", date, now)
	require.NoError(t, err)

	assert.NotContains(t, slots, "12:30")
	assert.Equal(t, "13:00", slots[0])
}

func TestGenerateTimeSlots_EqualOpenAndCloseIsEmpty(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	slots, err := GenerateTimeSlots("09:00", "09:00", date, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_InvertedHours(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	_, err := GenerateTimeSlots("17:00", "07:00", date, now)
	assert.ErrorIs(t, err, domain.ErrInvalidOpeningHours)
}

func TestGenerateTimeSlots_MalformedHours(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	_, err := GenerateTimeSlots("7am", "17:00", date, now)
	assert.ErrorIs(t, err, domain.ErrInvalidOpeningHours)
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"more than an hour away", now.Add(61 * time.Minute), domain.ReservationStatusUpcoming},
		{"exactly one hour away", now.Add(time.Hour), domain.ReservationStatusImminent},
		{"within the hour", now.Add(30 * time.Minute), domain.ReservationStatusImminent},
		{"starting now", now, domain.ReservationStatusAttended},
		{"in the past", now.Add(-time.Hour), domain.ReservationStatusAttended},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.date, now))
		})
	}
}
