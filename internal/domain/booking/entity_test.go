//go:build unit

package booking_test

import (
	"testing"
	"time"

	"eventtix/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		ttID := uuid.New()
		bk, err := booking.NewBooking(eventID, userID, &ttID, 2, now)
		require.NoError(t, err)
		require.NotNil(t, bk)

		assert.NotEqual(t, uuid.Nil, bk.ID())
		assert.Equal(t, eventID, bk.EventID())
		assert.Equal(t, userID, bk.UserID())
		require.NotNil(t, bk.TicketTypeID())
		assert.Equal(t, ttID, *bk.TicketTypeID())
		assert.Equal(t, int32(2), bk.Quantity())
		assert.Equal(t, booking.StatusRegistered, bk.Status())
		assert.Equal(t, now, bk.RegisteredAt())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, qty := range []int32{0, -5} {
			bk, err := booking.NewBooking(eventID, userID, nil, qty, now)
			require.Nil(t, bk)
			require.ErrorIs(t, err, booking.ErrInvalidQuantity)
		}
	})
}

func TestBookingStatus(t *testing.T) {
	assert.True(t, booking.StatusRegistered.IsValid())
	assert.True(t, booking.StatusNoShow.IsValid())
	assert.False(t, booking.Status("confirmed").IsValid())
}
