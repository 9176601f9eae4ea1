//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"eventtix/internal/domain/inventory"
	"eventtix/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHold(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 10 * time.Minute

	t.Run("basic success case", func(t *testing.T) {
		hold, err := reservation.NewHold(eventID, nil, userID, 3, reservation.NewMoney(2500), now, ttl)
		require.NoError(t, err)
		require.NotNil(t, hold)

		assert.NotEqual(t, uuid.Nil, hold.ID())
		assert.Equal(t, eventID, hold.EventID())
		assert.Nil(t, hold.TicketTypeID())
		assert.Equal(t, int32(3), hold.Quantity())
		assert.Equal(t, int64(2500), hold.UnitPrice().Cents())
		assert.Equal(t, int64(7500), hold.TotalAmount().Cents())
		assert.Equal(t, reservation.StatusReserved, hold.Status())
		assert.Equal(t, now.Add(ttl), hold.ExpiresAt())
		assert.Equal(t, now, hold.CreatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			quantity int32
			ttl      time.Duration
			errIs    error
		}{
			{name: "zero quantity", quantity: 0, ttl: ttl, errIs: reservation.ErrInvalidQuantity},
			{name: "negative quantity", quantity: -1, ttl: ttl, errIs: reservation.ErrInvalidQuantity},
			{name: "zero ttl", quantity: 1, ttl: 0, errIs: reservation.ErrInvalidTTL},
			{name: "negative ttl", quantity: 1, ttl: -time.Minute, errIs: reservation.ErrInvalidTTL},
			{name: "minimum valid", quantity: 1, ttl: time.Nanosecond},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				hold, err := reservation.NewHold(eventID, nil, userID, c.quantity, reservation.NewMoney(100), now, c.ttl)
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, hold)
				} else {
					require.Nil(t, hold)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("free hold carries zero total", func(t *testing.T) {
		hold, err := reservation.NewHold(eventID, nil, userID, 4, reservation.NewMoney(0), now, ttl)
		require.NoError(t, err)
		assert.True(t, hold.TotalAmount().IsZero())
		assert.False(t, hold.IsPriced())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		h1, err1 := reservation.NewHold(eventID, nil, userID, 1, reservation.NewMoney(100), now, ttl)
		h2, err2 := reservation.NewHold(eventID, nil, userID, 1, reservation.NewMoney(100), now, ttl)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, h1.ID(), h2.ID())
	})
}

func TestHoldExpiry(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 10 * time.Minute

	hold, err := reservation.NewHold(eventID, nil, userID, 1, reservation.NewMoney(100), now, ttl)
	require.NoError(t, err)

	t.Run("active strictly before the TTL boundary", func(t *testing.T) {
		at := now.Add(ttl - time.Nanosecond)
		assert.True(t, hold.IsActiveAt(at))
		assert.False(t, hold.IsExpiredAt(at))
		assert.Equal(t, reservation.StatusReserved, hold.EffectiveStatusAt(at))
	})

	t.Run("expired exactly at the TTL boundary", func(t *testing.T) {
		at := now.Add(ttl)
		assert.False(t, hold.IsActiveAt(at))
		assert.True(t, hold.IsExpiredAt(at))
		assert.Equal(t, reservation.StatusExpired, hold.EffectiveStatusAt(at))
	})

	t.Run("terminal statuses never classify as expired", func(t *testing.T) {
		late := now.Add(time.Hour)
		for _, status := range []reservation.Status{
			reservation.StatusPaid,
			reservation.StatusReleased,
			reservation.StatusExpired,
		} {
			h := reservation.ReconstructHold(
				uuid.New(), eventID, nil, userID, 1,
				reservation.NewMoney(100), reservation.NewMoney(100),
				status, now.Add(ttl), now, now,
			)
			assert.False(t, h.IsExpiredAt(late), "status %s", status)
			assert.Equal(t, status, h.EffectiveStatusAt(late))
		}
	})
}

func TestHoldTarget(t *testing.T) {
	eventID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	t.Run("event-level hold targets the event pool", func(t *testing.T) {
		hold, err := reservation.NewHold(eventID, nil, userID, 1, reservation.NewMoney(0), now, time.Minute)
		require.NoError(t, err)

		kind, targetID := hold.Target()
		assert.Equal(t, inventory.TargetEvent, kind)
		assert.Equal(t, eventID, targetID)
	})

	t.Run("ticket-type hold targets the ticket type pool", func(t *testing.T) {
		ttID := uuid.New()
		hold, err := reservation.NewHold(eventID, &ttID, userID, 1, reservation.NewMoney(0), now, time.Minute)
		require.NoError(t, err)

		kind, targetID := hold.Target()
		assert.Equal(t, inventory.TargetTicketType, kind)
		assert.Equal(t, ttID, targetID)
	})
}

func TestMoney(t *testing.T) {
	t.Run("times scales by quantity", func(t *testing.T) {
		assert.Equal(t, int64(7500), reservation.NewMoney(2500).Times(3).Cents())
		assert.Equal(t, int64(0), reservation.NewMoney(0).Times(10).Cents())
	})

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, int64(300), reservation.NewMoney(100).Add(reservation.NewMoney(200)).Cents())
	})

	t.Run("from int rejects negative", func(t *testing.T) {
		_, err := reservation.NewMoneyFromInt(-1)
		require.ErrorIs(t, err, reservation.ErrNegativeAmount)

		m, err := reservation.NewMoneyFromInt(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})
}

func TestStatus(t *testing.T) {
	t.Run("terminality", func(t *testing.T) {
		assert.False(t, reservation.StatusReserved.IsTerminal())
		assert.True(t, reservation.StatusPaid.IsTerminal())
		assert.True(t, reservation.StatusExpired.IsTerminal())
		assert.True(t, reservation.StatusReleased.IsTerminal())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, reservation.StatusReserved.IsValid())
		assert.False(t, reservation.Status("pending").IsValid())
	})
}
