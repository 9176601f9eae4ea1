//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"eventtix/internal/domain/reservation"
	"eventtix/internal/infra"
	"eventtix/internal/pkg/clock"
	"eventtix/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoRows = infra.WrapRepoErr("not found", nil, infra.KindNotFound)

type stubReservationStore struct {
	views map[uuid.UUID]*queries.ReservationView
	lists map[uuid.UUID][]*queries.ReservationListItem
}

func (s *stubReservationStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	if v, ok := s.views[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, errNoRows
}

func (s *stubReservationStore) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	items := make([]*queries.ReservationListItem, 0, len(s.lists[userID]))
	for _, item := range s.lists[userID] {
		cp := *item
		items = append(items, &cp)
	}
	return items, nil
}

func TestReservationQueries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	ownerID := uuid.New()

	live := &queries.ReservationView{
		ID:        uuid.New(),
		UserID:    ownerID,
		Status:    reservation.StatusReserved.String(),
		ExpiresAt: now.Add(time.Minute),
	}
	stale := &queries.ReservationView{
		ID:        uuid.New(),
		UserID:    ownerID,
		Status:    reservation.StatusReserved.String(),
		ExpiresAt: now, // boundary: not after now
	}
	paid := &queries.ReservationView{
		ID:        uuid.New(),
		UserID:    ownerID,
		Status:    reservation.StatusPaid.String(),
		ExpiresAt: now.Add(-time.Hour),
	}

	store := &stubReservationStore{
		views: map[uuid.UUID]*queries.ReservationView{
			live.ID:  live,
			stale.ID: stale,
			paid.ID:  paid,
		},
		lists: map[uuid.UUID][]*queries.ReservationListItem{
			ownerID: {
				{ID: live.ID, Status: reservation.StatusReserved.String(), ExpiresAt: live.ExpiresAt},
				{ID: stale.ID, Status: reservation.StatusReserved.String(), ExpiresAt: stale.ExpiresAt},
			},
		},
	}
	q := queries.NewReservationQueries(store, clk)

	t.Run("live hold keeps stored status", func(t *testing.T) {
		view, err := q.GetByID(ctx, live.ID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusReserved.String(), view.Status)
	})

	t.Run("elapsed TTL reads as expired without a write", func(t *testing.T) {
		view, err := q.GetByID(ctx, stale.ID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusExpired.String(), view.Status)
		// The stored view is untouched.
		assert.Equal(t, reservation.StatusReserved.String(), store.views[stale.ID].Status)
	})

	t.Run("paid status is never remapped", func(t *testing.T) {
		view, err := q.GetByID(ctx, paid.ID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPaid.String(), view.Status)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		_, err := q.GetByID(ctx, live.ID, uuid.New())
		require.ErrorIs(t, err, queries.ErrNotOwned)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New(), ownerID)
		require.ErrorIs(t, err, queries.ErrReservationNotFound)
	})

	t.Run("list applies lazy expiry per item", func(t *testing.T) {
		items, err := q.ListByUser(ctx, ownerID)
		require.NoError(t, err)

		got := map[uuid.UUID]string{}
		for _, item := range items {
			got[item.ID] = item.Status
		}
		want := map[uuid.UUID]string{
			live.ID:  reservation.StatusReserved.String(),
			stale.ID: reservation.StatusExpired.String(),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("status mismatch (-want +got):\n%s", diff)
		}
	})
}

type stubAvailabilityStore struct {
	view *queries.AvailabilityView
	err  error
}

func (s *stubAvailabilityStore) FindLedger(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _ time.Time) (*queries.AvailabilityView, error) {
	if s.err != nil {
		return nil, s.err
	}
	cp := *s.view
	return &cp, nil
}

func TestAvailabilityQueries(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Now())

	t.Run("returns the ledger view", func(t *testing.T) {
		eventID := uuid.New()
		store := &stubAvailabilityStore{view: &queries.AvailabilityView{
			EventID:   eventID,
			Capacity:  100,
			Confirmed: 30, ActiveHolds: 20, Remaining: 50,
		}}
		q := queries.NewAvailabilityQueries(store, clk)

		view, err := q.GetAvailability(ctx, eventID, nil)
		require.NoError(t, err)
		assert.Equal(t, int32(50), view.Remaining)
	})

	t.Run("maps not-found by target", func(t *testing.T) {
		store := &stubAvailabilityStore{err: errNoRows}
		q := queries.NewAvailabilityQueries(store, clk)

		_, err := q.GetAvailability(ctx, uuid.New(), nil)
		require.ErrorIs(t, err, queries.ErrEventNotFound)

		ttID := uuid.New()
		_, err = q.GetAvailability(ctx, uuid.New(), &ttID)
		require.ErrorIs(t, err, queries.ErrTicketTypeNotFound)
	})
}

type stubStatsStore struct {
	views map[uuid.UUID]*queries.EventStatsView
}

func (s *stubStatsStore) FindByEventID(_ context.Context, eventID uuid.UUID) (*queries.EventStatsView, error) {
	if v, ok := s.views[eventID]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, errNoRows
}

func TestStatsQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row reads as zeros", func(t *testing.T) {
		q := queries.NewStatsQueries(&stubStatsStore{views: map[uuid.UUID]*queries.EventStatsView{}})
		eventID := uuid.New()

		view, err := q.GetEventStats(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, eventID, view.EventID)
		assert.Zero(t, view.Views)
		assert.Zero(t, view.Saves)
		assert.Zero(t, view.Registrations)
	})

	t.Run("existing counters pass through", func(t *testing.T) {
		eventID := uuid.New()
		q := queries.NewStatsQueries(&stubStatsStore{views: map[uuid.UUID]*queries.EventStatsView{
			eventID: {EventID: eventID, Views: 12, Saves: 3, Registrations: 7},
		}})

		view, err := q.GetEventStats(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), view.Registrations)
	})
}
