package queries

import (
	"context"
	"time"

	"eventtix/internal/domain/reservation"
	"eventtix/internal/infra"
	"eventtix/internal/pkg/clock"
	"eventtix/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrNotOwned            = errs.New("reservation not owned by user")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	// GetByID enforces ownership; GetByIDSystem is for internal read-after-write.
	GetByID(ctx context.Context, id, callerID uuid.UUID) (*ReservationView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id, callerID uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != callerID {
		return nil, ErrNotOwned
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	view.Status = effectiveStatus(view.Status, view.ExpiresAt, q.clock.Now())
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error) {
	items, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	for _, item := range items {
		item.Status = effectiveStatus(item.Status, item.ExpiresAt, now)
	}
	return items, nil
}

func effectiveStatus(stored string, expiresAt, now time.Time) string {
	if stored == reservation.StatusReserved.String() && !expiresAt.After(now) {
		return reservation.StatusExpired.String()
	}
	return stored
}
