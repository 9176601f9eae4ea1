package queries

import (
	"context"
	"time"

	"eventtix/internal/infra"
	"eventtix/internal/pkg/clock"
	"eventtix/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

var (
	ErrEventNotFound      = errs.New("event not found")
	ErrTicketTypeNotFound = errs.New("ticket type not found")
)

// AvailabilityReadStore computes the aggregate ledger for one capacity target.
// Audit view only: reservation admission goes through the capacity counter.
type AvailabilityReadStore interface {
	FindLedger(ctx context.Context, eventID uuid.UUID, ticketTypeID *uuid.UUID, now time.Time) (*AvailabilityView, error)
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, eventID uuid.UUID, ticketTypeID *uuid.UUID) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clk}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, eventID uuid.UUID, ticketTypeID *uuid.UUID) (*AvailabilityView, error) {
	view, err := q.store.FindLedger(ctx, eventID, ticketTypeID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			if ticketTypeID != nil {
				return nil, ErrTicketTypeNotFound
			}
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return view, nil
}
