package readstore

import (
	"context"
	"time"

	"eventtix/internal/domain/inventory"
	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"
	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AvailabilityReadStore derives the aggregate ledger for a capacity target.
// The numbers are for auditing; admission decisions use the capacity counter.
type AvailabilityReadStore struct {
	q  *sqlc.Queries
	db sqlc.DBTX
}

func NewAvailabilityReadStore(q *sqlc.Queries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{q: q, db: db}
}

func (s *AvailabilityReadStore) FindLedger(
	ctx context.Context,
	eventID uuid.UUID,
	ticketTypeID *uuid.UUID,
	now time.Time,
) (*queries.AvailabilityView, error) {
	kind := inventory.TargetEvent
	targetID := eventID
	var capacity int32

	if ticketTypeID != nil {
		tt, err := s.q.GetTicketTypeByID(ctx, s.db, *ticketTypeID)
		if err != nil {
			if infra.IsNoRows(err) {
				return nil, infra.WrapRepoErr("ticket type not found", err, infra.KindNotFound)
			}
			return nil, infra.WrapRepoErr("failed to find ticket type", err)
		}
		if tt.EventID != eventID {
			return nil, infra.WrapRepoErr("ticket type not found for event", pgx.ErrNoRows, infra.KindNotFound)
		}
		kind = inventory.TargetTicketType
		targetID = tt.ID
		capacity = tt.Capacity
	} else {
		ev, err := s.q.GetEventByID(ctx, s.db, eventID)
		if err != nil {
			if infra.IsNoRows(err) {
				return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
			}
			return nil, infra.WrapRepoErr("failed to find event", err)
		}
		capacity = ev.Capacity
	}

	confirmed, err := s.q.SumConfirmedQuantity(ctx, s.db, sqlc.SumConfirmedQuantityParams{
		TargetKind: kind.String(),
		TargetID:   targetID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum confirmed quantity", err)
	}

	activeHolds, err := s.q.SumActiveHoldQuantity(ctx, s.db, sqlc.SumActiveHoldQuantityParams{
		TargetKind: kind.String(),
		TargetID:   targetID,
		Now:        now,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum active hold quantity", err)
	}

	ledger := inventory.Ledger{Capacity: capacity, Confirmed: confirmed, ActiveHolds: activeHolds}
	return &queries.AvailabilityView{
		EventID:      eventID,
		TicketTypeID: ticketTypeID,
		Capacity:     ledger.Capacity,
		Confirmed:    ledger.Confirmed,
		ActiveHolds:  ledger.ActiveHolds,
		Remaining:    ledger.Remaining(),
	}, nil
}
