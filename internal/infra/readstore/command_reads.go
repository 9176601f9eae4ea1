package readstore

import (
	"context"
	"time"

	"eventtix/internal/domain/event"
	"eventtix/internal/domain/inventory"
	"eventtix/internal/domain/reservation"
	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"
	"eventtix/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads serves the write path's validation reads. Instances are scoped
// to a DBTX so transactional callers see their own writes.
type CommandReads struct {
	q  *sqlc.Queries
	db sqlc.DBTX
}

func NewCommandReads(q *sqlc.Queries, db sqlc.DBTX) *CommandReads {
	return &CommandReads{q: q, db: db}
}

func (r *CommandReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	row, err := r.q.GetEventByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	return &shared.EventSnapshot{
		ID:                   row.ID,
		Title:                row.Title,
		Status:               event.Status(row.Status),
		PricingMode:          event.PricingMode(row.PricingMode),
		Capacity:             row.Capacity,
		PriceCents:           row.PriceCents,
		RegistrationDeadline: row.RegistrationDeadline,
	}, nil
}

func (r *CommandReads) TicketTypeByID(ctx context.Context, id uuid.UUID) (*shared.TicketTypeSnapshot, error) {
	row, err := r.q.GetTicketTypeByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket type by ID", err)
	}

	return &shared.TicketTypeSnapshot{
		ID:           row.ID,
		EventID:      row.EventID,
		Name:         row.Name,
		Capacity:     row.Capacity,
		PriceCents:   row.PriceCents,
		SalesStartAt: row.SalesStartAt,
		SalesEndAt:   row.SalesEndAt,
	}, nil
}

func (r *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row, err := r.q.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &shared.ReservationSnapshot{
		ID:               row.ID,
		EventID:          row.EventID,
		TicketTypeID:     row.TicketTypeID,
		UserID:           row.UserID,
		Quantity:         row.Quantity,
		UnitPriceCents:   row.UnitPriceCents,
		TotalAmountCents: row.TotalAmountCents,
		Status:           reservation.Status(row.Status),
		ExpiresAt:        row.ExpiresAt,
		CreatedAt:        row.CreatedAt,
	}, nil
}

func (r *CommandReads) BookingByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.q.GetBookingByEventAndUser(ctx, r.db, sqlc.GetBookingByEventAndUserParams{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by event and user", err)
	}

	return &shared.BookingSnapshot{
		ID:           row.ID,
		EventID:      row.EventID,
		UserID:       row.UserID,
		TicketTypeID: row.TicketTypeID,
		Quantity:     row.Quantity,
		Status:       row.Status,
		RegisteredAt: row.RegisteredAt,
	}, nil
}

func (r *CommandReads) LedgerCounts(
	ctx context.Context,
	kind inventory.TargetKind,
	targetID uuid.UUID,
	now time.Time,
) (int32, int32, error) {
	confirmed, err := r.q.SumConfirmedQuantity(ctx, r.db, sqlc.SumConfirmedQuantityParams{
		TargetKind: kind.String(),
		TargetID:   targetID,
	})
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to sum confirmed quantity", err)
	}

	activeHolds, err := r.q.SumActiveHoldQuantity(ctx, r.db, sqlc.SumActiveHoldQuantityParams{
		TargetKind: kind.String(),
		TargetID:   targetID,
		Now:        now,
	})
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to sum active hold quantity", err)
	}

	return confirmed, activeHolds, nil
}
