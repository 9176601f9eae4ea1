package repository

import (
	"context"
	"time"

	"eventtix/internal/domain/inventory"
	"eventtix/internal/domain/reservation"
	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	q *sqlc.Queries
}

func NewReservationRepository(q *sqlc.Queries) *ReservationRepository {
	return &ReservationRepository{q: q}
}

func (r *ReservationRepository) Create(ctx context.Context, db sqlc.DBTX, hold *reservation.Hold) (uuid.UUID, error) {
	id, err := r.q.CreateReservation(ctx, db, sqlc.CreateReservationParams{
		ID:               hold.ID(),
		EventID:          hold.EventID(),
		TicketTypeID:     hold.TicketTypeID(),
		UserID:           hold.UserID(),
		Quantity:         hold.Quantity(),
		UnitPriceCents:   hold.UnitPrice().Cents(),
		TotalAmountCents: hold.TotalAmount().Cents(),
		Status:           hold.Status().String(),
		ExpiresAt:        hold.ExpiresAt(),
		CreatedAt:        hold.CreatedAt(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) TransitionStatus(
	ctx context.Context,
	db sqlc.DBTX,
	id uuid.UUID,
	from, to reservation.Status,
	now time.Time,
) (int64, error) {
	rows, err := r.q.TransitionReservationStatus(ctx, db, sqlc.TransitionReservationStatusParams{
		ID:         id,
		FromStatus: from.String(),
		ToStatus:   to.String(),
		Now:        now,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to transition reservation status", err)
	}
	return rows, nil
}

func (r *ReservationRepository) ReleaseExpired(
	ctx context.Context,
	db sqlc.DBTX,
	kind inventory.TargetKind,
	targetID uuid.UUID,
	now time.Time,
) (int32, error) {
	reclaimed, err := r.q.ReleaseExpiredReservations(ctx, db, sqlc.ReleaseExpiredReservationsParams{
		TargetKind: kind.String(),
		TargetID:   targetID,
		Now:        now,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release expired reservations", err)
	}
	return reclaimed, nil
}
