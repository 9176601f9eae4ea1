package repository

import (
	"context"

	"eventtix/internal/domain/booking"
	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"

	"github.com/google/uuid"
)

type BookingRepository struct {
	q *sqlc.Queries
}

func NewBookingRepository(q *sqlc.Queries) *BookingRepository {
	return &BookingRepository{q: q}
}

func (r *BookingRepository) Create(ctx context.Context, db sqlc.DBTX, bk *booking.Booking) (uuid.UUID, error) {
	id, err := r.q.CreateBooking(ctx, db, sqlc.CreateBookingParams{
		ID:           bk.ID(),
		EventID:      bk.EventID(),
		UserID:       bk.UserID(),
		TicketTypeID: bk.TicketTypeID(),
		Quantity:     bk.Quantity(),
		Status:       bk.Status().String(),
		RegisteredAt: bk.RegisteredAt(),
	})
	if err != nil {
		// The unique (event_id, user_id) index surfaces here as DUPLICATE_KEY.
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
