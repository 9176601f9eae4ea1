package readstore

import (
	"context"

	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"
	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	q  *sqlc.Queries
	db sqlc.DBTX
}

func NewBookingReadStore(q *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{q: q, db: db}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := s.q.GetBookingViewByID(ctx, s.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return bookingViewFromRow(row), nil
}

func (s *BookingReadStore) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*queries.BookingView, error) {
	row, err := s.q.GetBookingViewByEventAndUser(ctx, s.db, eventID, userID)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by event and user", err)
	}
	return bookingViewFromRow(row), nil
}

func bookingViewFromRow(row sqlc.GetBookingViewByIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID:           row.ID,
		EventID:      row.EventID,
		EventTitle:   row.EventTitle,
		UserID:       row.UserID,
		TicketTypeID: row.TicketTypeID,
		Quantity:     row.Quantity,
		Status:       row.Status,
		RegisteredAt: row.RegisteredAt,
	}
}
