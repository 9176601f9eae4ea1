package readstore

import (
	"context"

	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"
	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	q  *sqlc.Queries
	db sqlc.DBTX
}

func NewReservationReadStore(q *sqlc.Queries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{q: q, db: db}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := s.q.GetReservationViewByID(ctx, s.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}

	return &queries.ReservationView{
		ID:               row.ID,
		EventID:          row.EventID,
		EventTitle:       row.EventTitle,
		TicketTypeID:     row.TicketTypeID,
		TicketTypeName:   row.TicketTypeName,
		UserID:           row.UserID,
		Quantity:         row.Quantity,
		UnitPriceCents:   row.UnitPriceCents,
		TotalAmountCents: row.TotalAmountCents,
		Status:           row.Status,
		ExpiresAt:        row.ExpiresAt,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := s.q.GetReservationViewsByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation views", err)
	}

	items := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.ReservationListItem{
			ID:               row.ID,
			EventID:          row.EventID,
			EventTitle:       row.EventTitle,
			TicketTypeID:     row.TicketTypeID,
			Quantity:         row.Quantity,
			TotalAmountCents: row.TotalAmountCents,
			Status:           row.Status,
			ExpiresAt:        row.ExpiresAt,
			CreatedAt:        row.CreatedAt,
		})
	}
	return items, nil
}
