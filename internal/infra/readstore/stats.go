package readstore

import (
	"context"

	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"
	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatsReadStore struct {
	q  *sqlc.Queries
	db sqlc.DBTX
}

func NewStatsReadStore(q *sqlc.Queries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{q: q, db: db}
}

func (s *StatsReadStore) FindByEventID(ctx context.Context, eventID uuid.UUID) (*queries.EventStatsView, error) {
	row, err := s.q.GetEventStats(ctx, s.db, eventID)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event stats not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event stats", err)
	}

	return &queries.EventStatsView{
		EventID:       row.EventID,
		Views:         row.Views,
		Saves:         row.Saves,
		Registrations: row.Registrations,
	}, nil
}
