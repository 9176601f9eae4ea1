package queries

import (
	"context"

	"eventtix/internal/infra"

	"github.com/google/uuid"
)

//go:generate mockgen -source=stats.go -destination=../../../tests/mock/queries/stats_mock.go -package=queriesmock

type StatsReadStore interface {
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*EventStatsView, error)
}

type StatsQueries interface {
	GetEventStats(ctx context.Context, eventID uuid.UUID) (*EventStatsView, error)
}

type statsQueriesImpl struct {
	store StatsReadStore
}

func NewStatsQueries(store StatsReadStore) StatsQueries {
	return &statsQueriesImpl{store: store}
}

func (q *statsQueriesImpl) GetEventStats(ctx context.Context, eventID uuid.UUID) (*EventStatsView, error) {
	view, err := q.store.FindByEventID(ctx, eventID)
	if err != nil {
		// Counters lag bookings; a missing row reads as zeros.
		if infra.IsKind(err, infra.KindNotFound) {
			return &EventStatsView{EventID: eventID}, nil
		}
		return nil, err
	}
	return view, nil
}
