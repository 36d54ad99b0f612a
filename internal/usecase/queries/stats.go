package queries

import (
	"context"

	"storefront-api/internal/cache"
)

type StatsReadStore interface {
	Revenue(ctx context.Context) (int64, error)
	PendingQueue(ctx context.Context) ([]PendingItemView, error)
}

type UserCounter interface {
	CountUsers(ctx context.Context) (int64, error)
}

type StatsQueries interface {
	Dashboard(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	stats    StatsReadStore
	users    UserCounter
	orders   OrderReadStore
	requests ProjectReadStore
	store    *cache.Store
}

func NewStatsQueries(stats StatsReadStore, users UserCounter, orders OrderReadStore, requests ProjectReadStore, store *cache.Store) StatsQueries {
	return &statsQueriesImpl{
		stats:    stats,
		users:    users,
		orders:   orders,
		requests: requests,
		store:    store,
	}
}

func (q *statsQueriesImpl) Dashboard(ctx context.Context) (*StatsView, error) {
	value, err := q.store.Get(ctx, cache.KeyAdminStats, func(ctx context.Context) (any, error) {
		return q.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	view, ok := value.(*StatsView)
	if !ok {
		return q.load(ctx)
	}
	return view, nil
}

func (q *statsQueriesImpl) load(ctx context.Context) (*StatsView, error) {
	users, err := q.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := q.orders.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := q.requests.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := q.requests.CountCompleted(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := q.stats.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := q.stats.PendingQueue(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsView{
		TotalUsers:        users,
		TotalOrders:       orders,
		TotalRequests:     requests,
		CompletedRequests: completed,
		RevenuePaise:      revenue,
		PendingQueue:      pending,
	}, nil
}
