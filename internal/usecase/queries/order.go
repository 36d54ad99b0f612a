package queries

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/cache"
)

type OrderReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
	ListAll(ctx context.Context) ([]OrderView, error)
	CountAll(ctx context.Context) (int64, error)
}

type OrderQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
	ListAll(ctx context.Context) ([]OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
	store     *cache.Store
}

func NewOrderQueries(readStore OrderReadStore, store *cache.Store) OrderQueries {
	return &orderQueriesImpl{readStore: readStore, store: store}
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

// ListAll backs the admin moderation table. It reads through the cache that
// moderation mutates optimistically.
func (q *orderQueriesImpl) ListAll(ctx context.Context) ([]OrderView, error) {
	value, err := q.store.Get(ctx, cache.KeyAdminOrders, func(ctx context.Context) (any, error) {
		return q.readStore.ListAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	views, ok := value.([]OrderView)
	if !ok {
		return q.readStore.ListAll(ctx)
	}
	return views, nil
}
