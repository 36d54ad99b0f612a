package queries

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/cache"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
)

var (
	ErrRequestNotFound = errs.New("project request not found")
	ErrRequestAccess   = errs.New("project request access denied")
)

type ProjectReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProjectRequestView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ProjectRequestView, error)
	ListAll(ctx context.Context) ([]ProjectRequestView, error)
	CountAll(ctx context.Context) (int64, error)
	CountCompleted(ctx context.Context) (int64, error)
}

type ProjectQueries interface {
	GetMine(ctx context.Context, requestID, userID uuid.UUID) (*ProjectRequestView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]ProjectRequestView, error)
	ListAll(ctx context.Context) ([]ProjectRequestView, error)
}

type projectQueriesImpl struct {
	readStore ProjectReadStore
	store     *cache.Store
}

func NewProjectQueries(readStore ProjectReadStore, store *cache.Store) ProjectQueries {
	return &projectQueriesImpl{readStore: readStore, store: store}
}

func (q *projectQueriesImpl) GetMine(ctx context.Context, requestID, userID uuid.UUID) (*ProjectRequestView, error) {
	view, err := q.readStore.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if view.UserID != userID {
		return nil, ErrRequestAccess
	}
	return view, nil
}

func (q *projectQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]ProjectRequestView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

func (q *projectQueriesImpl) ListAll(ctx context.Context) ([]ProjectRequestView, error) {
	value, err := q.store.Get(ctx, cache.KeyAdminRequests, func(ctx context.Context) (any, error) {
		return q.readStore.ListAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	views, ok := value.([]ProjectRequestView)
	if !ok {
		return q.readStore.ListAll(ctx)
	}
	return views, nil
}
