package queries

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/cache"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
)

var ErrServiceNotFound = errs.New("service not found")

type CatalogReadStore interface {
	ListServices(ctx context.Context) ([]ServiceView, error)
	ListOwnedServices(ctx context.Context, userID uuid.UUID) ([]ServiceView, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindServiceBySlug(ctx context.Context, slug string) (*ServiceView, error)
}

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]ServiceView, error)
	ListOwnedServices(ctx context.Context, userID uuid.UUID) ([]ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	GetServiceBySlug(ctx context.Context, slug string) (*ServiceView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
	store     *cache.Store
}

func NewCatalogQueries(readStore CatalogReadStore, store *cache.Store) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore, store: store}
}

// ListServices serves the public listing through the shared cache so admin
// price edits show up via invalidation rather than per-request queries.
func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]ServiceView, error) {
	value, err := q.store.Get(ctx, cache.KeyServices, func(ctx context.Context) (any, error) {
		return q.readStore.ListServices(ctx)
	})
	if err != nil {
		return nil, err
	}
	views, ok := value.([]ServiceView)
	if !ok {
		return q.readStore.ListServices(ctx)
	}
	return views, nil
}

// ListOwnedServices is per-user and bypasses the shared cache.
func (q *catalogQueriesImpl) ListOwnedServices(ctx context.Context, userID uuid.UUID) ([]ServiceView, error) {
	return q.readStore.ListOwnedServices(ctx, userID)
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) GetServiceBySlug(ctx context.Context, slug string) (*ServiceView, error) {
	view, err := q.readStore.FindServiceBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}
