package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/pgconv"
	"storefront-api/internal/usecase/queries"
)

type CatalogReadStore struct {
	db  db.DBTX
	clk clock.Clock
}

func NewCatalogReadStore(dbtx db.DBTX, clk clock.Clock) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx, clk: clk}
}

const serviceColumns = `
	id, title, slug, base_price, service_type, advance_amount,
	offer_name, offer_price, offer_starts_at, offer_ends_at,
	created_at, updated_at`

func (r *CatalogReadStore) ListServices(ctx context.Context) ([]queries.ServiceView, error) {
	q := `SELECT` + serviceColumns + ` FROM services WHERE deleted_at IS NULL ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// ListOwnedServices returns the services a user holds through approved orders,
// which covers both paid purchases and free claims. Deleted services are kept
// here: a purchase outlives the catalog entry.
func (r *CatalogReadStore) ListOwnedServices(ctx context.Context, userID uuid.UUID) ([]queries.ServiceView, error) {
	q := `SELECT` + serviceColumns + `
		FROM services
		WHERE id IN (
			SELECT service_id FROM orders
			WHERE user_id = $1 AND status = 'approved'
		)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned services", err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func (r *CatalogReadStore) FindServiceByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	q := `SELECT` + serviceColumns + ` FROM services WHERE id = $1 AND deleted_at IS NULL`
	return r.findService(ctx, q, id)
}

func (r *CatalogReadStore) FindServiceBySlug(ctx context.Context, slug string) (*queries.ServiceView, error) {
	q := `SELECT` + serviceColumns + ` FROM services WHERE slug = $1 AND deleted_at IS NULL`
	return r.findService(ctx, q, slug)
}

func (r *CatalogReadStore) findService(ctx context.Context, q string, arg any) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx, q, arg)
	view, err := r.scanService(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return view, nil
}

func (r *CatalogReadStore) scanServices(rows pgx.Rows) ([]queries.ServiceView, error) {
	views := make([]queries.ServiceView, 0)
	for rows.Next() {
		view, err := r.scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return views, nil
}

func (r *CatalogReadStore) scanService(row pgx.Row) (*queries.ServiceView, error) {
	var (
		view          queries.ServiceView
		offerStartsAt *time.Time
		offerEndsAt   *time.Time
	)
	err := row.Scan(
		&view.ID, &view.Title, &view.Slug, &view.BasePrice, &view.ServiceType, &view.AdvanceAmount,
		&view.OfferName, &view.OfferPrice, &offerStartsAt, &offerEndsAt,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.OfferStartsAt = offerStartsAt
	view.OfferEndsAt = offerEndsAt
	view.CurrentPrice = resolveCurrentPrice(&view, r.clk.Now())
	return &view, nil
}

// resolveCurrentPrice folds an active offer into the listed price. The offer
// window is start-inclusive, end-exclusive.
func resolveCurrentPrice(view *queries.ServiceView, now time.Time) int64 {
	if view.OfferPrice == nil || view.OfferStartsAt == nil || view.OfferEndsAt == nil {
		return view.BasePrice
	}
	if now.Before(*view.OfferStartsAt) || !now.Before(*view.OfferEndsAt) {
		return view.BasePrice
	}
	return *view.OfferPrice
}
