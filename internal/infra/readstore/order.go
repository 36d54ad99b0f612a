package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/usecase/queries"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderSelect = `
	SELECT o.id, o.user_id, u.email, o.service_id, s.title,
	       o.amount, o.utr, o.status, o.created_at, o.updated_at
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN services s ON s.id = o.service_id`

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.OrderView, error) {
	q := orderSelect + ` WHERE o.user_id = $1 ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *OrderReadStore) ListAll(ctx context.Context) ([]queries.OrderView, error) {
	q := orderSelect + ` ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *OrderReadStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count orders", err)
	}
	return count, nil
}

func scanOrders(rows pgx.Rows) ([]queries.OrderView, error) {
	views := make([]queries.OrderView, 0)
	for rows.Next() {
		var view queries.OrderView
		err := rows.Scan(
			&view.ID, &view.UserID, &view.UserEmail, &view.ServiceID, &view.ServiceTitle,
			&view.Amount, &view.UTR, &view.Status, &view.CreatedAt, &view.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return views, nil
}
