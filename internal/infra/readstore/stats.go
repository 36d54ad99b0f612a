package readstore

import (
	"context"

	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/usecase/queries"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

// Revenue sums approved order amounts plus approved payment phases of
// project requests.
func (r *StatsReadStore) Revenue(ctx context.Context) (int64, error) {
	const q = `
		SELECT coalesce((SELECT sum(amount) FROM orders WHERE status = 'approved'), 0)
		     + coalesce((SELECT sum(advance_amount) FROM project_requests WHERE advance_state = 'approved'), 0)
		     + coalesce((SELECT sum(full_amount) FROM project_requests WHERE full_state = 'approved'), 0)`

	var revenue int64
	if err := r.db.QueryRow(ctx, q).Scan(&revenue); err != nil {
		return 0, infra.WrapRepoErr("failed to compute revenue", err)
	}
	return revenue, nil
}

// PendingQueue merges pending standard orders with project requests awaiting
// moderation into one queue, newest first.
func (r *StatsReadStore) PendingQueue(ctx context.Context) ([]queries.PendingItemView, error) {
	const q = `
		SELECT kind, id, user_email, amount, submitted_at FROM (
			SELECT 'order' AS kind, o.id, u.email AS user_email, o.amount, o.updated_at AS submitted_at
			FROM orders o
			JOIN users u ON u.id = o.user_id
			WHERE o.status = 'pending'
			UNION ALL
			SELECT 'request' AS kind, r.id, u.email AS user_email,
			       CASE
			           WHEN r.advance_state = 'pending' THEN r.advance_amount
			           WHEN r.full_state = 'pending' THEN r.full_amount
			           ELSE 0
			       END AS amount,
			       r.updated_at AS submitted_at
			FROM project_requests r
			JOIN users u ON u.id = r.user_id
			WHERE r.status = 'submitted'
			   OR r.advance_state = 'pending'
			   OR r.full_state = 'pending'
		) pending
		ORDER BY submitted_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load pending queue", err)
	}
	defer rows.Close()

	items := make([]queries.PendingItemView, 0)
	for rows.Next() {
		var item queries.PendingItemView
		err := rows.Scan(&item.Kind, &item.ID, &item.UserEmail, &item.Amount, &item.SubmittedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending queue", err)
	}
	return items, nil
}
