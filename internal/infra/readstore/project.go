package readstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"
	"storefront-api/internal/usecase/queries"
)

type ProjectReadStore struct {
	db db.DBTX
}

func NewProjectReadStore(dbtx db.DBTX) *ProjectReadStore {
	return &ProjectReadStore{db: dbtx}
}

const requestSelect = `
	SELECT r.id, r.user_id, u.email, r.service_id, s.title, r.srs, r.status,
	       r.advance_amount, r.advance_utr, r.advance_state,
	       r.full_amount, r.full_utr, r.full_state,
	       r.created_at, r.updated_at
	FROM project_requests r
	JOIN users u ON u.id = r.user_id
	JOIN services s ON s.id = r.service_id`

func (r *ProjectReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProjectRequestView, error) {
	q := requestSelect + ` WHERE r.id = $1`

	view, err := scanRequest(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("project request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find project request", err)
	}

	deliverables, err := r.loadDeliverables(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Deliverables = deliverables
	return view, nil
}

func (r *ProjectReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.ProjectRequestView, error) {
	q := requestSelect + ` WHERE r.user_id = $1 ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by user", err)
	}
	defer rows.Close()
	return r.scanRequestsWithDeliverables(ctx, rows)
}

func (r *ProjectReadStore) ListAll(ctx context.Context) ([]queries.ProjectRequestView, error) {
	q := requestSelect + ` ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()
	return r.scanRequestsWithDeliverables(ctx, rows)
}

func (r *ProjectReadStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM project_requests`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count requests", err)
	}
	return count, nil
}

func (r *ProjectReadStore) CountCompleted(ctx context.Context) (int64, error) {
	var count int64
	q := `SELECT count(*) FROM project_requests WHERE status = 'completed'`
	if err := r.db.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count completed requests", err)
	}
	return count, nil
}

func (r *ProjectReadStore) scanRequestsWithDeliverables(ctx context.Context, rows pgx.Rows) ([]queries.ProjectRequestView, error) {
	views := make([]queries.ProjectRequestView, 0)
	for rows.Next() {
		view, err := scanRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan project request", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate project requests", err)
	}

	for i := range views {
		deliverables, err := r.loadDeliverables(ctx, views[i].ID)
		if err != nil {
			return nil, err
		}
		views[i].Deliverables = deliverables
	}
	return views, nil
}

func (r *ProjectReadStore) loadDeliverables(ctx context.Context, requestID uuid.UUID) ([]queries.DeliverableView, error) {
	const q = `SELECT name, url FROM deliverables WHERE request_id = $1 ORDER BY position`

	rows, err := r.db.Query(ctx, q, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load deliverables", err)
	}
	defer rows.Close()

	views := make([]queries.DeliverableView, 0)
	for rows.Next() {
		var view queries.DeliverableView
		if err := rows.Scan(&view.Name, &view.URL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deliverable", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deliverables", err)
	}
	return views, nil
}

func scanRequest(row pgx.Row) (*queries.ProjectRequestView, error) {
	var (
		view   queries.ProjectRequestView
		srsRaw []byte
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.UserEmail, &view.ServiceID, &view.ServiceTitle, &srsRaw, &view.Status,
		&view.AdvanceAmount, &view.AdvanceUTR, &view.AdvanceStatus,
		&view.FullAmount, &view.FullUTR, &view.FullStatus,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(srsRaw, &view.SRS); err != nil {
		return nil, err
	}
	return &view, nil
}
