package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-api/internal/domain/payment"
	"storefront-api/internal/domain/project"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/pgconv"
)

// ProjectRequestRepository persists the request aggregate. Save rewrites the
// request row and its deliverables in one transaction so readers never see a
// half-updated aggregate.
type ProjectRequestRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRequestRepository(pool *pgxpool.Pool) *ProjectRequestRepository {
	return &ProjectRequestRepository{pool: pool}
}

func (r *ProjectRequestRepository) Create(ctx context.Context, req *project.Request) (uuid.UUID, error) {
	srs, err := json.Marshal(req.SRS())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode srs", err)
	}

	const q = `
		INSERT INTO project_requests
			(id, user_id, service_id, srs, status,
			 advance_amount, advance_utr, advance_state,
			 full_amount, full_utr, full_state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err = r.pool.QueryRow(ctx, q,
		req.ID(), req.UserID(), req.ServiceID(), srs, req.Status().String(),
		req.Advance().Amount().Paise(), utrPtr(req.Advance().UTR()), string(req.Advance().State()),
		req.Full().Amount().Paise(), utrPtr(req.Full().UTR()), string(req.Full().State()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create project request", err)
	}
	return id, nil
}

func (r *ProjectRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Request, error) {
	const q = `
		SELECT id, user_id, service_id, srs, status,
		       advance_amount, advance_utr, advance_state,
		       full_amount, full_utr, full_state,
		       created_at, updated_at
		FROM project_requests
		WHERE id = $1`

	var (
		rowID, userID, serviceID   uuid.UUID
		srsRaw                     []byte
		status                     string
		advanceAmount, fullAmount  int64
		advanceUTR, fullUTR        *string
		advanceState, fullState    string
		createdAt, updatedAt       time.Time
	)
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&rowID, &userID, &serviceID, &srsRaw, &status,
		&advanceAmount, &advanceUTR, &advanceState,
		&fullAmount, &fullUTR, &fullState,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("project request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find project request", err)
	}

	deliverables, err := r.loadDeliverables(ctx, rowID)
	if err != nil {
		return nil, err
	}

	var srs map[string]string
	if err := json.Unmarshal(srsRaw, &srs); err != nil {
		return nil, infra.WrapRepoErr("corrupt srs payload", err)
	}

	requestStatus, err := project.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt request status", err)
	}
	advance, err := reconstructPhase(advanceAmount, advanceUTR, advanceState)
	if err != nil {
		return nil, err
	}
	full, err := reconstructPhase(fullAmount, fullUTR, fullState)
	if err != nil {
		return nil, err
	}

	return project.ReconstructRequest(
		rowID, userID, serviceID, srs, requestStatus, advance, full, deliverables, createdAt, updatedAt,
	), nil
}

func (r *ProjectRequestRepository) Save(ctx context.Context, req *project.Request) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	const q = `
		UPDATE project_requests
		SET status = $2,
		    advance_amount = $3, advance_utr = $4, advance_state = $5,
		    full_amount = $6, full_utr = $7, full_state = $8,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q,
		req.ID(), req.Status().String(),
		req.Advance().Amount().Paise(), utrPtr(req.Advance().UTR()), string(req.Advance().State()),
		req.Full().Amount().Paise(), utrPtr(req.Full().UTR()), string(req.Full().State()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update project request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("project request not found", nil, infra.KindNotFound)
	}

	if err := r.replaceDeliverables(ctx, tx, req.ID(), req.Deliverables()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit project request", err)
	}
	return nil
}

func (r *ProjectRequestRepository) loadDeliverables(ctx context.Context, requestID uuid.UUID) ([]project.Deliverable, error) {
	const q = `
		SELECT name, url FROM deliverables
		WHERE request_id = $1
		ORDER BY position`

	rows, err := r.pool.Query(ctx, q, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load deliverables", err)
	}
	defer rows.Close()

	var out []project.Deliverable
	for rows.Next() {
		var d project.Deliverable
		if err := rows.Scan(&d.Name, &d.URL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deliverable", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deliverables", err)
	}
	return out, nil
}

func (r *ProjectRequestRepository) replaceDeliverables(ctx context.Context, tx pgx.Tx, requestID uuid.UUID, items []project.Deliverable) error {
	if _, err := tx.Exec(ctx, `DELETE FROM deliverables WHERE request_id = $1`, requestID); err != nil {
		return infra.WrapRepoErr("failed to clear deliverables", err)
	}

	const q = `
		INSERT INTO deliverables (id, request_id, name, url, position)
		VALUES ($1, $2, $3, $4, $5)`
	for i, d := range items {
		if _, err := tx.Exec(ctx, q, uuid.New(), requestID, d.Name, d.URL, i); err != nil {
			return infra.WrapRepoErr("failed to insert deliverable", err)
		}
	}
	return nil
}

func reconstructPhase(amount int64, rawUTR *string, rawState string) (project.PaymentPhase, error) {
	state, err := project.NewPaymentState(rawState)
	if err != nil {
		return project.PaymentPhase{}, infra.WrapRepoErr("corrupt payment state", err)
	}

	var utr *payment.UTR
	if rawUTR != nil {
		parsed, err := payment.NewUTR(*rawUTR)
		if err != nil {
			return project.PaymentPhase{}, infra.WrapRepoErr("corrupt payment utr", err)
		}
		utr = &parsed
	}
	return project.ReconstructPaymentPhase(payment.MustMoney(amount), utr, state), nil
}

func utrPtr(utr *payment.UTR) *string {
	if utr == nil {
		return nil
	}
	s := utr.String()
	return &s
}
