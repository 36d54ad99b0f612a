package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/domain/payment"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.StandardOrder) (uuid.UUID, error) {
	const q = `
		INSERT INTO orders (id, user_id, service_id, amount, utr, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		o.ID(), o.UserID(), o.ServiceID(), o.Amount().Paise(), o.UTR().String(), o.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return id, nil
}

// ClaimFree inserts a zero-amount approved order for (userID, serviceID).
// Repeated claims land on the partial unique index and return the existing
// order, so the operation is idempotent.
func (r *OrderRepository) ClaimFree(ctx context.Context, userID, serviceID uuid.UUID) (uuid.UUID, bool, error) {
	const insertQ = `
		INSERT INTO orders (id, user_id, service_id, amount, utr, status)
		VALUES ($1, $2, $3, 0, '', 'approved')
		ON CONFLICT (user_id, service_id) WHERE amount = 0 DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertQ, uuid.New(), userID, serviceID).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !pgconv.IsNoRows(err) {
		return uuid.Nil, false, infra.WrapRepoErr("failed to claim free service", err)
	}

	const existingQ = `
		SELECT id FROM orders
		WHERE user_id = $1 AND service_id = $2 AND amount = 0`
	if err := r.db.QueryRow(ctx, existingQ, userID, serviceID).Scan(&id); err != nil {
		return uuid.Nil, false, infra.WrapRepoErr("failed to load existing claim", err)
	}
	return id, false, nil
}

// HasApproved reports whether the user already holds an approved order for
// the service, which is what grants ownership.
func (r *OrderRepository) HasApproved(ctx context.Context, userID, serviceID uuid.UUID) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE user_id = $1 AND service_id = $2 AND status = 'approved'
		)`

	var owned bool
	if err := r.db.QueryRow(ctx, q, userID, serviceID).Scan(&owned); err != nil {
		return false, infra.WrapRepoErr("failed to check service ownership", err)
	}
	return owned, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.StandardOrder, error) {
	const q = `
		SELECT id, user_id, service_id, amount, utr, status, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var (
		rowID     uuid.UUID
		userID    uuid.UUID
		serviceID uuid.UUID
		amount    int64
		utr       string
		status    string
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&rowID, &userID, &serviceID, &amount, &utr, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	orderStatus, err := order.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order status", err)
	}
	var orderUTR payment.UTR
	if utr != "" {
		orderUTR, err = payment.NewUTR(utr)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt order utr", err)
		}
	}

	return order.ReconstructStandardOrder(
		rowID, userID, serviceID, payment.MustMoney(amount), orderUTR, orderStatus, createdAt, updatedAt,
	), nil
}

// SaveStatus persists a moderation outcome. The WHERE clause re-checks the
// pending state so concurrent moderators cannot both win.
func (r *OrderRepository) SaveStatus(ctx context.Context, o *order.StandardOrder) error {
	const q = `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, q, o.ID(), o.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order already moderated", nil, infra.KindConflict)
	}
	return nil
}
