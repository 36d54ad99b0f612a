package order

import (
	"errors"
	"time"

	"storefront-api/internal/domain/payment"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrAlreadyModerated = errors.New("order has already been approved or rejected")
	ErrZeroAmount       = errors.New("paid order amount must be positive")
)

// StandardOrder is a one-shot purchase of a standard service. Status moves
// pending -> approved | rejected exactly once; orders are never deleted.
// The amount is snapshotted at submission so later price edits and expired
// offers never change it.
type StandardOrder struct {
	id        uuid.UUID
	userID    uuid.UUID
	serviceID uuid.UUID
	amount    payment.Money
	utr       payment.UTR
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewStandardOrder creates a pending order for a paid purchase. Free services
// never produce an order; they are claimed directly.
func NewStandardOrder(userID, serviceID uuid.UUID, amount payment.Money, utr payment.UTR) (*StandardOrder, error) {
	if amount.IsZero() {
		return nil, ErrZeroAmount
	}
	return &StandardOrder{
		id:        uuid.New(),
		userID:    userID,
		serviceID: serviceID,
		amount:    amount,
		utr:       utr,
		status:    StatusPending,
	}, nil
}

func ReconstructStandardOrder(
	id, userID, serviceID uuid.UUID,
	amount payment.Money,
	utr payment.UTR,
	status Status,
	createdAt, updatedAt time.Time,
) *StandardOrder {
	return &StandardOrder{
		id:        id,
		userID:    userID,
		serviceID: serviceID,
		amount:    amount,
		utr:       utr,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (o *StandardOrder) ID() uuid.UUID         { return o.id }
func (o *StandardOrder) UserID() uuid.UUID     { return o.userID }
func (o *StandardOrder) ServiceID() uuid.UUID  { return o.serviceID }
func (o *StandardOrder) Amount() payment.Money { return o.amount }
func (o *StandardOrder) UTR() payment.UTR      { return o.utr }
func (o *StandardOrder) Status() Status        { return o.status }
func (o *StandardOrder) CreatedAt() time.Time  { return o.createdAt }
func (o *StandardOrder) UpdatedAt() time.Time  { return o.updatedAt }

// Approve moves a pending order to approved. The caller grants the user
// durable access to the service as part of the same transaction.
func (o *StandardOrder) Approve() error {
	if o.status != StatusPending {
		return ErrAlreadyModerated
	}
	o.status = StatusApproved
	return nil
}

// Reject moves a pending order to rejected. No ownership is granted.
func (o *StandardOrder) Reject() error {
	if o.status != StatusPending {
		return ErrAlreadyModerated
	}
	o.status = StatusRejected
	return nil
}
