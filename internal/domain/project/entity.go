package project

import (
	"errors"
	"time"

	"storefront-api/internal/domain/payment"

	"github.com/google/uuid"
)

var (
	ErrNotSubmitted       = errors.New("request is not awaiting initial moderation")
	ErrNotAdvancePending  = errors.New("request is not awaiting an advance payment")
	ErrNotInProgress      = errors.New("request is not in progress")
	ErrNotPaymentPending  = errors.New("request is not awaiting a full payment")
	ErrAdvanceNotPending  = errors.New("no advance payment is awaiting moderation")
	ErrFullNotPending     = errors.New("no full payment is awaiting moderation")
	ErrUTRAlreadySent     = errors.New("a transaction reference is already awaiting moderation")
	ErrZeroFullAmount     = errors.New("full payment amount must be positive")
	ErrDeliveryTooEarly   = errors.New("deliverables cannot be attached before work starts")
	ErrRequestTerminated  = errors.New("request has reached a terminal state")
)

// Request is the lifecycle object for a custom-service engagement:
// submitted -> advance_pending -> in_progress -> payment_pending ->
// final_payment_pending -> completed, with a terminal rejected branch from
// submitted and payment-rejection loops back to the respective pending state.
// Every transition is guarded; a failed guard leaves the entity untouched.
// Requests are never deleted, only terminally rejected.
type Request struct {
	id           uuid.UUID
	userID       uuid.UUID
	serviceID    uuid.UUID
	srs          SRSData
	status       Status
	advance      PaymentPhase
	full         PaymentPhase
	deliverables []Deliverable
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRequest(userID, serviceID uuid.UUID, srs SRSData) (*Request, error) {
	if len(srs) == 0 {
		return nil, ErrEmptySRS
	}
	return &Request{
		id:        uuid.New(),
		userID:    userID,
		serviceID: serviceID,
		srs:       srs,
		status:    StatusSubmitted,
		advance:   NewPaymentPhase(),
		full:      NewPaymentPhase(),
	}, nil
}

func ReconstructRequest(
	id, userID, serviceID uuid.UUID,
	srs SRSData,
	status Status,
	advance, full PaymentPhase,
	deliverables []Deliverable,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:           id,
		userID:       userID,
		serviceID:    serviceID,
		srs:          srs,
		status:       status,
		advance:      advance,
		full:         full,
		deliverables: deliverables,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Request) ID() uuid.UUID               { return r.id }
func (r *Request) UserID() uuid.UUID           { return r.userID }
func (r *Request) ServiceID() uuid.UUID        { return r.serviceID }
func (r *Request) SRS() SRSData                { return r.srs }
func (r *Request) Status() Status              { return r.status }
func (r *Request) Advance() PaymentPhase       { return r.advance }
func (r *Request) Full() PaymentPhase          { return r.full }
func (r *Request) Deliverables() []Deliverable { return r.deliverables }
func (r *Request) CreatedAt() time.Time        { return r.createdAt }
func (r *Request) UpdatedAt() time.Time        { return r.updatedAt }

// Approve accepts a submitted request. The advance amount is the admin's
// explicit input when provided, otherwise the service's configured advance.
// A zero advance skips the advance flow entirely.
func (r *Request) Approve(advanceAmount payment.Money) error {
	if r.status != StatusSubmitted {
		return ErrNotSubmitted
	}
	if advanceAmount.IsZero() {
		r.status = StatusInProgress
		return nil
	}
	r.advance = ReconstructPaymentPhase(advanceAmount, nil, PaymentUnset)
	r.status = StatusAdvancePending
	return nil
}

// Reject terminally rejects a submitted request.
func (r *Request) Reject() error {
	if r.status != StatusSubmitted {
		return ErrNotSubmitted
	}
	r.status = StatusRejected
	return nil
}

// SubmitAdvanceUTR records the user's advance payment reference. The overall
// status does not change; the advance phase moves to pending.
func (r *Request) SubmitAdvanceUTR(utr payment.UTR) error {
	if r.status != StatusAdvancePending {
		return ErrNotAdvancePending
	}
	if r.advance.state == PaymentPending {
		return ErrUTRAlreadySent
	}
	r.advance = ReconstructPaymentPhase(r.advance.amount, &utr, PaymentPending)
	return nil
}

// ApproveAdvance confirms a pending advance payment and starts the work.
func (r *Request) ApproveAdvance() error {
	if r.advance.state != PaymentPending {
		return ErrAdvanceNotPending
	}
	r.advance = ReconstructPaymentPhase(r.advance.amount, r.advance.utr, PaymentApproved)
	r.status = StatusInProgress
	return nil
}

// RejectAdvance clears a pending advance submission; the user must resubmit
// a reference. The request stays in advance_pending.
func (r *Request) RejectAdvance() error {
	if r.advance.state != PaymentPending {
		return ErrAdvanceNotPending
	}
	r.advance = ReconstructPaymentPhase(r.advance.amount, nil, PaymentUnset)
	return nil
}

// RequestFullPayment asks the user for the remaining payment. When the
// service carries a fixed non-zero price, that price wins over any admin
// input and is snapshotted here.
func (r *Request) RequestFullPayment(adminAmount, serviceCurrentPrice payment.Money) error {
	if r.status != StatusInProgress {
		return ErrNotInProgress
	}
	amount := adminAmount
	if !serviceCurrentPrice.IsZero() {
		amount = serviceCurrentPrice
	}
	if amount.IsZero() {
		return ErrZeroFullAmount
	}
	r.full = ReconstructPaymentPhase(amount, nil, PaymentUnset)
	r.status = StatusPaymentPending
	return nil
}

// SubmitFullUTR records the user's full payment reference and moves the
// request to final moderation.
func (r *Request) SubmitFullUTR(utr payment.UTR) error {
	if r.status != StatusPaymentPending {
		return ErrNotPaymentPending
	}
	r.full = ReconstructPaymentPhase(r.full.amount, &utr, PaymentPending)
	r.status = StatusFinalPaymentPending
	return nil
}

// ApproveFullPayment completes the engagement.
func (r *Request) ApproveFullPayment() error {
	if r.full.state != PaymentPending {
		return ErrFullNotPending
	}
	r.full = ReconstructPaymentPhase(r.full.amount, r.full.utr, PaymentApproved)
	r.status = StatusCompleted
	return nil
}

// RejectFullPayment clears a pending full submission and returns the request
// to payment_pending for resubmission.
func (r *Request) RejectFullPayment() error {
	if r.full.state != PaymentPending {
		return ErrFullNotPending
	}
	r.full = ReconstructPaymentPhase(r.full.amount, nil, PaymentUnset)
	r.status = StatusPaymentPending
	return nil
}

// AttachDeliverables replaces the deliverable list. Allowed from in_progress
// onward; attaching content is not a state transition.
func (r *Request) AttachDeliverables(items []Deliverable) error {
	switch r.status {
	case StatusInProgress, StatusPaymentPending, StatusFinalPaymentPending, StatusCompleted:
		r.deliverables = items
		return nil
	case StatusRejected:
		return ErrRequestTerminated
	default:
		return ErrDeliveryTooEarly
	}
}

// FullyPaid reports whether both payment phases have settled approved, or the
// advance flow was skipped and the full payment is approved.
func (r *Request) FullyPaid() bool {
	return r.status == StatusCompleted
}
