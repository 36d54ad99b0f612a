package request

import (
	"github.com/google/uuid"

	"storefront-api/internal/domain/payment"
)

type IssueIntentRequest struct {
	PaymentType string    `json:"payment_type" binding:"required,oneof=standard_service project_advance project_full"`
	RefID       uuid.UUID `json:"ref_id" binding:"required"`
}

func (r *IssueIntentRequest) ToDomain() (payment.Type, error) {
	return payment.NewType(r.PaymentType)
}

type CreateOrderRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	IntentID  uuid.UUID `json:"intent_id" binding:"required"`
	UTR       string    `json:"utr" binding:"required"`
}

func (r *CreateOrderRequest) ToDomain() (payment.UTR, error) {
	return payment.NewUTR(r.UTR)
}

type ClaimFreeRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
}
