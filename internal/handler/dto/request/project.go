package request

import (
	"github.com/google/uuid"

	"storefront-api/internal/domain/payment"
	"storefront-api/internal/domain/project"
)

type CreateProjectRequest struct {
	ServiceID uuid.UUID         `json:"service_id" binding:"required"`
	SRS       map[string]string `json:"srs" binding:"required"`
}

func (r *CreateProjectRequest) ToDomain() (project.SRSData, error) {
	return project.NewSRSData(r.SRS)
}

type SubmitUTRRequest struct {
	IntentID uuid.UUID `json:"intent_id" binding:"required"`
	UTR      string    `json:"utr" binding:"required"`
}

func (r *SubmitUTRRequest) ToDomain() (payment.UTR, error) {
	return payment.NewUTR(r.UTR)
}

type ApproveRequestRequest struct {
	AdvanceAmount int64 `json:"advance_amount" binding:"min=0"`
}

type RequestFullPaymentRequest struct {
	Amount int64 `json:"amount" binding:"min=0"`
}

type AttachDeliverablesRequest struct {
	Items []DeliverableItem `json:"items" binding:"required,min=1,dive"`
}

type DeliverableItem struct {
	Name string `json:"name" binding:"required,max=200"`
	URL  string `json:"url" binding:"required,url"`
}

func (r *AttachDeliverablesRequest) ToDomain() ([]project.Deliverable, error) {
	items := make([]project.Deliverable, 0, len(r.Items))
	for _, it := range r.Items {
		d, err := project.NewDeliverable(it.Name, it.URL)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}
