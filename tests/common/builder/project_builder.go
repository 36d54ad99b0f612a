//go:build unit || e2e

package builder

import (
	"time"

	"storefront-api/internal/domain/payment"
	"storefront-api/internal/domain/project"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProjectRequestBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ServiceID uuid.UUID
	SRS       map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProjectRequestBuilder() *ProjectRequestBuilder {
	now := time.Now()
	return &ProjectRequestBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ServiceID: uuid.New(),
		SRS: map[string]string{
			"Project name": "Inventory tracker",
			"Deadline":     "6 weeks",
			"Description":  "Stock management with barcode scanning",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ProjectRequestBuilder) With(mutate func(*ProjectRequestBuilder)) *ProjectRequestBuilder {
	mutate(b)
	return b
}

func (b *ProjectRequestBuilder) BuildDomain() (*project.Request, error) {
	srs, err := project.NewSRSData(b.SRS)
	if err != nil {
		return nil, err
	}
	return project.NewRequest(b.UserID, b.ServiceID, srs)
}

// BuildAt constructs a request advanced to the given lifecycle point so tests
// do not repeat transition boilerplate.
func (b *ProjectRequestBuilder) BuildAt(status project.Status, advanceAmount int64) (*project.Request, error) {
	req, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if status == project.StatusSubmitted {
		return req, nil
	}

	advance := payment.MustMoney(advanceAmount)
	if status == project.StatusRejected {
		if err := req.Reject(); err != nil {
			return nil, err
		}
		return req, nil
	}

	if err := req.Approve(advance); err != nil {
		return nil, err
	}
	if status == project.StatusAdvancePending {
		return req, nil
	}

	if !advance.IsZero() {
		utr, err := payment.NewUTR("ADV-UTR-0001")
		if err != nil {
			return nil, err
		}
		if err := req.SubmitAdvanceUTR(utr); err != nil {
			return nil, err
		}
		if err := req.ApproveAdvance(); err != nil {
			return nil, err
		}
	}
	if status == project.StatusInProgress {
		return req, nil
	}

	if err := req.RequestFullPayment(payment.MustMoney(500000), payment.Money{}); err != nil {
		return nil, err
	}
	if status == project.StatusPaymentPending {
		return req, nil
	}

	utr, err := payment.NewUTR("FULL-UTR-0001")
	if err != nil {
		return nil, err
	}
	if err := req.SubmitFullUTR(utr); err != nil {
		return nil, err
	}
	if status == project.StatusFinalPaymentPending {
		return req, nil
	}

	if err := req.ApproveFullPayment(); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *ProjectRequestBuilder) BuildView() *queries.ProjectRequestView {
	return &queries.ProjectRequestView{
		ID:            b.ID,
		UserID:        b.UserID,
		ServiceID:     b.ServiceID,
		SRS:           b.SRS,
		Status:        string(project.StatusSubmitted),
		AdvanceStatus: string(project.PaymentUnset),
		FullStatus:    string(project.PaymentUnset),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
