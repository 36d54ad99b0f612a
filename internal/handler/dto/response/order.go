package response

import (
	"storefront-api/internal/usecase/queries"
)

type OrderResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserEmail    string `json:"user_email"`
	ServiceID    string `json:"service_id"`
	ServiceTitle string `json:"service_title"`
	Amount       int64  `json:"amount"`
	UTR          string `json:"utr"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:           v.ID.String(),
		UserID:       v.UserID.String(),
		UserEmail:    v.UserEmail,
		ServiceID:    v.ServiceID.String(),
		ServiceTitle: v.ServiceTitle,
		Amount:       v.Amount,
		UTR:          v.UTR,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}

func FromOrderList(views []queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i := range views {
		res[i] = FromOrderView(&views[i])
	}
	return res
}

type ClaimFreeResponse struct {
	OrderID string `json:"order_id"`
	Created bool   `json:"created"`
}

type IntentResponse struct {
	IntentID    string `json:"intent_id"`
	PaymentType string `json:"payment_type"`
	RefID       string `json:"ref_id"`
	IssuedAt    int64  `json:"issued_at"`
}
