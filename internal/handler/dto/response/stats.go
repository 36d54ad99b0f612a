package response

import (
	"storefront-api/internal/usecase/queries"
)

type PendingItemResponse struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	UserEmail   string `json:"user_email"`
	Amount      int64  `json:"amount"`
	SubmittedAt int64  `json:"submitted_at"`
}

type StatsResponse struct {
	TotalUsers        int64                 `json:"total_users"`
	TotalOrders       int64                 `json:"total_orders"`
	TotalRequests     int64                 `json:"total_requests"`
	CompletedRequests int64                 `json:"completed_requests"`
	RevenuePaise      int64                 `json:"revenue_paise"`
	PendingQueue      []PendingItemResponse `json:"pending_queue"`
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	pending := make([]PendingItemResponse, len(v.PendingQueue))
	for i, item := range v.PendingQueue {
		pending[i] = PendingItemResponse{
			Kind:        item.Kind,
			ID:          item.ID.String(),
			UserEmail:   item.UserEmail,
			Amount:      item.Amount,
			SubmittedAt: item.SubmittedAt.Unix(),
		}
	}
	return &StatsResponse{
		TotalUsers:        v.TotalUsers,
		TotalOrders:       v.TotalOrders,
		TotalRequests:     v.TotalRequests,
		CompletedRequests: v.CompletedRequests,
		RevenuePaise:      v.RevenuePaise,
		PendingQueue:      pending,
	}
}
