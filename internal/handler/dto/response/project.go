package response

import (
	"github.com/jinzhu/copier"

	"storefront-api/internal/usecase/queries"
)

type ProjectRequestResponse struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	UserEmail     string             `json:"user_email"`
	ServiceID     string             `json:"service_id"`
	ServiceTitle  string             `json:"service_title"`
	SRS           map[string]string  `json:"srs"`
	Status        string             `json:"status"`
	AdvanceAmount int64              `json:"advance_amount"`
	AdvanceUTR    *string            `json:"advance_utr,omitempty"`
	AdvanceStatus string             `json:"advance_status"`
	FullAmount    int64              `json:"full_amount"`
	FullUTR       *string            `json:"full_utr,omitempty"`
	FullStatus    string             `json:"full_status"`
	Deliverables  []DeliverableEntry `json:"deliverables"`
	CreatedAt     int64              `json:"created_at"`
	UpdatedAt     int64              `json:"updated_at"`
}

type DeliverableEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func FromProjectRequestView(v *queries.ProjectRequestView) *ProjectRequestResponse {
	res := &ProjectRequestResponse{}
	_ = copier.Copy(res, v)
	res.ID = v.ID.String()
	res.UserID = v.UserID.String()
	res.ServiceID = v.ServiceID.String()
	res.CreatedAt = v.CreatedAt.Unix()
	res.UpdatedAt = v.UpdatedAt.Unix()
	if res.Deliverables == nil {
		res.Deliverables = []DeliverableEntry{}
	}
	return res
}

func FromProjectRequestList(views []queries.ProjectRequestView) []*ProjectRequestResponse {
	res := make([]*ProjectRequestResponse, len(views))
	for i := range views {
		res[i] = FromProjectRequestView(&views[i])
	}
	return res
}
