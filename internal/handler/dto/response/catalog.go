package response

import (
	"time"

	"github.com/jinzhu/copier"

	"storefront-api/internal/usecase/queries"
)

type ServiceResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	BasePrice     int64      `json:"base_price"`
	CurrentPrice  int64      `json:"current_price"`
	ServiceType   string     `json:"service_type"`
	AdvanceAmount int64      `json:"advance_amount"`
	OfferName     *string    `json:"offer_name,omitempty"`
	OfferPrice    *int64     `json:"offer_price,omitempty"`
	OfferStartsAt *time.Time `json:"offer_starts_at,omitempty"`
	OfferEndsAt   *time.Time `json:"offer_ends_at,omitempty"`
	CreatedAt     int64      `json:"created_at"`
	UpdatedAt     int64      `json:"updated_at"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	res := &ServiceResponse{}
	_ = copier.Copy(res, v)
	res.ID = v.ID.String()
	res.CreatedAt = v.CreatedAt.Unix()
	res.UpdatedAt = v.UpdatedAt.Unix()
	return res
}

func FromServiceList(views []queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(views))
	for i := range views {
		res[i] = FromServiceView(&views[i])
	}
	return res
}
