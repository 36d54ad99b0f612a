package request

import (
	"time"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/payment"
)

type CreateServiceRequest struct {
	Title         string `json:"title" binding:"required,max=200"`
	Slug          string `json:"slug" binding:"required"`
	BasePrice     int64  `json:"base_price" binding:"min=0"`
	ServiceType   string `json:"service_type" binding:"required,oneof=standard custom"`
	AdvanceAmount int64  `json:"advance_amount" binding:"min=0"`
}

func (r *CreateServiceRequest) ToDomain() (*catalog.Service, error) {
	title, err := catalog.NewTitle(r.Title)
	if err != nil {
		return nil, err
	}
	slug, err := catalog.NewSlug(r.Slug)
	if err != nil {
		return nil, err
	}
	serviceType, err := catalog.NewServiceType(r.ServiceType)
	if err != nil {
		return nil, err
	}
	basePrice, err := payment.NewMoney(r.BasePrice)
	if err != nil {
		return nil, err
	}
	advance, err := payment.NewMoney(r.AdvanceAmount)
	if err != nil {
		return nil, err
	}
	return catalog.NewService(title, slug, basePrice, serviceType, advance)
}

type UpdateServiceRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=200"`
	BasePrice     *int64  `json:"base_price" binding:"omitempty,min=0"`
	AdvanceAmount *int64  `json:"advance_amount" binding:"omitempty,min=0"`
}

type SetOfferRequest struct {
	Name     string    `json:"name" binding:"required,max=200"`
	Price    int64     `json:"price" binding:"min=0"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
}

func (r *SetOfferRequest) ToDomain() (catalog.Offer, error) {
	price, err := payment.NewMoney(r.Price)
	if err != nil {
		return catalog.Offer{}, err
	}
	return catalog.NewOffer(r.Name, price, r.StartsAt, r.EndsAt)
}
