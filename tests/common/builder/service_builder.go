//go:build unit || e2e

package builder

import (
	"time"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/payment"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	BasePrice     int64
	ServiceType   string
	AdvanceAmount int64
	OfferName     string
	OfferPrice    int64
	OfferStartsAt *time.Time
	OfferEndsAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	now := time.Now()
	return &ServiceBuilder{
		ID:          uuid.New(),
		Title:       "Portfolio Website",
		Slug:        "portfolio-website",
		BasePrice:   99900,
		ServiceType: "standard",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) WithCustom(advanceAmount int64) *ServiceBuilder {
	b.ServiceType = "custom"
	b.AdvanceAmount = advanceAmount
	return b
}

func (b *ServiceBuilder) WithOffer(name string, price int64, startsAt, endsAt time.Time) *ServiceBuilder {
	b.OfferName = name
	b.OfferPrice = price
	b.OfferStartsAt = &startsAt
	b.OfferEndsAt = &endsAt
	return b
}

func (b *ServiceBuilder) buildOffer() (*catalog.Offer, error) {
	if b.OfferStartsAt == nil || b.OfferEndsAt == nil {
		return nil, nil
	}
	price, err := payment.NewMoney(b.OfferPrice)
	if err != nil {
		return nil, err
	}
	offer, err := catalog.NewOffer(b.OfferName, price, *b.OfferStartsAt, *b.OfferEndsAt)
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (b *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	title, err := catalog.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}
	slug, err := catalog.NewSlug(b.Slug)
	if err != nil {
		return nil, err
	}
	basePrice, err := payment.NewMoney(b.BasePrice)
	if err != nil {
		return nil, err
	}
	serviceType, err := catalog.NewServiceType(b.ServiceType)
	if err != nil {
		return nil, err
	}
	advance, err := payment.NewMoney(b.AdvanceAmount)
	if err != nil {
		return nil, err
	}
	svc, err := catalog.NewService(title, slug, basePrice, serviceType, advance)
	if err != nil {
		return nil, err
	}
	offer, err := b.buildOffer()
	if err != nil {
		return nil, err
	}
	if offer != nil {
		if attachErr := svc.AttachOffer(*offer); attachErr != nil {
			return nil, attachErr
		}
	}
	return svc, nil
}

func (b *ServiceBuilder) BuildSnapshot() *commands.ServiceSnapshot {
	snap := &commands.ServiceSnapshot{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug,
		BasePrice:     b.BasePrice,
		ServiceType:   b.ServiceType,
		AdvanceAmount: b.AdvanceAmount,
	}
	if b.OfferStartsAt != nil && b.OfferEndsAt != nil {
		snap.Offer = &commands.OfferSnapshot{
			Name:     b.OfferName,
			Price:    b.OfferPrice,
			StartsAt: *b.OfferStartsAt,
			EndsAt:   *b.OfferEndsAt,
		}
	}
	return snap
}

func (b *ServiceBuilder) BuildView(now time.Time) *queries.ServiceView {
	view := &queries.ServiceView{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug,
		BasePrice:     b.BasePrice,
		CurrentPrice:  b.BasePrice,
		ServiceType:   b.ServiceType,
		AdvanceAmount: b.AdvanceAmount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.OfferStartsAt != nil && b.OfferEndsAt != nil {
		view.OfferName = &b.OfferName
		view.OfferPrice = &b.OfferPrice
		view.OfferStartsAt = b.OfferStartsAt
		view.OfferEndsAt = b.OfferEndsAt
		if !now.Before(*b.OfferStartsAt) && now.Before(*b.OfferEndsAt) {
			view.CurrentPrice = b.OfferPrice
		}
	}
	return view
}
