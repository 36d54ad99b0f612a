package catalog

import (
	"errors"
	"time"

	"storefront-api/internal/domain/payment"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceType  = errors.New("invalid service type")
	ErrAdvanceExceedsPrice = errors.New("advance amount cannot exceed current price")
	ErrAdvanceOnStandard   = errors.New("advance amount only applies to custom services")
	ErrNoOfferAttached     = errors.New("service has no offer attached")
)

type ServiceType string

const (
	TypeStandard ServiceType = "standard"
	TypeCustom   ServiceType = "custom"
)

func (t ServiceType) String() string {
	return string(t)
}

func (t ServiceType) IsValid() bool {
	switch t {
	case TypeStandard, TypeCustom:
		return true
	default:
		return false
	}
}

func NewServiceType(s string) (ServiceType, error) {
	t := ServiceType(s)
	if !t.IsValid() {
		return "", ErrInvalidServiceType
	}
	return t, nil
}

// Service is a purchasable offering. Created and edited by admins only;
// orders and project requests snapshot its price at transaction time, so
// later edits never rewrite history.
type Service struct {
	id            uuid.UUID
	title         Title
	slug          Slug
	basePrice     payment.Money
	serviceType   ServiceType
	advanceAmount payment.Money
	offer         *Offer
	createdAt     time.Time
	updatedAt     time.Time
}

func NewService(
	title Title,
	slug Slug,
	basePrice payment.Money,
	serviceType ServiceType,
	advanceAmount payment.Money,
) (*Service, error) {
	if serviceType == TypeStandard && !advanceAmount.IsZero() {
		return nil, ErrAdvanceOnStandard
	}
	if serviceType == TypeCustom && !advanceAmount.LessThanOrEqual(basePrice) {
		return nil, ErrAdvanceExceedsPrice
	}
	return &Service{
		id:            uuid.New(),
		title:         title,
		slug:          slug,
		basePrice:     basePrice,
		serviceType:   serviceType,
		advanceAmount: advanceAmount,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	title Title,
	slug Slug,
	basePrice payment.Money,
	serviceType ServiceType,
	advanceAmount payment.Money,
	offer *Offer,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:            id,
		title:         title,
		slug:          slug,
		basePrice:     basePrice,
		serviceType:   serviceType,
		advanceAmount: advanceAmount,
		offer:         offer,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (s *Service) ID() uuid.UUID                { return s.id }
func (s *Service) Title() Title                 { return s.title }
func (s *Service) Slug() Slug                   { return s.slug }
func (s *Service) BasePrice() payment.Money     { return s.basePrice }
func (s *Service) Type() ServiceType            { return s.serviceType }
func (s *Service) AdvanceAmount() payment.Money { return s.advanceAmount }
func (s *Service) Offer() *Offer                { return s.offer }
func (s *Service) CreatedAt() time.Time         { return s.createdAt }
func (s *Service) UpdatedAt() time.Time         { return s.updatedAt }

// CurrentPrice resolves the effective price at the given instant.
func (s *Service) CurrentPrice(now time.Time) payment.Money {
	return ResolvePrice(s.basePrice, s.offer, now)
}

func (s *Service) IsFreeAt(now time.Time) bool {
	return s.CurrentPrice(now).IsZero()
}

// AttachOffer replaces any existing offer. The advance invariant is checked
// against the price the offer yields while active.
func (s *Service) AttachOffer(offer Offer) error {
	if s.serviceType == TypeCustom && !s.advanceAmount.LessThanOrEqual(offer.Price()) {
		return ErrAdvanceExceedsPrice
	}
	s.offer = &offer
	return nil
}

// DetachOffer reverts the price to base immediately.
func (s *Service) DetachOffer() error {
	if s.offer == nil {
		return ErrNoOfferAttached
	}
	s.offer = nil
	return nil
}

func (s *Service) Rename(title Title) {
	s.title = title
}

func (s *Service) Reprice(basePrice payment.Money) error {
	if s.serviceType == TypeCustom && !s.advanceAmount.LessThanOrEqual(basePrice) {
		return ErrAdvanceExceedsPrice
	}
	s.basePrice = basePrice
	return nil
}

func (s *Service) SetAdvanceAmount(amount payment.Money, now time.Time) error {
	if s.serviceType == TypeStandard {
		return ErrAdvanceOnStandard
	}
	if !amount.LessThanOrEqual(s.CurrentPrice(now)) {
		return ErrAdvanceExceedsPrice
	}
	s.advanceAmount = amount
	return nil
}
