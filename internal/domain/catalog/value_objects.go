package catalog

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"storefront-api/internal/domain/payment"
)

var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title exceeds maximum length")
	ErrInvalidSlug        = errors.New("invalid slug format")
	ErrInvalidOfferWindow = errors.New("offer end date must be after start date")
	ErrEmptyOfferName     = errors.New("offer name cannot be empty")
)

const MaxTitleLength = 200

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if len(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string {
	return t.value
}

type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !slugRegex.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

func (s Slug) String() string {
	return s.value
}

// Offer is a named, time-boxed price override. The window is start-inclusive
// and end-exclusive.
type Offer struct {
	name     string
	price    payment.Money
	startsAt time.Time
	endsAt   time.Time
}

func NewOffer(name string, price payment.Money, startsAt, endsAt time.Time) (Offer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Offer{}, ErrEmptyOfferName
	}
	if !endsAt.After(startsAt) {
		return Offer{}, ErrInvalidOfferWindow
	}
	return Offer{
		name:     name,
		price:    price,
		startsAt: startsAt,
		endsAt:   endsAt,
	}, nil
}

func (o Offer) Name() string         { return o.name }
func (o Offer) Price() payment.Money { return o.price }
func (o Offer) StartsAt() time.Time  { return o.startsAt }
func (o Offer) EndsAt() time.Time    { return o.endsAt }

func (o Offer) IsActiveAt(t time.Time) bool {
	return !t.Before(o.startsAt) && t.Before(o.endsAt)
}

// ResolvePrice returns the effective price at the given instant. It must be
// re-evaluated on every read; offers expire mid-session.
func ResolvePrice(basePrice payment.Money, offer *Offer, now time.Time) payment.Money {
	if offer == nil || !offer.IsActiveAt(now) {
		return basePrice
	}
	return offer.Price()
}
