package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ServiceSnapshot struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	BasePrice     int64
	ServiceType   string
	AdvanceAmount int64
	Offer         *OfferSnapshot
}

type OfferSnapshot struct {
	Name     string
	Price    int64
	StartsAt time.Time
	EndsAt   time.Time
}

type OrderSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ServiceID uuid.UUID
	Amount    int64
	UTR       string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProjectRequestSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ServiceID     uuid.UUID
	SRS           map[string]string
	Status        string
	AdvanceAmount int64
	AdvanceUTR    *string
	AdvanceState  string
	FullAmount    int64
	FullUTR       *string
	FullState     string
	Deliverables  []DeliverableSnapshot
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DeliverableSnapshot struct {
	Name string
	URL  string
}
