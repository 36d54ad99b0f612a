package queries

import (
	"time"

	"github.com/google/uuid"
)

// ServiceView represents read-optimized catalog data. CurrentPrice already
// has any active offer folded in.
type ServiceView struct {
	ID            uuid.UUID  `json:"id"`
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
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// OrderView represents read-optimized standard order data
type OrderView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	ServiceID    uuid.UUID `json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	Amount       int64     `json:"amount"`
	UTR          string    `json:"utr"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectRequestView represents read-optimized project request data
type ProjectRequestView struct {
	ID            uuid.UUID         `json:"id"`
	UserID        uuid.UUID         `json:"user_id"`
	UserEmail     string            `json:"user_email"`
	ServiceID     uuid.UUID         `json:"service_id"`
	ServiceTitle  string            `json:"service_title"`
	SRS           map[string]string `json:"srs"`
	Status        string            `json:"status"`
	AdvanceAmount int64             `json:"advance_amount"`
	AdvanceUTR    *string           `json:"advance_utr,omitempty"`
	AdvanceStatus string            `json:"advance_status"`
	FullAmount    int64             `json:"full_amount"`
	FullUTR       *string           `json:"full_utr,omitempty"`
	FullStatus    string            `json:"full_status"`
	Deliverables  []DeliverableView `json:"deliverables"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type DeliverableView struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// ArticleView represents read-optimized article data
type ArticleView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FAQView represents read-optimized FAQ data
type FAQView struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Position int       `json:"position"`
}

// PendingItemView is one entry of the merged moderation queue shown on the
// admin dashboard, ordered oldest first across both sources.
type PendingItemView struct {
	Kind        string    `json:"kind"` // "order" or "request"
	ID          uuid.UUID `json:"id"`
	UserEmail   string    `json:"user_email"`
	Amount      int64     `json:"amount"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// StatsView represents the admin dashboard aggregates
type StatsView struct {
	TotalUsers        int64             `json:"total_users"`
	TotalOrders       int64             `json:"total_orders"`
	TotalRequests     int64             `json:"total_requests"`
	CompletedRequests int64             `json:"completed_requests"`
	RevenuePaise      int64             `json:"revenue_paise"`
	PendingQueue      []PendingItemView `json:"pending_queue"`
}
