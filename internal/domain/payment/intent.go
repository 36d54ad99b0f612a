package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPaymentType = errors.New("invalid payment type")

type Type string

const (
	TypeStandardService Type = "standard_service"
	TypeProjectAdvance  Type = "project_advance"
	TypeProjectFull     Type = "project_full"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandardService, TypeProjectAdvance, TypeProjectFull:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidPaymentType
	}
	return t, nil
}

// Intent is a short-lived, single-use token binding a payment attempt to one
// target entity. It is issued before any payment form is shown and consumed by
// exactly one submission.
type Intent struct {
	ID          uuid.UUID `json:"id"`
	PaymentType Type      `json:"payment_type"`
	RefID       uuid.UUID `json:"ref_id"`
	UserID      uuid.UUID `json:"user_id"`
	IssuedAt    time.Time `json:"issued_at"`
}

func NewIntent(paymentType Type, refID, userID uuid.UUID, issuedAt time.Time) *Intent {
	return &Intent{
		ID:          uuid.New(),
		PaymentType: paymentType,
		RefID:       refID,
		UserID:      userID,
		IssuedAt:    issuedAt,
	}
}

// Matches reports whether the intent binds the given submission target.
func (i *Intent) Matches(paymentType Type, refID, userID uuid.UUID) bool {
	return i.PaymentType == paymentType && i.RefID == refID && i.UserID == userID
}
