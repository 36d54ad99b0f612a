package project

import (
	"errors"
	"net/url"
	"strings"

	"storefront-api/internal/domain/payment"
)

var (
	ErrEmptySRS            = errors.New("requirements form cannot be empty")
	ErrEmptySRSField       = errors.New("requirements field label cannot be empty")
	ErrEmptyDeliverable    = errors.New("deliverable name cannot be empty")
	ErrInvalidDeliverable  = errors.New("deliverable url is invalid")
	ErrInvalidStatus       = errors.New("invalid project request status")
	ErrInvalidPaymentState = errors.New("invalid payment state")
)

// SRSData is the structured requirements form a user submits when requesting
// a custom project. Labels are unique by construction.
type SRSData map[string]string

func NewSRSData(fields map[string]string) (SRSData, error) {
	if len(fields) == 0 {
		return nil, ErrEmptySRS
	}
	data := make(SRSData, len(fields))
	for label, value := range fields {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, ErrEmptySRSField
		}
		data[label] = strings.TrimSpace(value)
	}
	return data, nil
}

// Deliverable is one named artifact of the finished project.
type Deliverable struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func NewDeliverable(name, rawURL string) (Deliverable, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Deliverable{}, ErrEmptyDeliverable
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Deliverable{}, ErrInvalidDeliverable
	}
	return Deliverable{Name: name, URL: u.String()}, nil
}

// PaymentPhase is one of the two independent payment sub-flows of a request.
type PaymentPhase struct {
	amount payment.Money
	utr    *payment.UTR
	state  PaymentState
}

func NewPaymentPhase() PaymentPhase {
	return PaymentPhase{state: PaymentUnset}
}

func ReconstructPaymentPhase(amount payment.Money, utr *payment.UTR, state PaymentState) PaymentPhase {
	return PaymentPhase{amount: amount, utr: utr, state: state}
}

func (p PaymentPhase) Amount() payment.Money { return p.amount }
func (p PaymentPhase) UTR() *payment.UTR     { return p.utr }
func (p PaymentPhase) State() PaymentState   { return p.state }
