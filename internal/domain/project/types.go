package project

type Status string

const (
	StatusSubmitted           Status = "submitted"
	StatusAdvancePending      Status = "advance_pending"
	StatusInProgress          Status = "in_progress"
	StatusPaymentPending      Status = "payment_pending"
	StatusFinalPaymentPending Status = "final_payment_pending"
	StatusCompleted           Status = "completed"
	StatusRejected            Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSubmitted, StatusAdvancePending, StatusInProgress,
		StatusPaymentPending, StatusFinalPaymentPending, StatusCompleted, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// PaymentState tracks one payment phase (advance or full) independently of
// the overall request status.
type PaymentState string

const (
	PaymentUnset    PaymentState = "unset"
	PaymentPending  PaymentState = "pending"
	PaymentApproved PaymentState = "approved"
	PaymentRejected PaymentState = "rejected"
)

func (p PaymentState) IsValid() bool {
	switch p {
	case PaymentUnset, PaymentPending, PaymentApproved, PaymentRejected:
		return true
	default:
		return false
	}
}

func NewPaymentState(s string) (PaymentState, error) {
	state := PaymentState(s)
	if !state.IsValid() {
		return "", ErrInvalidPaymentState
	}
	return state, nil
}
