package commands

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/domain/payment"
	"storefront-api/internal/domain/project"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
)

var (
	ErrIntentIssueFailed  = errs.New("failed to issue payment intent")
	ErrIntentRefNotFound  = errs.New("payment target not found")
	ErrIntentAlreadyPaid  = errs.New("payment target is already paid")
	ErrIntentNotOwned     = errs.New("payment target belongs to another user")
	ErrIntentInvalid      = errs.New("payment intent is invalid or expired")
	ErrIntentMismatch     = errs.New("payment intent does not match this submission")
	ErrIntentNoPaymentDue = errs.New("payment target has no payment due")
)

// IntentStore is the one-time token store backing payment submissions.
type IntentStore interface {
	Issue(ctx context.Context, intent *payment.Intent) error
	Consume(ctx context.Context, id uuid.UUID) (*payment.Intent, error)
}

type IntentCommands interface {
	IssueIntent(ctx context.Context, req reqdto.IssueIntentRequest, userID uuid.UUID) (*payment.Intent, error)
}

type intentCommandsImpl struct {
	store       IntentStore
	serviceRepo ServiceRepository
	orderRepo   OrderRepository
	requestRepo ProjectRequestRepository
	clock       clock.Clock
}

func NewIntentCommands(store IntentStore, serviceRepo ServiceRepository, orderRepo OrderRepository, requestRepo ProjectRequestRepository, clk clock.Clock) IntentCommands {
	return &intentCommandsImpl{
		store:       store,
		serviceRepo: serviceRepo,
		orderRepo:   orderRepo,
		requestRepo: requestRepo,
		clock:       clk,
	}
}

// IssueIntent validates the payment target before minting the token. A target
// that does not exist, is not the caller's, is already paid for, or has
// nothing due never gets one.
func (i *intentCommandsImpl) IssueIntent(ctx context.Context, req reqdto.IssueIntentRequest, userID uuid.UUID) (*payment.Intent, error) {
	paymentType, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrIntentIssueFailed)
	}

	if err := i.validateTarget(ctx, paymentType, req.RefID, userID); err != nil {
		return nil, err
	}

	intent := payment.NewIntent(paymentType, req.RefID, userID, i.clock.Now())
	if err := i.store.Issue(ctx, intent); err != nil {
		return nil, errs.Mark(err, ErrIntentIssueFailed)
	}
	return intent, nil
}

func (i *intentCommandsImpl) validateTarget(ctx context.Context, paymentType payment.Type, refID, userID uuid.UUID) error {
	switch paymentType {
	case payment.TypeStandardService:
		svc, err := i.serviceRepo.FindByID(ctx, refID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrIntentRefNotFound
			}
			return err
		}
		if svc.IsFreeAt(i.clock.Now()) {
			return ErrIntentNoPaymentDue
		}
		owned, err := i.orderRepo.HasApproved(ctx, userID, refID)
		if err != nil {
			return err
		}
		if owned {
			return ErrIntentAlreadyPaid
		}
		return nil

	case payment.TypeProjectAdvance, payment.TypeProjectFull:
		request, err := i.requestRepo.FindByID(ctx, refID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrIntentRefNotFound
			}
			return err
		}
		if request.UserID() != userID {
			return ErrIntentNotOwned
		}
		return validateRequestPhase(request, paymentType)
	}
	return nil
}

func validateRequestPhase(request *project.Request, paymentType payment.Type) error {
	if paymentType == payment.TypeProjectAdvance {
		if request.Advance().State() == project.PaymentApproved {
			return ErrIntentAlreadyPaid
		}
		if request.Status() != project.StatusAdvancePending {
			return ErrIntentNoPaymentDue
		}
		return nil
	}
	if request.FullyPaid() || request.Full().State() == project.PaymentApproved {
		return ErrIntentAlreadyPaid
	}
	if request.Status() != project.StatusPaymentPending {
		return ErrIntentNoPaymentDue
	}
	return nil
}

// consumeIntent validates a submitted intent against the expected payment
// leg. Consumption is destructive, so a mismatch burns the token.
func consumeIntent(ctx context.Context, store IntentStore, intentID uuid.UUID, paymentType payment.Type, refID, userID uuid.UUID) error {
	intent, err := store.Consume(ctx, intentID)
	if err != nil {
		return errs.Mark(err, ErrIntentInvalid)
	}
	if !intent.Matches(paymentType, refID, userID) {
		return ErrIntentMismatch
	}
	return nil
}
