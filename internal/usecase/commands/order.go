package commands

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/order"
	"storefront-api/internal/domain/payment"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
)

var (
	ErrServiceNotFound    = errs.New("service not found")
	ErrServiceNotStandard = errs.New("service does not accept standard orders")
	ErrServiceNotFree     = errs.New("service price is not zero")
	ErrOrderCreation      = errs.New("failed to create order")
)

type OrderRepository interface {
	Create(ctx context.Context, o *order.StandardOrder) (uuid.UUID, error)
	ClaimFree(ctx context.Context, userID, serviceID uuid.UUID) (uuid.UUID, bool, error)
	HasApproved(ctx context.Context, userID, serviceID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*order.StandardOrder, error)
	SaveStatus(ctx context.Context, o *order.StandardOrder) error
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *catalog.Service) (uuid.UUID, error)
	Update(ctx context.Context, svc *catalog.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

type ClaimFreeResult struct {
	OrderID uuid.UUID
	Created bool
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID) (uuid.UUID, error)
	ClaimFree(ctx context.Context, req reqdto.ClaimFreeRequest, userID uuid.UUID) (*ClaimFreeResult, error)
}

type orderCommandsImpl struct {
	orderRepo   OrderRepository
	serviceRepo ServiceRepository
	intentStore IntentStore
	clock       clock.Clock
}

func NewOrderCommands(orderRepo OrderRepository, serviceRepo ServiceRepository, intentStore IntentStore, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:   orderRepo,
		serviceRepo: serviceRepo,
		intentStore: intentStore,
		clock:       clk,
	}
}

// CreateOrder records a paid submission for a standard service. The amount is
// the service's current price at submission time, never client input, and the
// intent must have been issued for this exact (type, service, user) triple.
func (o *orderCommandsImpl) CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, userID uuid.UUID) (uuid.UUID, error) {
	utr, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOrderCreation)
	}

	svc, err := o.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrServiceNotFound
		}
		return uuid.Nil, err
	}
	if svc.Type() != catalog.TypeStandard {
		return uuid.Nil, ErrServiceNotStandard
	}

	owned, err := o.orderRepo.HasApproved(ctx, userID, req.ServiceID)
	if err != nil {
		return uuid.Nil, err
	}
	if owned {
		return uuid.Nil, ErrIntentAlreadyPaid
	}

	err = consumeIntent(ctx, o.intentStore, req.IntentID, payment.TypeStandardService, req.ServiceID, userID)
	if err != nil {
		return uuid.Nil, err
	}

	amount := svc.CurrentPrice(o.clock.Now())
	newOrder, err := order.NewStandardOrder(userID, req.ServiceID, amount, utr)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOrderCreation)
	}

	return o.orderRepo.Create(ctx, newOrder)
}

// ClaimFree grants a zero-priced service without the payment flow. Repeat
// claims return the original order.
func (o *orderCommandsImpl) ClaimFree(ctx context.Context, req reqdto.ClaimFreeRequest, userID uuid.UUID) (*ClaimFreeResult, error) {
	svc, err := o.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if svc.Type() != catalog.TypeStandard {
		return nil, ErrServiceNotStandard
	}
	if !svc.IsFreeAt(o.clock.Now()) {
		return nil, ErrServiceNotFree
	}

	orderID, created, err := o.orderRepo.ClaimFree(ctx, userID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	return &ClaimFreeResult{OrderID: orderID, Created: created}, nil
}
