package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"storefront-api/internal/cache"
	"storefront-api/internal/domain/order"
	"storefront-api/internal/domain/payment"
	"storefront-api/internal/domain/project"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/stream"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/queries"
)

var (
	ErrOrderNotFound      = errs.New("order not found")
	ErrModerationConflict = errs.New("item was already moderated")
	ErrModerationBusy     = errs.New("moderation already in progress for this item")
	ErrModerationInvalid  = errs.New("moderation input invalid")
)

// ModerationPublisher pushes moderation outcomes to the event stream.
// Publishing is best-effort; a stream outage never rolls back a decision.
type ModerationPublisher interface {
	Publish(ctx context.Context, ev stream.ModerationEvent) error
}

// ModerationCommands is the single write path for admin decisions. Every
// operation updates the relevant cached admin list optimistically, commits
// the durable write, and restores the exact cached snapshot on failure.
type ModerationCommands interface {
	ApproveOrder(ctx context.Context, orderID, actorID uuid.UUID) error
	RejectOrder(ctx context.Context, orderID, actorID uuid.UUID) error

	ApproveRequest(ctx context.Context, requestID, actorID uuid.UUID, req reqdto.ApproveRequestRequest) error
	RejectRequest(ctx context.Context, requestID, actorID uuid.UUID) error
	ApproveAdvance(ctx context.Context, requestID, actorID uuid.UUID) error
	RejectAdvance(ctx context.Context, requestID, actorID uuid.UUID) error
	RequestFullPayment(ctx context.Context, requestID, actorID uuid.UUID, req reqdto.RequestFullPaymentRequest) error
	ApproveFullPayment(ctx context.Context, requestID, actorID uuid.UUID) error
	RejectFullPayment(ctx context.Context, requestID, actorID uuid.UUID) error
	AttachDeliverables(ctx context.Context, requestID, actorID uuid.UUID, req reqdto.AttachDeliverablesRequest) error
}

type moderationCommandsImpl struct {
	orderRepo    OrderRepository
	requestRepo  ProjectRequestRepository
	serviceRepo  ServiceRepository
	orchestrator *cache.Orchestrator
	publisher    ModerationPublisher
	clock        clock.Clock
	logger       *slog.Logger
}

func NewModerationCommands(
	orderRepo OrderRepository,
	requestRepo ProjectRequestRepository,
	serviceRepo ServiceRepository,
	orchestrator *cache.Orchestrator,
	publisher ModerationPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) ModerationCommands {
	return &moderationCommandsImpl{
		orderRepo:    orderRepo,
		requestRepo:  requestRepo,
		serviceRepo:  serviceRepo,
		orchestrator: orchestrator,
		publisher:    publisher,
		clock:        clk,
		logger:       logger,
	}
}

func (m *moderationCommandsImpl) ApproveOrder(ctx context.Context, orderID, actorID uuid.UUID) error {
	return m.moderateOrder(ctx, orderID, actorID, "order.approve", func(o *order.StandardOrder) error {
		return o.Approve()
	})
}

func (m *moderationCommandsImpl) RejectOrder(ctx context.Context, orderID, actorID uuid.UUID) error {
	return m.moderateOrder(ctx, orderID, actorID, "order.reject", func(o *order.StandardOrder) error {
		return o.Reject()
	})
}

func (m *moderationCommandsImpl) moderateOrder(ctx context.Context, orderID, actorID uuid.UUID, action string, decide func(*order.StandardOrder) error) error {
	target, err := m.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if err := decide(target); err != nil {
		return errs.Mark(err, ErrModerationConflict)
	}

	mutation := cache.Mutation{
		Action: action,
		ItemID: orderID,
		Key:    cache.KeyAdminOrders,
		Apply:  applyOrderStatus(orderID, target.Status().String()),
		Commit: func(ctx context.Context) error {
			if err := m.orderRepo.SaveStatus(ctx, target); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrModerationConflict
				}
				return err
			}
			return nil
		},
		AlsoInvalidate: []string{cache.KeyAdminStats},
	}
	if err := m.execute(ctx, mutation); err != nil {
		return err
	}

	m.publish(ctx, action, "order", orderID, actorID, target.Status().String())
	return nil
}

func (m *moderationCommandsImpl) ApproveRequest(ctx context.Context, requestID, actorID uuid.UUID, req reqdto.ApproveRequestRequest) error {
	advance, err := payment.NewMoney(req.AdvanceAmount)
	if err != nil {
		return errs.Mark(err, ErrModerationInvalid)
	}
	return m.moderateRequest(ctx, requestID, actorID, "request.approve", func(r *project.Request) error {
		amount := advance
		if amount.IsZero() {
			svc, err := m.serviceRepo.FindByID(ctx, r.ServiceID())
			if err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			if svc != nil {
				amount = svc.AdvanceAmount()
			}
		}
		return r.Approve(amount)
	})
}

func (m *moderationCommandsImpl) RejectRequest(ctx context.Context, requestID, actorID uuid.UUID) error {
	return m.moderateRequest(ctx, requestID, actorID, "request.reject", func(r *project.Request) error {
		return r.Reject()
	})
}

func (m *moderationCommandsImpl) ApproveAdvance(ctx context.Context, requestID, actorID uuid.UUID) error {
	return m.moderateRequest(ctx, requestID, actorID, "request.advance.approve", func(r *project.Request) error {
		return r.ApproveAdvance()
	})
}

func (m *moderationCommandsImpl) RejectAdvance(ctx context.Context, requestID, actorID uuid.UUID) error {
	return m.moderateRequest(ctx, requestID, actorID, "request.advance.reject", func(r *project.Request) error {
		return r.RejectAdvance()
	})
}

func (m *moderationCommandsImpl) RequestFullPayment(ctx context.Context, requestID, actorID uuid.UUID, req reqdto.RequestFullPaymentRequest) error {
	adminAmount, err := payment.NewMoney(req.Amount)
	if err != nil {
		return errs.Mark(err, ErrModerationInvalid)
	}
	return m.moderateRequest(ctx, requestID, actorID, "request.full.request", func(r *project.Request) error {
		servicePrice := payment.Money{}
		svc, err := m.serviceRepo.FindByID(ctx, r.ServiceID())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		if svc != nil {
			servicePrice = svc.CurrentPrice(m.clock.Now())
		}
		return r.RequestFullPayment(adminAmount, servicePrice)
	})
}

func (m *moderationCommandsImpl) ApproveFullPayment(ctx context.Context, requestID, actorID uuid.UUID) error {
	return m.moderateRequest(ctx, requestID, actorID, "request.full.approve", func(r *project.Request) error {
		return r.ApproveFullPayment()
	})
}

func (m *moderationCommandsImpl) RejectFullPayment(ctx context.Context, requestID, actorID uuid.UUID) error {
	return m.moderateRequest(ctx, requestID, actorID, "request.full.reject", func(r *project.Request) error {
		return r.RejectFullPayment()
	})
}

func (m *moderationCommandsImpl) AttachDeliverables(ctx context.Context, requestID, actorID uuid.UUID, req reqdto.AttachDeliverablesRequest) error {
	items, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrModerationInvalid)
	}
	return m.moderateRequest(ctx, requestID, actorID, "request.deliverables", func(r *project.Request) error {
		return r.AttachDeliverables(items)
	})
}

func (m *moderationCommandsImpl) moderateRequest(ctx context.Context, requestID, actorID uuid.UUID, action string, decide func(*project.Request) error) error {
	target, err := m.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	if err := decide(target); err != nil {
		return errs.Mark(err, ErrModerationConflict)
	}

	mutation := cache.Mutation{
		Action: action,
		ItemID: requestID,
		Key:    cache.KeyAdminRequests,
		Apply:  applyRequestState(target),
		Commit: func(ctx context.Context) error {
			return m.requestRepo.Save(ctx, target)
		},
		AlsoInvalidate: []string{cache.KeyAdminStats},
	}
	if err := m.execute(ctx, mutation); err != nil {
		return err
	}

	m.publish(ctx, action, "request", requestID, actorID, target.Status().String())
	return nil
}

func (m *moderationCommandsImpl) execute(ctx context.Context, mutation cache.Mutation) error {
	err := m.orchestrator.Execute(ctx, mutation)
	if errors.Is(err, cache.ErrMutationInFlight) {
		return ErrModerationBusy
	}
	return err
}

func (m *moderationCommandsImpl) publish(ctx context.Context, action, kind string, itemID, actorID uuid.UUID, outcome string) {
	ev := stream.ModerationEvent{
		Action:     action,
		ItemKind:   kind,
		ItemID:     itemID,
		ActorID:    actorID,
		Outcome:    outcome,
		OccurredAt: m.clock.Now(),
	}
	if err := m.publisher.Publish(ctx, ev); err != nil {
		m.logger.Warn("failed to publish moderation event",
			slog.String("action", action),
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func applyOrderStatus(orderID uuid.UUID, status string) func(any) any {
	return func(current any) any {
		views, ok := current.([]queries.OrderView)
		if !ok {
			return current
		}
		next := make([]queries.OrderView, len(views))
		copy(next, views)
		for i := range next {
			if next[i].ID == orderID {
				next[i].Status = status
			}
		}
		return next
	}
}

func applyRequestState(target *project.Request) func(any) any {
	id := target.ID()
	status := target.Status().String()
	advanceState := string(target.Advance().State())
	fullState := string(target.Full().State())
	return func(current any) any {
		views, ok := current.([]queries.ProjectRequestView)
		if !ok {
			return current
		}
		next := make([]queries.ProjectRequestView, len(views))
		copy(next, views)
		for i := range next {
			if next[i].ID == id {
				next[i].Status = status
				next[i].AdvanceStatus = advanceState
				next[i].FullStatus = fullState
			}
		}
		return next
	}
}
