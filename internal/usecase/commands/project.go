package commands

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/payment"
	"storefront-api/internal/domain/project"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
)

var (
	ErrRequestNotFound   = errs.New("project request not found")
	ErrRequestNotOwned   = errs.New("project request belongs to another user")
	ErrRequestCreation   = errs.New("failed to create project request")
	ErrRequestTransition = errs.New("request state does not allow this operation")
	ErrServiceNotCustom  = errs.New("service does not accept project requests")
)

type ProjectRequestRepository interface {
	Create(ctx context.Context, req *project.Request) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*project.Request, error)
	Save(ctx context.Context, req *project.Request) error
}

type ProjectCommands interface {
	CreateRequest(ctx context.Context, req reqdto.CreateProjectRequest, userID uuid.UUID) (uuid.UUID, error)
	SubmitAdvanceUTR(ctx context.Context, requestID uuid.UUID, req reqdto.SubmitUTRRequest, userID uuid.UUID) error
	SubmitFullUTR(ctx context.Context, requestID uuid.UUID, req reqdto.SubmitUTRRequest, userID uuid.UUID) error
}

type projectCommandsImpl struct {
	requestRepo ProjectRequestRepository
	serviceRepo ServiceRepository
	intentStore IntentStore
}

func NewProjectCommands(requestRepo ProjectRequestRepository, serviceRepo ServiceRepository, intentStore IntentStore) ProjectCommands {
	return &projectCommandsImpl{
		requestRepo: requestRepo,
		serviceRepo: serviceRepo,
		intentStore: intentStore,
	}
}

func (p *projectCommandsImpl) CreateRequest(ctx context.Context, req reqdto.CreateProjectRequest, userID uuid.UUID) (uuid.UUID, error) {
	srs, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRequestCreation)
	}

	svc, err := p.serviceRepo.FindByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrServiceNotFound
		}
		return uuid.Nil, err
	}
	if svc.Type() != catalog.TypeCustom {
		return uuid.Nil, ErrServiceNotCustom
	}

	request, err := project.NewRequest(userID, req.ServiceID, srs)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrRequestCreation)
	}
	return p.requestRepo.Create(ctx, request)
}

func (p *projectCommandsImpl) SubmitAdvanceUTR(ctx context.Context, requestID uuid.UUID, req reqdto.SubmitUTRRequest, userID uuid.UUID) error {
	return p.submitUTR(ctx, requestID, req, userID, payment.TypeProjectAdvance)
}

func (p *projectCommandsImpl) SubmitFullUTR(ctx context.Context, requestID uuid.UUID, req reqdto.SubmitUTRRequest, userID uuid.UUID) error {
	return p.submitUTR(ctx, requestID, req, userID, payment.TypeProjectFull)
}

func (p *projectCommandsImpl) submitUTR(ctx context.Context, requestID uuid.UUID, req reqdto.SubmitUTRRequest, userID uuid.UUID, paymentType payment.Type) error {
	utr, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrRequestTransition)
	}

	request, err := p.loadOwned(ctx, requestID, userID)
	if err != nil {
		return err
	}

	if err := consumeIntent(ctx, p.intentStore, req.IntentID, paymentType, requestID, userID); err != nil {
		return err
	}

	switch paymentType {
	case payment.TypeProjectAdvance:
		err = request.SubmitAdvanceUTR(utr)
	case payment.TypeProjectFull:
		err = request.SubmitFullUTR(utr)
	}
	if err != nil {
		return errs.Mark(err, ErrRequestTransition)
	}

	return p.requestRepo.Save(ctx, request)
}

func (p *projectCommandsImpl) loadOwned(ctx context.Context, requestID, userID uuid.UUID) (*project.Request, error) {
	request, err := p.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if request.UserID() != userID {
		return nil, ErrRequestNotOwned
	}
	return request, nil
}
