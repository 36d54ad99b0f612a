package commands

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/payment"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/patch"
)

var (
	ErrSlugTaken      = errs.New("slug already in use")
	ErrServiceInvalid = errs.New("invalid service data")
)

type CatalogCommands interface {
	CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (uuid.UUID, error)
	UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) error
	DeleteService(ctx context.Context, id uuid.UUID) error
	SetOffer(ctx context.Context, id uuid.UUID, req reqdto.SetOfferRequest) error
	RemoveOffer(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	serviceRepo ServiceRepository
	clock       clock.Clock
}

func NewCatalogCommands(serviceRepo ServiceRepository, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{serviceRepo: serviceRepo, clock: clk}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (uuid.UUID, error) {
	svc, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrServiceInvalid)
	}

	id, err := c.serviceRepo.Create(ctx, svc)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrSlugTaken
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) error {
	svc, err := c.find(ctx, id)
	if err != nil {
		return err
	}

	if req.Title != nil {
		title, err := catalog.NewTitle(*req.Title)
		if err != nil {
			return errs.Mark(err, ErrServiceInvalid)
		}
		svc.Rename(title)
	}

	basePrice := patch.Coalesce(req.BasePrice, svc.BasePrice().Paise())
	if basePrice != svc.BasePrice().Paise() {
		price, err := payment.NewMoney(basePrice)
		if err != nil {
			return errs.Mark(err, ErrServiceInvalid)
		}
		if err := svc.Reprice(price); err != nil {
			return errs.Mark(err, ErrServiceInvalid)
		}
	}

	advance := patch.Coalesce(req.AdvanceAmount, svc.AdvanceAmount().Paise())
	if advance != svc.AdvanceAmount().Paise() {
		amount, err := payment.NewMoney(advance)
		if err != nil {
			return errs.Mark(err, ErrServiceInvalid)
		}
		if err := svc.SetAdvanceAmount(amount, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrServiceInvalid)
		}
	}

	return c.serviceRepo.Update(ctx, svc)
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	err := c.serviceRepo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return nil
}

func (c *catalogCommandsImpl) SetOffer(ctx context.Context, id uuid.UUID, req reqdto.SetOfferRequest) error {
	svc, err := c.find(ctx, id)
	if err != nil {
		return err
	}

	offer, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrServiceInvalid)
	}
	if err := svc.AttachOffer(offer); err != nil {
		return errs.Mark(err, ErrServiceInvalid)
	}

	return c.serviceRepo.Update(ctx, svc)
}

func (c *catalogCommandsImpl) RemoveOffer(ctx context.Context, id uuid.UUID) error {
	svc, err := c.find(ctx, id)
	if err != nil {
		return err
	}

	if err := svc.DetachOffer(); err != nil {
		return errs.Mark(err, ErrServiceInvalid)
	}
	return c.serviceRepo.Update(ctx, svc)
}

func (c *catalogCommandsImpl) find(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	svc, err := c.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}
