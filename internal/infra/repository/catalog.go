package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/payment"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *catalog.Service) (uuid.UUID, error) {
	const q = `
		INSERT INTO services (id, title, slug, base_price, service_type, advance_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		svc.ID(), svc.Title().String(), svc.Slug().String(),
		svc.BasePrice().Paise(), svc.Type().String(), svc.AdvanceAmount().Paise(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *catalog.Service) error {
	const q = `
		UPDATE services
		SET title = $2, base_price = $3, advance_amount = $4,
		    offer_name = $5, offer_price = $6, offer_starts_at = $7, offer_ends_at = $8,
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	var (
		offerName  *string
		offerPrice *int64
		offerFrom  pgtype.Timestamptz
		offerTo    pgtype.Timestamptz
	)
	if offer := svc.Offer(); offer != nil {
		name := offer.Name()
		price := offer.Price().Paise()
		offerName = &name
		offerPrice = &price
		offerFrom = pgconv.TimeToPgtype(offer.StartsAt())
		offerTo = pgconv.TimeToPgtype(offer.EndsAt())
	}

	tag, err := r.db.Exec(ctx, q,
		svc.ID(), svc.Title().String(), svc.BasePrice().Paise(), svc.AdvanceAmount().Paise(),
		offerName, offerPrice, offerFrom, offerTo,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete marks the service deleted. The row stays so past orders and
// project requests keep their reference.
func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE services
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	const q = `
		SELECT id, title, slug, base_price, service_type, advance_amount,
		       offer_name, offer_price, offer_starts_at, offer_ends_at,
		       created_at, updated_at
		FROM services
		WHERE id = $1 AND deleted_at IS NULL`

	var (
		rowID         uuid.UUID
		title         string
		slug          string
		basePrice     int64
		serviceType   string
		advanceAmount int64
		offerName     *string
		offerPrice    *int64
		offerFrom     pgtype.Timestamptz
		offerTo       pgtype.Timestamptz
		createdAt     time.Time
		updatedAt     time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&rowID, &title, &slug, &basePrice, &serviceType, &advanceAmount,
		&offerName, &offerPrice, &offerFrom, &offerTo,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}

	return reconstructService(
		rowID, title, slug, basePrice, serviceType, advanceAmount,
		offerName, offerPrice, offerFrom, offerTo, createdAt, updatedAt,
	)
}

func reconstructService(
	id uuid.UUID,
	rawTitle, rawSlug string,
	basePrice int64,
	rawType string,
	advanceAmount int64,
	offerName *string,
	offerPrice *int64,
	offerFrom, offerTo pgtype.Timestamptz,
	createdAt, updatedAt time.Time,
) (*catalog.Service, error) {
	title, err := catalog.NewTitle(rawTitle)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt service title", err)
	}
	slug, err := catalog.NewSlug(rawSlug)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt service slug", err)
	}
	serviceType, err := catalog.NewServiceType(rawType)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt service type", err)
	}

	var offer *catalog.Offer
	if offerName != nil && offerPrice != nil {
		o, err := catalog.NewOffer(*offerName, payment.MustMoney(*offerPrice), offerFrom.Time, offerTo.Time)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt service offer", err)
		}
		offer = &o
	}

	return catalog.ReconstructService(
		id, title, slug,
		payment.MustMoney(basePrice), serviceType, payment.MustMoney(advanceAmount),
		offer, createdAt, updatedAt,
	), nil
}
