package commands

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/domain/content"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/patch"
	"storefront-api/internal/usecase/queries"
)

var (
	ErrArticleNotFound = errs.New("article not found")
	ErrFAQNotFound     = errs.New("faq not found")
	ErrContentInvalid  = errs.New("invalid content data")
)

type ContentRepository interface {
	CreateArticle(ctx context.Context, a *content.Article) (uuid.UUID, error)
	UpdateArticle(ctx context.Context, a *content.Article) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	CreateFAQ(ctx context.Context, f *content.FAQ) (uuid.UUID, error)
	UpdateFAQ(ctx context.Context, f *content.FAQ) error
	DeleteFAQ(ctx context.Context, id uuid.UUID) error
}

type ContentCommands interface {
	CreateArticle(ctx context.Context, req reqdto.CreateArticleRequest) (uuid.UUID, error)
	UpdateArticle(ctx context.Context, id uuid.UUID, req reqdto.UpdateArticleRequest) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	CreateFAQ(ctx context.Context, req reqdto.CreateFAQRequest) (uuid.UUID, error)
	UpdateFAQ(ctx context.Context, id uuid.UUID, req reqdto.UpdateFAQRequest) error
	DeleteFAQ(ctx context.Context, id uuid.UUID) error
}

type contentCommandsImpl struct {
	contentRepo ContentRepository
	readStore   queries.ContentReadStore
	clock       clock.Clock
}

func NewContentCommands(contentRepo ContentRepository, readStore queries.ContentReadStore, clk clock.Clock) ContentCommands {
	return &contentCommandsImpl{
		contentRepo: contentRepo,
		readStore:   readStore,
		clock:       clk,
	}
}

func (c *contentCommandsImpl) CreateArticle(ctx context.Context, req reqdto.CreateArticleRequest) (uuid.UUID, error) {
	article, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrContentInvalid)
	}

	id, err := c.contentRepo.CreateArticle(ctx, article)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrSlugTaken
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *contentCommandsImpl) UpdateArticle(ctx context.Context, id uuid.UUID, req reqdto.UpdateArticleRequest) error {
	existing, err := c.readStore.FindArticleByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	article := content.ReconstructArticle(
		existing.ID,
		patch.Coalesce(req.Title, existing.Title),
		existing.Slug,
		patch.Coalesce(req.Body, existing.Body),
		patch.Coalesce(req.Published, existing.Published),
		existing.CreatedAt,
		c.clock.Now(),
	)
	return c.contentRepo.UpdateArticle(ctx, article)
}

func (c *contentCommandsImpl) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	err := c.contentRepo.DeleteArticle(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}

func (c *contentCommandsImpl) CreateFAQ(ctx context.Context, req reqdto.CreateFAQRequest) (uuid.UUID, error) {
	faq, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrContentInvalid)
	}
	return c.contentRepo.CreateFAQ(ctx, faq)
}

func (c *contentCommandsImpl) UpdateFAQ(ctx context.Context, id uuid.UUID, req reqdto.UpdateFAQRequest) error {
	faqs, err := c.readStore.ListFAQs(ctx)
	if err != nil {
		return err
	}

	var existing *queries.FAQView
	for i := range faqs {
		if faqs[i].ID == id {
			existing = &faqs[i]
			break
		}
	}
	if existing == nil {
		return ErrFAQNotFound
	}

	faq := content.ReconstructFAQ(
		existing.ID,
		patch.Coalesce(req.Question, existing.Question),
		patch.Coalesce(req.Answer, existing.Answer),
		patch.Coalesce(req.Position, existing.Position),
	)
	return c.contentRepo.UpdateFAQ(ctx, faq)
}

func (c *contentCommandsImpl) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	err := c.contentRepo.DeleteFAQ(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrFAQNotFound
		}
		return err
	}
	return nil
}
