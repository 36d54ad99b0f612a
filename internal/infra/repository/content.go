package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/domain/content"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
)

type ContentRepository struct {
	db db.DBTX
}

func NewContentRepository(dbtx db.DBTX) *ContentRepository {
	return &ContentRepository{db: dbtx}
}

func (r *ContentRepository) CreateArticle(ctx context.Context, a *content.Article) (uuid.UUID, error) {
	const q = `
		INSERT INTO articles (id, title, slug, body, published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q, a.ID(), a.Title(), a.Slug(), a.Body(), a.Published()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create article", err)
	}
	return id, nil
}

func (r *ContentRepository) UpdateArticle(ctx context.Context, a *content.Article) error {
	const q = `
		UPDATE articles
		SET title = $2, slug = $3, body = $4, published = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, a.ID(), a.Title(), a.Slug(), a.Body(), a.Published())
	if err != nil {
		return infra.WrapRepoErr("failed to update article", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("article not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ContentRepository) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete article", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("article not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ContentRepository) CreateFAQ(ctx context.Context, f *content.FAQ) (uuid.UUID, error) {
	const q = `
		INSERT INTO faqs (id, question, answer, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q, f.ID(), f.Question(), f.Answer(), f.Position()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create faq", err)
	}
	return id, nil
}

func (r *ContentRepository) UpdateFAQ(ctx context.Context, f *content.FAQ) error {
	const q = `
		UPDATE faqs SET question = $2, answer = $3, position = $4 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, f.ID(), f.Question(), f.Answer(), f.Position())
	if err != nil {
		return infra.WrapRepoErr("failed to update faq", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("faq not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ContentRepository) DeleteFAQ(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete faq", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("faq not found", nil, infra.KindNotFound)
	}
	return nil
}
