package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"
	"storefront-api/internal/usecase/queries"
)

type ContentReadStore struct {
	db db.DBTX
}

func NewContentReadStore(dbtx db.DBTX) *ContentReadStore {
	return &ContentReadStore{db: dbtx}
}

const articleColumns = `id, title, slug, body, published, created_at, updated_at`

func (r *ContentReadStore) ListArticles(ctx context.Context, publishedOnly bool) ([]queries.ArticleView, error) {
	q := `SELECT ` + articleColumns + ` FROM articles`
	if publishedOnly {
		q += ` WHERE published`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list articles", err)
	}
	defer rows.Close()
	return scanArticles(rows)
}

func (r *ContentReadStore) FindArticleBySlug(ctx context.Context, slug string) (*queries.ArticleView, error) {
	q := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1 AND published`

	view, err := scanArticle(r.db.QueryRow(ctx, q, slug))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("article not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find article", err)
	}
	return view, nil
}

func (r *ContentReadStore) FindArticleByID(ctx context.Context, id uuid.UUID) (*queries.ArticleView, error) {
	q := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	view, err := scanArticle(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("article not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find article", err)
	}
	return view, nil
}

func (r *ContentReadStore) ListFAQs(ctx context.Context) ([]queries.FAQView, error) {
	const q = `SELECT id, question, answer, position FROM faqs ORDER BY position`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list faqs", err)
	}
	defer rows.Close()

	views := make([]queries.FAQView, 0)
	for rows.Next() {
		var view queries.FAQView
		if err := rows.Scan(&view.ID, &view.Question, &view.Answer, &view.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan faq", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate faqs", err)
	}
	return views, nil
}

func scanArticles(rows pgx.Rows) ([]queries.ArticleView, error) {
	views := make([]queries.ArticleView, 0)
	for rows.Next() {
		view, err := scanArticle(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan article", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate articles", err)
	}
	return views, nil
}

func scanArticle(row pgx.Row) (*queries.ArticleView, error) {
	var view queries.ArticleView
	err := row.Scan(
		&view.ID, &view.Title, &view.Slug, &view.Body, &view.Published,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
