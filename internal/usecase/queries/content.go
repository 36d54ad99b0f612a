package queries

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
)

var ErrArticleNotFound = errs.New("article not found")

type ContentReadStore interface {
	ListArticles(ctx context.Context, publishedOnly bool) ([]ArticleView, error)
	FindArticleBySlug(ctx context.Context, slug string) (*ArticleView, error)
	FindArticleByID(ctx context.Context, id uuid.UUID) (*ArticleView, error)
	ListFAQs(ctx context.Context) ([]FAQView, error)
}

type ContentQueries interface {
	ListArticles(ctx context.Context, includeUnpublished bool) ([]ArticleView, error)
	GetArticle(ctx context.Context, slug string) (*ArticleView, error)
	ListFAQs(ctx context.Context) ([]FAQView, error)
}

type contentQueriesImpl struct {
	readStore ContentReadStore
}

func NewContentQueries(readStore ContentReadStore) ContentQueries {
	return &contentQueriesImpl{readStore: readStore}
}

func (q *contentQueriesImpl) ListArticles(ctx context.Context, includeUnpublished bool) ([]ArticleView, error) {
	return q.readStore.ListArticles(ctx, !includeUnpublished)
}

func (q *contentQueriesImpl) GetArticle(ctx context.Context, slug string) (*ArticleView, error) {
	view, err := q.readStore.FindArticleBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *contentQueriesImpl) ListFAQs(ctx context.Context) ([]FAQView, error) {
	return q.readStore.ListFAQs(ctx)
}
