package response

import (
	"storefront-api/internal/usecase/queries"
)

type ArticleResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromArticleView(v *queries.ArticleView) *ArticleResponse {
	return &ArticleResponse{
		ID:        v.ID.String(),
		Title:     v.Title,
		Slug:      v.Slug,
		Body:      v.Body,
		Published: v.Published,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

func FromArticleList(views []queries.ArticleView) []*ArticleResponse {
	res := make([]*ArticleResponse, len(views))
	for i := range views {
		res[i] = FromArticleView(&views[i])
	}
	return res
}

type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
}

func FromFAQList(views []queries.FAQView) []*FAQResponse {
	res := make([]*FAQResponse, len(views))
	for i, v := range views {
		res[i] = &FAQResponse{
			ID:       v.ID.String(),
			Question: v.Question,
			Answer:   v.Answer,
			Position: v.Position,
		}
	}
	return res
}
