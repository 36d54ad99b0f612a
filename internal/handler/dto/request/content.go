package request

import (
	"storefront-api/internal/domain/content"
)

type CreateArticleRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Slug      string `json:"slug" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Published bool   `json:"published"`
}

func (r *CreateArticleRequest) ToDomain() (*content.Article, error) {
	return content.NewArticle(r.Title, r.Slug, r.Body, r.Published)
}

type UpdateArticleRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=200"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

type CreateFAQRequest struct {
	Question string `json:"question" binding:"required,max=500"`
	Answer   string `json:"answer" binding:"required"`
	Position int    `json:"position" binding:"min=0"`
}

func (r *CreateFAQRequest) ToDomain() (*content.FAQ, error) {
	return content.NewFAQ(r.Question, r.Answer, r.Position)
}

type UpdateFAQRequest struct {
	Question *string `json:"question" binding:"omitempty,max=500"`
	Answer   *string `json:"answer"`
	Position *int    `json:"position" binding:"omitempty,min=0"`
}
