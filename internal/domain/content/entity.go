package content

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyArticleTitle = errors.New("article title cannot be empty")
	ErrEmptyArticleBody  = errors.New("article body cannot be empty")
	ErrEmptyQuestion     = errors.New("faq question cannot be empty")
	ErrEmptyAnswer       = errors.New("faq answer cannot be empty")
	ErrNegativePosition  = errors.New("faq position cannot be negative")
)

// Article is a marketing/knowledge-base entry managed from the admin console.
type Article struct {
	id        uuid.UUID
	title     string
	slug      string
	body      string
	published bool
	createdAt time.Time
	updatedAt time.Time
}

func NewArticle(title, slug, body string, published bool) (*Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyArticleTitle
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyArticleBody
	}
	return &Article{
		id:        uuid.New(),
		title:     title,
		slug:      strings.TrimSpace(strings.ToLower(slug)),
		body:      body,
		published: published,
	}, nil
}

func ReconstructArticle(id uuid.UUID, title, slug, body string, published bool, createdAt, updatedAt time.Time) *Article {
	return &Article{
		id:        id,
		title:     title,
		slug:      slug,
		body:      body,
		published: published,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Article) ID() uuid.UUID        { return a.id }
func (a *Article) Title() string        { return a.title }
func (a *Article) Slug() string         { return a.slug }
func (a *Article) Body() string         { return a.body }
func (a *Article) Published() bool      { return a.published }
func (a *Article) CreatedAt() time.Time { return a.createdAt }
func (a *Article) UpdatedAt() time.Time { return a.updatedAt }

// FAQ is one entry of the storefront FAQ list, ordered by position.
type FAQ struct {
	id       uuid.UUID
	question string
	answer   string
	position int
}

func NewFAQ(question, answer string, position int) (*FAQ, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}
	if position < 0 {
		return nil, ErrNegativePosition
	}
	return &FAQ{
		id:       uuid.New(),
		question: question,
		answer:   answer,
		position: position,
	}, nil
}

func ReconstructFAQ(id uuid.UUID, question, answer string, position int) *FAQ {
	return &FAQ{id: id, question: question, answer: answer, position: position}
}

func (f *FAQ) ID() uuid.UUID    { return f.id }
func (f *FAQ) Question() string { return f.question }
func (f *FAQ) Answer() string   { return f.answer }
func (f *FAQ) Position() int    { return f.position }
