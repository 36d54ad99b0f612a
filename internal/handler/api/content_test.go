//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/api"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	commandsmock "storefront-api/tests/mock/commands"
	queriesmock "storefront-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockContentCommands
	mockQueries  *queriesmock.MockContentQueries
	handler      *api.ContentHandler
}

func (s *ContentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockContentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockContentQueries(s.mockCtrl)
	s.handler = api.NewContentHandler(s.mockCommands, s.mockQueries)

	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/articles", s.handler.ListArticles)
	s.router.GET("/articles/:slug", s.handler.GetArticle)
	s.router.GET("/faqs", s.handler.ListFAQs)
	s.router.GET("/admin/articles", adminMiddleware, s.handler.ListAllArticles)
	s.router.POST("/admin/articles", adminMiddleware, s.handler.CreateArticle)
	s.router.PATCH("/admin/articles/:id", adminMiddleware, s.handler.UpdateArticle)
	s.router.DELETE("/admin/articles/:id", adminMiddleware, s.handler.DeleteArticle)
	s.router.POST("/admin/faqs", adminMiddleware, s.handler.CreateFAQ)
}

func (s *ContentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContentHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContentHandlerTestSuite))
}

func articleView(slug string, published bool) queries.ArticleView {
	now := time.Now()
	return queries.ArticleView{
		ID:        uuid.New(),
		Title:     "How billing works",
		Slug:      slug,
		Body:      "Long-form body text.",
		Published: published,
		CreatedAt: now.Add(-24 * time.Hour),
		UpdatedAt: now,
	}
}

// ================================================================================
// TestListArticles
// ================================================================================

func (s *ContentHandlerTestSuite) TestListArticles() {
	s.Run("success: public list asks for published only", func() {
		views := []queries.ArticleView{articleView("how-billing-works", true)}
		s.mockQueries.EXPECT().ListArticles(gomock.Any(), false).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/articles", nil, "")

		var body []resdto.ArticleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("how-billing-works", body[0].Slug)
		s.True(body[0].Published)
	})

	s.Run("success: admin list includes drafts", func() {
		views := []queries.ArticleView{
			articleView("published-post", true),
			articleView("draft-post", false),
		}
		s.mockQueries.EXPECT().ListArticles(gomock.Any(), true).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/articles", nil, "admin-token")

		var body []resdto.ArticleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.False(body[1].Published)
	})

	s.Run("error: read store failure returns 500", func() {
		s.mockQueries.EXPECT().ListArticles(gomock.Any(), false).
			Return(nil, errors.New("db gone")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/articles", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list articles")
	})
}

// ================================================================================
// TestGetArticle
// ================================================================================

func (s *ContentHandlerTestSuite) TestGetArticle() {
	s.Run("success", func() {
		view := articleView("refund-policy", true)
		s.mockQueries.EXPECT().GetArticle(gomock.Any(), "refund-policy").
			Return(&view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/articles/refund-policy", nil, "")

		var body resdto.ArticleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("refund-policy", body.Slug)
	})

	s.Run("error: unknown slug returns 404", func() {
		s.mockQueries.EXPECT().GetArticle(gomock.Any(), "missing").
			Return(nil, queries.ErrArticleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/articles/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Article not found")
	})
}

// ================================================================================
// TestListFAQs
// ================================================================================

func (s *ContentHandlerTestSuite) TestListFAQs() {
	s.Run("success: ordered by position", func() {
		views := []queries.FAQView{
			{ID: uuid.New(), Question: "How do I pay?", Answer: "Via UPI.", Position: 0},
			{ID: uuid.New(), Question: "Is there a refund?", Answer: "Within 7 days.", Position: 1},
		}
		s.mockQueries.EXPECT().ListFAQs(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/faqs", nil, "")

		var body []resdto.FAQResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(0, body[0].Position)
		s.Equal(1, body[1].Position)
	})
}

// ================================================================================
// TestCreateArticle
// ================================================================================

func (s *ContentHandlerTestSuite) TestCreateArticle() {
	url := "/admin/articles"
	validReq := reqdto.CreateArticleRequest{
		Title:     "New announcement",
		Slug:      "new-announcement",
		Body:      "Body text",
		Published: true,
	}

	s.Run("success", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateArticle(gomock.Any(), validReq).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "admin-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id.String(), body["id"])
	})

	s.Run("error: missing title rejected", func() {
		req := testutil.DtoMap(s.T(), validReq, testutil.Field("title", ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: invalid content data returns 400", func() {
		s.mockCommands.EXPECT().CreateArticle(gomock.Any(), validReq).
			Return(uuid.Nil, commands.ErrContentInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid content data")
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestUpdateArticle
// ================================================================================

func (s *ContentHandlerTestSuite) TestUpdateArticle() {
	articleID := uuid.New()
	url := "/admin/articles/" + articleID.String()
	published := false
	req := reqdto.UpdateArticleRequest{Published: &published}

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateArticle(gomock.Any(), articleID, req).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, req, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown article returns 404", func() {
		s.mockCommands.EXPECT().UpdateArticle(gomock.Any(), articleID, req).
			Return(commands.ErrArticleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, req, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Content not found")
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/articles/not-a-uuid", req, "admin-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestDeleteArticle
// ================================================================================

func (s *ContentHandlerTestSuite) TestDeleteArticle() {
	articleID := uuid.New()
	url := "/admin/articles/" + articleID.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().DeleteArticle(gomock.Any(), articleID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown article returns 404", func() {
		s.mockCommands.EXPECT().DeleteArticle(gomock.Any(), articleID).
			Return(commands.ErrArticleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Content not found")
	})
}

// ================================================================================
// TestCreateFAQ
// ================================================================================

func (s *ContentHandlerTestSuite) TestCreateFAQ() {
	url := "/admin/faqs"
	validReq := reqdto.CreateFAQRequest{
		Question: "Do you support international payments?",
		Answer:   "Not yet.",
		Position: 3,
	}

	s.Run("success", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CreateFAQ(gomock.Any(), validReq).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReq, "admin-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id.String(), body["id"])
	})

	s.Run("error: missing question rejected", func() {
		req := testutil.DtoMap(s.T(), validReq, testutil.Field("question", ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
