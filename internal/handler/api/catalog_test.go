//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/api"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
	"storefront-api/tests/common/builder"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	commandsmock "storefront-api/tests/mock/commands"
	queriesmock "storefront-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	userMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.GET("/services", s.handler.List)
	s.router.GET("/services/owned", userMiddleware, s.handler.ListOwned)
	s.router.GET("/services/:slug", s.handler.GetBySlug)
	s.router.POST("/admin/services", adminMiddleware, s.handler.Create)
	s.router.PUT("/admin/services/:id/offer", adminMiddleware, s.handler.SetOffer)
	s.router.DELETE("/admin/services/:id/offer", adminMiddleware, s.handler.RemoveOffer)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *CatalogHandlerTestSuite) TestList() {
	url := "/services"

	s.Run("success: offer price wins inside the window", func() {
		now := time.Now()
		discounted := builder.NewServiceBuilder().
			WithOffer("Monsoon Sale", 49900, now.Add(-time.Hour), now.Add(time.Hour)).
			BuildView(now)
		regular := builder.NewServiceBuilder().BuildView(now)

		s.mockQueries.EXPECT().ListServices(gomock.Any()).
			Return([]queries.ServiceView{*discounted, *regular}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(int64(49900), body[0].CurrentPrice)
		s.Equal(body[1].BasePrice, body[1].CurrentPrice)
	})
}

// ================================================================================
// TestListOwned
// ================================================================================

func (s *CatalogHandlerTestSuite) TestListOwned() {
	url := "/services/owned"

	s.Run("success: returns the user's services", func() {
		now := time.Now()
		owned := builder.NewServiceBuilder().BuildView(now)

		s.mockQueries.EXPECT().ListOwnedServices(gomock.Any(), gomock.Any()).
			Return([]queries.ServiceView{*owned}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(owned.Slug, body[0].Slug)
	})

	s.Run("success: empty list when nothing is owned", func() {
		s.mockQueries.EXPECT().ListOwnedServices(gomock.Any(), gomock.Any()).
			Return([]queries.ServiceView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetBySlug
// ================================================================================

func (s *CatalogHandlerTestSuite) TestGetBySlug() {
	view := builder.NewServiceBuilder().BuildView(time.Now())
	url := "/services/" + view.Slug

	s.Run("success: returns the service", func() {
		s.mockQueries.EXPECT().GetServiceBySlug(gomock.Any(), view.Slug).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Slug, body.Slug)
	})

	s.Run("error: 404 for unknown slug", func() {
		s.mockQueries.EXPECT().GetServiceBySlug(gomock.Any(), view.Slug).
			Return(nil, queries.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CatalogHandlerTestSuite) TestCreate() {
	url := "/admin/services"
	reqBody := reqdto.CreateServiceRequest{
		Title:       "Portfolio Website",
		Slug:        "portfolio-website",
		BasePrice:   99900,
		ServiceType: "standard",
	}

	s.Run("success: returns 201 with service id", func() {
		serviceID := uuid.New()
		s.mockCommands.EXPECT().CreateService(gomock.Any(), reqBody).
			Return(serviceID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(serviceID.String(), body["id"])
	})

	s.Run("error: 409 on duplicate slug", func() {
		s.mockCommands.EXPECT().CreateService(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrSlugTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slug already in use")
	})

	s.Run("error: 400 on invalid service type", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("service_type", "bespoke"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestSetOffer
// ================================================================================

func (s *CatalogHandlerTestSuite) TestSetOffer() {
	serviceID := uuid.New()
	url := "/admin/services/" + serviceID.String() + "/offer"
	now := time.Now().UTC().Truncate(time.Second)
	reqBody := reqdto.SetOfferRequest{
		Name:     "Festival Offer",
		Price:    49900,
		StartsAt: now,
		EndsAt:   now.Add(72 * time.Hour),
	}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().SetOffer(gomock.Any(), serviceID, reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown service", func() {
		s.mockCommands.EXPECT().SetOffer(gomock.Any(), serviceID, reqBody).
			Return(commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("success: remove offer returns 204", func() {
		s.mockCommands.EXPECT().RemoveOffer(gomock.Any(), serviceID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
