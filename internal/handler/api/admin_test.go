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
	commandsmock "storefront-api/tests/mock/commands"
	queriesmock "storefront-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockModeration *commandsmock.MockModerationCommands
	mockOrderQ     *queriesmock.MockOrderQueries
	mockProjectQ   *queriesmock.MockProjectQueries
	mockStatsQ     *queriesmock.MockStatsQueries
	handler        *api.AdminHandler
	adminID        uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockModeration = commandsmock.NewMockModerationCommands(s.mockCtrl)
	s.mockOrderQ = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockProjectQ = queriesmock.NewMockProjectQueries(s.mockCtrl)
	s.mockStatsQ = queriesmock.NewMockStatsQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockModeration, s.mockOrderQ, s.mockProjectQ, s.mockStatsQ)
	s.adminID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	admin := s.router.Group("/admin", authMiddleware)
	admin.GET("/orders", s.handler.ListOrders)
	admin.POST("/orders/:id/approve", s.handler.ApproveOrder)
	admin.POST("/orders/:id/reject", s.handler.RejectOrder)
	admin.GET("/project-requests", s.handler.ListRequests)
	admin.POST("/project-requests/:id/approve", s.handler.ApproveRequest)
	admin.POST("/project-requests/:id/advance/approve", s.handler.ApproveAdvance)
	admin.POST("/project-requests/:id/full/request", s.handler.RequestFullPayment)
	admin.PUT("/project-requests/:id/deliverables", s.handler.AttachDeliverables)
	admin.GET("/stats", s.handler.Dashboard)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestApproveOrder
// ================================================================================

func (s *AdminHandlerTestSuite) TestApproveOrder() {
	orderID := uuid.New()
	url := "/admin/orders/" + orderID.String() + "/approve"

	s.Run("success: returns 204", func() {
		s.mockModeration.EXPECT().ApproveOrder(gomock.Any(), orderID, s.adminID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/orders/not-a-uuid/approve", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps moderation errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "another moderation in flight",
				commandsError:  commands.ErrModerationBusy,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "in progress",
			},
			{
				name:           "already moderated",
				commandsError:  commands.ErrModerationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already moderated",
			},
			{
				name:           "order not found",
				commandsError:  commands.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
			{
				name:           "unexpected failure",
				commandsError:  errors.New("kafka is down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockModeration.EXPECT().ApproveOrder(gomock.Any(), orderID, s.adminID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestApproveRequest
// ================================================================================

func (s *AdminHandlerTestSuite) TestApproveRequest() {
	requestID := uuid.New()
	url := "/admin/project-requests/" + requestID.String() + "/approve"

	s.Run("success: explicit advance amount", func() {
		reqBody := reqdto.ApproveRequestRequest{AdvanceAmount: 250000}
		s.mockModeration.EXPECT().ApproveRequest(gomock.Any(), requestID, s.adminID, reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: empty body falls back to service advance", func() {
		s.mockModeration.EXPECT().ApproveRequest(gomock.Any(), requestID, s.adminID, reqdto.ApproveRequestRequest{}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when request already decided", func() {
		s.mockModeration.EXPECT().ApproveRequest(gomock.Any(), requestID, s.adminID, gomock.Any()).
			Return(commands.ErrModerationConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already moderated")
	})
}

// ================================================================================
// TestRequestFullPayment
// ================================================================================

func (s *AdminHandlerTestSuite) TestRequestFullPayment() {
	requestID := uuid.New()
	url := "/admin/project-requests/" + requestID.String() + "/full/request"

	s.Run("success: returns 204", func() {
		reqBody := reqdto.RequestFullPaymentRequest{Amount: 500000}
		s.mockModeration.EXPECT().RequestFullPayment(gomock.Any(), requestID, s.adminID, reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when phase does not allow it", func() {
		s.mockModeration.EXPECT().RequestFullPayment(gomock.Any(), requestID, s.adminID, gomock.Any()).
			Return(commands.ErrModerationConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestAttachDeliverables
// ================================================================================

func (s *AdminHandlerTestSuite) TestAttachDeliverables() {
	requestID := uuid.New()
	url := "/admin/project-requests/" + requestID.String() + "/deliverables"
	reqBody := reqdto.AttachDeliverablesRequest{
		Items: []reqdto.DeliverableItem{
			{Name: "Source archive", URL: "https://files.example.com/project.zip"},
		},
	}

	s.Run("success: returns 204", func() {
		s.mockModeration.EXPECT().AttachDeliverables(gomock.Any(), requestID, s.adminID, reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on empty items", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.AttachDeliverablesRequest{Items: []reqdto.DeliverableItem{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on invalid url", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.AttachDeliverablesRequest{Items: []reqdto.DeliverableItem{{Name: "x", URL: "not-a-url"}}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestDashboard
// ================================================================================

func (s *AdminHandlerTestSuite) TestDashboard() {
	url := "/admin/stats"

	s.Run("success: returns merged pending queue ordered by submission time", func() {
		now := time.Now().UTC()
		view := &queries.StatsView{
			TotalUsers:        12,
			TotalOrders:       40,
			TotalRequests:     9,
			CompletedRequests: 4,
			RevenuePaise:      1250000,
			PendingQueue: []queries.PendingItemView{
				{Kind: "request", ID: uuid.New(), UserEmail: "b@example.com", Amount: 250000, SubmittedAt: now.Add(-1 * time.Hour)},
				{Kind: "order", ID: uuid.New(), UserEmail: "a@example.com", Amount: 50000, SubmittedAt: now.Add(-2 * time.Hour)},
			},
		}
		s.mockStatsQ.EXPECT().Dashboard(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1250000), body.RevenuePaise)
		s.Len(body.PendingQueue, 2)
		s.Equal("request", body.PendingQueue[0].Kind)
		s.Equal("order", body.PendingQueue[1].Kind)
	})

	s.Run("error: 500 when aggregation fails", func() {
		s.mockStatsQ.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("db gone")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
