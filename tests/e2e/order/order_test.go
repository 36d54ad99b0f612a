//go:build e2e

package order_test

import (
	"net/http"
	"testing"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/dto/request"
	"storefront-api/internal/handler/dto/response"
	"storefront-api/tests/common/authtest"
	"storefront-api/tests/common/dbtest"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	intentsURL   = "/api/payment-intents"
	ordersURL    = "/api/orders"
	claimFreeURL = "/api/orders/claim-free"
)

type orderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) issueIntent(t *testing.T, token string, serviceID uuid.UUID) response.IntentResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, intentsURL,
		request.IssueIntentRequest{PaymentType: "standard_service", RefID: serviceID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var intent response.IntentResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &intent))
	require.NotEmpty(t, intent.IntentID)
	return intent
}

func (s *orderSuite) TestOrderFlow() {
	s.Run("paid order submit and approve", func() {
		t := s.T()

		serviceID := dbtest.CreateTestService(t, s.DB, "seo-audit", "standard", 149900)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleCustomer))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "mod@example.com", string(user.RoleAdmin))

		intent := s.issueIntent(t, customerToken, serviceID)
		intentID, err := uuid.Parse(intent.IntentID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			request.CreateOrderRequest{ServiceID: serviceID, IntentID: intentID, UTR: "UTR123456789"}, customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		orderID := created["id"]
		require.NotEmpty(t, orderID)

		// The order starts out pending.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var mine []response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Len(t, mine, 1)
		require.Equal(t, "pending", mine[0].Status)
		require.Equal(t, int64(149900), mine[0].Amount)

		// Admin approval flips the status.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/orders/"+orderID+"/approve", nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		mine = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Equal(t, "approved", mine[0].Status)

		// A second decision on the same order is a conflict.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/orders/"+orderID+"/reject", nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// An owned service refuses further payment intents.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, intentsURL,
			request.IssueIntentRequest{PaymentType: "standard_service", RefID: serviceID}, customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("intent cannot be spent twice", func() {
		t := s.T()

		serviceID := dbtest.CreateTestService(t, s.DB, "seo-audit", "standard", 149900)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleCustomer))

		intent := s.issueIntent(t, customerToken, serviceID)
		intentID, err := uuid.Parse(intent.IntentID)
		require.NoError(t, err)

		body := request.CreateOrderRequest{ServiceID: serviceID, IntentID: intentID, UTR: "UTR987654321"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, body, customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, body, customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("intent refused when nothing is due", func() {
		t := s.T()

		freeID := dbtest.CreateTestService(t, s.DB, "starter-consult", "standard", 0)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, intentsURL,
			request.IssueIntentRequest{PaymentType: "standard_service", RefID: freeID}, customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, intentsURL,
			request.IssueIntentRequest{PaymentType: "standard_service", RefID: uuid.New()}, customerToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("intent must match the submitted service", func() {
		t := s.T()

		serviceID := dbtest.CreateTestService(t, s.DB, "seo-audit", "standard", 149900)
		otherID := dbtest.CreateTestService(t, s.DB, "logo-pack", "standard", 99900)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleCustomer))

		intent := s.issueIntent(t, customerToken, otherID)
		intentID, err := uuid.Parse(intent.IntentID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			request.CreateOrderRequest{ServiceID: serviceID, IntentID: intentID, UTR: "UTR111222333"}, customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *orderSuite) TestServiceDeletionKeepsHistory() {
	t := s.T()

	serviceID := dbtest.CreateTestService(t, s.DB, "seo-audit", "standard", 149900)
	customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleCustomer))
	adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "mod@example.com", string(user.RoleAdmin))

	intent := s.issueIntent(t, customerToken, serviceID)
	intentID, err := uuid.Parse(intent.IntentID)
	require.NoError(t, err)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
		request.CreateOrderRequest{ServiceID: serviceID, IntentID: intentID, UTR: "UTR555666777"}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]string
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/orders/"+created["id"]+"/approve", nil, adminToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// The purchased service can still be removed from the catalog.
	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admin/services/"+serviceID.String(), nil, adminToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// Gone from the public listing.
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/services", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []response.ServiceResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
	for _, svc := range listed {
		require.NotEqual(t, serviceID.String(), svc.ID)
	}

	// The buyer's order and ownership survive the deletion.
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, customerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var mine []response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
	require.Len(t, mine, 1)
	require.Equal(t, "approved", mine[0].Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/services/owned", nil, customerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var owned []response.ServiceResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &owned))
	require.Len(t, owned, 1)
	require.Equal(t, serviceID.String(), owned[0].ID)
}

func (s *orderSuite) TestPendingQueueNewestFirst() {
	t := s.T()

	firstID := dbtest.CreateTestService(t, s.DB, "seo-audit", "standard", 149900)
	secondID := dbtest.CreateTestService(t, s.DB, "logo-pack", "standard", 99900)
	customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleCustomer))
	adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "mod@example.com", string(user.RoleAdmin))

	submit := func(serviceID uuid.UUID, utr string) string {
		intent := s.issueIntent(t, customerToken, serviceID)
		intentID, err := uuid.Parse(intent.IntentID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			request.CreateOrderRequest{ServiceID: serviceID, IntentID: intentID, UTR: utr}, customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		return created["id"]
	}

	older := submit(firstID, "UTR000000001")
	newer := submit(secondID, "UTR000000002")

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats response.StatsResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stats))
	require.Len(t, stats.PendingQueue, 2)
	require.Equal(t, newer, stats.PendingQueue[0].ID)
	require.Equal(t, older, stats.PendingQueue[1].ID)
}

func (s *orderSuite) TestClaimFree() {
	s.Run("first claim creates, repeat returns same order", func() {
		t := s.T()

		serviceID := dbtest.CreateTestService(t, s.DB, "starter-consult", "standard", 0)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "freebie@example.com", string(user.RoleCustomer))

		body := request.ClaimFreeRequest{ServiceID: serviceID}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, claimFreeURL, body, customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var first response.ClaimFreeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))
		require.True(t, first.Created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, claimFreeURL, body, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var second response.ClaimFreeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))
		require.False(t, second.Created)
		require.Equal(t, first.OrderID, second.OrderID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/services/owned", nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var owned []response.ServiceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &owned))
		require.Len(t, owned, 1)
		require.Equal(t, serviceID.String(), owned[0].ID)
	})

	s.Run("paid service cannot be claimed for free", func() {
		t := s.T()

		serviceID := dbtest.CreateTestService(t, s.DB, "seo-audit", "standard", 149900)
		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "freebie@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, claimFreeURL,
			request.ClaimFreeRequest{ServiceID: serviceID}, customerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}
