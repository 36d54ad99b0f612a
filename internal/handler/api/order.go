package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
)

type OrderHandler struct {
	orderCmds  commands.OrderCommands
	intentCmds commands.IntentCommands
	queries    queries.OrderQueries
}

func NewOrderHandler(orderCmds commands.OrderCommands, intentCmds commands.IntentCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCmds:  orderCmds,
		intentCmds: intentCmds,
		queries:    q,
	}
}

// @Summary Issue payment intent
// @Description Issue a one-time token binding a payment attempt to its target
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.IssueIntentRequest true "Intent request"
// @Success 201 {object} resdto.IntentResponse
// @Failure 400 {object} httperr.Response
// @Router /payment-intents [post]
func (h *OrderHandler) IssueIntent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.IssueIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	intent, err := h.intentCmds.IssueIntent(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrIntentRefNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment target not found", nil)
		case errors.Is(err, commands.ErrIntentNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Payment target belongs to another user", nil)
		case errors.Is(err, commands.ErrIntentAlreadyPaid), errors.Is(err, commands.ErrIntentNoPaymentDue):
			httperr.AbortWithError(c, http.StatusConflict, err, "No payment is due for this target", nil)
		case errors.Is(err, commands.ErrIntentIssueFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue payment intent", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid intent request", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.IntentResponse{
		IntentID:    intent.ID.String(),
		PaymentType: intent.PaymentType.String(),
		RefID:       intent.RefID.String(),
		IssuedAt:    intent.IssuedAt.Unix(),
	})
}

// @Summary Create order
// @Description Submit a paid standard order with its UTR and payment intent
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	orderID, err := h.orderCmds.CreateOrder(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, commands.ErrServiceNotStandard):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service does not accept standard orders", nil)
		case errors.Is(err, commands.ErrIntentAlreadyPaid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Service is already purchased", nil)
		case errors.Is(err, commands.ErrIntentInvalid), errors.Is(err, commands.ErrIntentMismatch):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment intent is invalid or already used", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create order", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": orderID.String()})
}

// @Summary Claim free service
// @Description Claim a zero-price service without payment. Repeat claims return the existing order.
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ClaimFreeRequest true "Claim request"
// @Success 200 {object} resdto.ClaimFreeResponse
// @Success 201 {object} resdto.ClaimFreeResponse
// @Failure 422 {object} httperr.Response
// @Router /orders/claim-free [post]
func (h *OrderHandler) ClaimFree(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.ClaimFreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.orderCmds.ClaimFree(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, commands.ErrServiceNotFree):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service is not free", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to claim service", nil)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.ClaimFreeResponse{
		OrderID: result.OrderID.String(),
		Created: result.Created,
	})
}

// @Summary List my orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	views, err := h.queries.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}

func requireUserID(c *gin.Context) (userID uuid.UUID, ok bool) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
	}
	return userID, ok
}
