package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
)

type AdminHandler struct {
	moderation commands.ModerationCommands
	orders     queries.OrderQueries
	requests   queries.ProjectQueries
	stats      queries.StatsQueries
}

func NewAdminHandler(moderation commands.ModerationCommands, orders queries.OrderQueries, requests queries.ProjectQueries, stats queries.StatsQueries) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		orders:     orders,
		requests:   requests,
		stats:      stats,
	}
}

// @Summary List all orders
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	views, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}

// @Summary List all project requests
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ProjectRequestResponse
// @Router /admin/project-requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	views, err := h.requests.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list project requests", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProjectRequestList(views))
}

// @Summary Dashboard stats
// @Description Aggregate counters, revenue, and the merged pending moderation queue
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(view))
}

// @Summary Approve order
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{id}/approve [post]
func (h *AdminHandler) ApproveOrder(c *gin.Context) {
	h.moderate(c, h.moderation.ApproveOrder)
}

// @Summary Reject order
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{id}/reject [post]
func (h *AdminHandler) RejectOrder(c *gin.Context) {
	h.moderate(c, h.moderation.RejectOrder)
}

// @Summary Approve project request
// @Description Approve a submitted request and set the advance amount due
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Param request body reqdto.ApproveRequestRequest false "Advance override"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/project-requests/{id}/approve [post]
func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ApproveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.moderation.ApproveRequest(c.Request.Context(), id, actorID, req); err != nil {
		h.abortModeration(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject project request
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/project-requests/{id}/reject [post]
func (h *AdminHandler) RejectRequest(c *gin.Context) {
	h.moderate(c, h.moderation.RejectRequest)
}

// @Summary Approve advance payment
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/project-requests/{id}/advance/approve [post]
func (h *AdminHandler) ApproveAdvance(c *gin.Context) {
	h.moderate(c, h.moderation.ApproveAdvance)
}

// @Summary Reject advance payment
// @Description Reject the submitted advance UTR; the customer may resubmit
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/project-requests/{id}/advance/reject [post]
func (h *AdminHandler) RejectAdvance(c *gin.Context) {
	h.moderate(c, h.moderation.RejectAdvance)
}

// @Summary Request final payment
// @Description Move an in-progress request to the final payment phase
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Param request body reqdto.RequestFullPaymentRequest false "Amount override"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/project-requests/{id}/full/request [post]
func (h *AdminHandler) RequestFullPayment(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.RequestFullPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.moderation.RequestFullPayment(c.Request.Context(), id, actorID, req); err != nil {
		h.abortModeration(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Approve final payment
// @Description Approve the final payment and complete the request
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/project-requests/{id}/full/approve [post]
func (h *AdminHandler) ApproveFullPayment(c *gin.Context) {
	h.moderate(c, h.moderation.ApproveFullPayment)
}

// @Summary Reject final payment
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/project-requests/{id}/full/reject [post]
func (h *AdminHandler) RejectFullPayment(c *gin.Context) {
	h.moderate(c, h.moderation.RejectFullPayment)
}

// @Summary Attach deliverables
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Param request body reqdto.AttachDeliverablesRequest true "Deliverables"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /admin/project-requests/{id}/deliverables [put]
func (h *AdminHandler) AttachDeliverables(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.AttachDeliverablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.moderation.AttachDeliverables(c.Request.Context(), id, actorID, req); err != nil {
		h.abortModeration(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) moderate(c *gin.Context, action func(ctx context.Context, itemID, actorID uuid.UUID) error) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := action(c.Request.Context(), id, actorID); err != nil {
		h.abortModeration(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) abortModeration(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound), errors.Is(err, commands.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, commands.ErrModerationBusy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Moderation already in progress for this item", nil)
	case errors.Is(err, commands.ErrModerationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Item was already moderated", nil)
	case errors.Is(err, commands.ErrModerationInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid moderation input", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Moderation failed", nil)
	}
}
