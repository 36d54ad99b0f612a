package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
)

type ProjectHandler struct {
	cmds    commands.ProjectCommands
	queries queries.ProjectQueries
}

func NewProjectHandler(cmds commands.ProjectCommands, q queries.ProjectQueries) *ProjectHandler {
	return &ProjectHandler{
		cmds:    cmds,
		queries: q,
	}
}

// @Summary Create project request
// @Description Submit a custom project request with its requirements document
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProjectRequest true "Project request"
// @Success 201 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /project-requests [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateRequest(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, commands.ErrServiceNotCustom):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service does not accept project requests", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create project request", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Submit advance payment UTR
// @Description Submit the advance payment reference for an approved request
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Param request body reqdto.SubmitUTRRequest true "UTR submission"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /project-requests/{id}/advance-utr [post]
func (h *ProjectHandler) SubmitAdvanceUTR(c *gin.Context) {
	h.submitUTR(c, h.cmds.SubmitAdvanceUTR)
}

// @Summary Submit final payment UTR
// @Description Submit the final payment reference for a request awaiting full payment
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Param id path string true "Request ID"
// @Param request body reqdto.SubmitUTRRequest true "UTR submission"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Router /project-requests/{id}/full-utr [post]
func (h *ProjectHandler) SubmitFullUTR(c *gin.Context) {
	h.submitUTR(c, h.cmds.SubmitFullUTR)
}

// @Summary Get my project request
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ProjectRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /project-requests/{id} [get]
func (h *ProjectHandler) GetMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetMine(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Project request not found", nil)
		case errors.Is(err, queries.ErrRequestAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load project request", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProjectRequestView(view))
}

// @Summary List my project requests
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ProjectRequestResponse
// @Router /project-requests [get]
func (h *ProjectHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	views, err := h.queries.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list project requests", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProjectRequestList(views))
}

func (h *ProjectHandler) submitUTR(c *gin.Context, submit func(ctx context.Context, requestID uuid.UUID, req reqdto.SubmitUTRRequest, userID uuid.UUID) error) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SubmitUTRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := submit(c.Request.Context(), id, req, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Project request not found", nil)
		case errors.Is(err, commands.ErrRequestNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrIntentInvalid), errors.Is(err, commands.ErrIntentMismatch):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment intent is invalid or already used", nil)
		case errors.Is(err, commands.ErrRequestTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request state does not allow this submission", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to submit payment reference", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
