package api

import (
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

type CatalogHandler struct {
	cmds    commands.CatalogCommands
	queries queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		cmds:    cmds,
		queries: q,
	}
}

// @Summary List services
// @Description List all published services with resolved prices
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) List(c *gin.Context) {
	views, err := h.queries.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list services", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceList(views))
}

// @Summary List owned services
// @Description List the services the current user owns through approved orders
// @Tags services
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services/owned [get]
func (h *CatalogHandler) ListOwned(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	views, err := h.queries.ListOwnedServices(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list owned services", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceList(views))
}

// @Summary Get service
// @Description Get a single service by slug
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{slug} [get]
func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	view, err := h.queries.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrServiceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load service", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service
// @Description Create a new service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /admin/services [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateService(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlugTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slug already in use", nil)
		case errors.Is(err, commands.ErrServiceInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create service", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update service
// @Description Partially update a service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/services/{id} [patch]
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateService(c.Request.Context(), id, req); err != nil {
		h.abortServiceWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete service
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/services/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteService(c.Request.Context(), id); err != nil {
		h.abortServiceWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set offer
// @Description Attach or replace the offer window on a service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Service ID"
// @Param request body reqdto.SetOfferRequest true "Offer"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/services/{id}/offer [put]
func (h *CatalogHandler) SetOffer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.SetOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetOffer(c.Request.Context(), id, req); err != nil {
		h.abortServiceWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove offer
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/services/{id}/offer [delete]
func (h *CatalogHandler) RemoveOffer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.RemoveOffer(c.Request.Context(), id); err != nil {
		h.abortServiceWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) abortServiceWrite(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrSlugTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slug already in use", nil)
	case errors.Is(err, commands.ErrServiceInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
