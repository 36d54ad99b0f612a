package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"
)

type ContentHandler struct {
	cmds    commands.ContentCommands
	queries queries.ContentQueries
}

func NewContentHandler(cmds commands.ContentCommands, q queries.ContentQueries) *ContentHandler {
	return &ContentHandler{
		cmds:    cmds,
		queries: q,
	}
}

// @Summary List articles
// @Description List published articles
// @Tags content
// @Produce json
// @Success 200 {array} resdto.ArticleResponse
// @Router /articles [get]
func (h *ContentHandler) ListArticles(c *gin.Context) {
	views, err := h.queries.ListArticles(c.Request.Context(), false)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list articles", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArticleList(views))
}

// @Summary List all articles
// @Description List articles including unpublished drafts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ArticleResponse
// @Router /admin/articles [get]
func (h *ContentHandler) ListAllArticles(c *gin.Context) {
	views, err := h.queries.ListArticles(c.Request.Context(), true)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list articles", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArticleList(views))
}

// @Summary Get article
// @Tags content
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} resdto.ArticleResponse
// @Failure 404 {object} httperr.Response
// @Router /articles/{slug} [get]
func (h *ContentHandler) GetArticle(c *gin.Context) {
	view, err := h.queries.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrArticleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Article not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load article", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArticleView(view))
}

// @Summary List FAQs
// @Tags content
// @Produce json
// @Success 200 {array} resdto.FAQResponse
// @Router /faqs [get]
func (h *ContentHandler) ListFAQs(c *gin.Context) {
	views, err := h.queries.ListFAQs(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list FAQs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFAQList(views))
}

// @Summary Create article
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateArticleRequest true "Article"
// @Success 201 {object} map[string]string
// @Router /admin/articles [post]
func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var req reqdto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateArticle(c.Request.Context(), req)
	if err != nil {
		h.abortContentWrite(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update article
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Article ID"
// @Param request body reqdto.UpdateArticleRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/articles/{id} [patch]
func (h *ContentHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateArticle(c.Request.Context(), id, req); err != nil {
		h.abortContentWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete article
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/articles/{id} [delete]
func (h *ContentHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteArticle(c.Request.Context(), id); err != nil {
		h.abortContentWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create FAQ
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateFAQRequest true "FAQ"
// @Success 201 {object} map[string]string
// @Router /admin/faqs [post]
func (h *ContentHandler) CreateFAQ(c *gin.Context) {
	var req reqdto.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		h.abortContentWrite(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update FAQ
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "FAQ ID"
// @Param request body reqdto.UpdateFAQRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/faqs/{id} [patch]
func (h *ContentHandler) UpdateFAQ(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateFAQ(c.Request.Context(), id, req); err != nil {
		h.abortContentWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete FAQ
// @Tags admin
// @Security BearerAuth
// @Param id path string true "FAQ ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/faqs/{id} [delete]
func (h *ContentHandler) DeleteFAQ(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteFAQ(c.Request.Context(), id); err != nil {
		h.abortContentWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) abortContentWrite(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrArticleNotFound), errors.Is(err, commands.ErrFAQNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Content not found", nil)
	case errors.Is(err, commands.ErrContentInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid content data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
