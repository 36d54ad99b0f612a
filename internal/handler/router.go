package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Catalog *api.CatalogHandler
	Order   *api.OrderHandler
	Project *api.ProjectHandler
	Content *api.ContentHandler
	Admin   *api.AdminHandler
	Events  *api.EventsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.List},
			{Method: http.MethodGet, Path: "/services/:slug", Handler: h.Catalog.GetBySlug},
			{Method: http.MethodGet, Path: "/articles", Handler: h.Content.ListArticles},
			{Method: http.MethodGet, Path: "/articles/:slug", Handler: h.Content.GetArticle},
			{Method: http.MethodGet, Path: "/faqs", Handler: h.Content.ListFAQs},
			{Method: http.MethodGet, Path: "/events", Handler: h.Events.Stream},
		})

		customer := apiGroup.Group("")
		customer.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customer, []route{
				{Method: http.MethodGet, Path: "/services/owned", Handler: h.Catalog.ListOwned},
				{Method: http.MethodPost, Path: "/payment-intents", Handler: h.Order.IssueIntent},
				{Method: http.MethodPost, Path: "/orders", Handler: h.Order.Create},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListMine},
				{Method: http.MethodPost, Path: "/orders/claim-free", Handler: h.Order.ClaimFree},
				{Method: http.MethodPost, Path: "/project-requests", Handler: h.Project.Create},
				{Method: http.MethodGet, Path: "/project-requests", Handler: h.Project.ListMine},
				{Method: http.MethodGet, Path: "/project-requests/:id", Handler: h.Project.GetMine},
				{Method: http.MethodPost, Path: "/project-requests/:id/advance-utr", Handler: h.Project.SubmitAdvanceUTR},
				{Method: http.MethodPost, Path: "/project-requests/:id/full-utr", Handler: h.Project.SubmitFullUTR},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/services", Handler: h.Catalog.Create},
				{Method: http.MethodPatch, Path: "/services/:id", Handler: h.Catalog.Update},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Catalog.Delete},
				{Method: http.MethodPut, Path: "/services/:id/offer", Handler: h.Catalog.SetOffer},
				{Method: http.MethodDelete, Path: "/services/:id/offer", Handler: h.Catalog.RemoveOffer},

				{Method: http.MethodGet, Path: "/orders", Handler: h.Admin.ListOrders},
				{Method: http.MethodPost, Path: "/orders/:id/approve", Handler: h.Admin.ApproveOrder},
				{Method: http.MethodPost, Path: "/orders/:id/reject", Handler: h.Admin.RejectOrder},

				{Method: http.MethodGet, Path: "/project-requests", Handler: h.Admin.ListRequests},
				{Method: http.MethodPost, Path: "/project-requests/:id/approve", Handler: h.Admin.ApproveRequest},
				{Method: http.MethodPost, Path: "/project-requests/:id/reject", Handler: h.Admin.RejectRequest},
				{Method: http.MethodPost, Path: "/project-requests/:id/advance/approve", Handler: h.Admin.ApproveAdvance},
				{Method: http.MethodPost, Path: "/project-requests/:id/advance/reject", Handler: h.Admin.RejectAdvance},
				{Method: http.MethodPost, Path: "/project-requests/:id/full/request", Handler: h.Admin.RequestFullPayment},
				{Method: http.MethodPost, Path: "/project-requests/:id/full/approve", Handler: h.Admin.ApproveFullPayment},
				{Method: http.MethodPost, Path: "/project-requests/:id/full/reject", Handler: h.Admin.RejectFullPayment},
				{Method: http.MethodPut, Path: "/project-requests/:id/deliverables", Handler: h.Admin.AttachDeliverables},

				{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Dashboard},

				{Method: http.MethodGet, Path: "/articles", Handler: h.Content.ListAllArticles},
				{Method: http.MethodPost, Path: "/articles", Handler: h.Content.CreateArticle},
				{Method: http.MethodPatch, Path: "/articles/:id", Handler: h.Content.UpdateArticle},
				{Method: http.MethodDelete, Path: "/articles/:id", Handler: h.Content.DeleteArticle},
				{Method: http.MethodPost, Path: "/faqs", Handler: h.Content.CreateFAQ},
				{Method: http.MethodPatch, Path: "/faqs/:id", Handler: h.Content.UpdateFAQ},
				{Method: http.MethodDelete, Path: "/faqs/:id", Handler: h.Content.DeleteFAQ},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
