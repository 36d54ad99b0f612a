package components

import (
	"storefront-api/internal/handler"
	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewOrderHandler,
		api.NewProjectHandler,
		api.NewContentHandler,
		api.NewAdminHandler,
		api.NewEventsHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	order *api.OrderHandler,
	project *api.ProjectHandler,
	content *api.ContentHandler,
	admin *api.AdminHandler,
	events *api.EventsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Catalog: catalog,
		Order:   order,
		Project: project,
		Content: content,
		Admin:   admin,
		Events:  events,
	}
}
