package bootstrap

import (
	"storefront-api/internal/cache"
	"storefront-api/internal/events"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		events.NewBus,
		NewCacheStore,
		cache.NewOrchestrator,
		NewServicesPoller,
	),
)

func NewCacheStore(cfg config.Config, clk clock.Clock) *cache.Store {
	return cache.NewStore(cfg.Cache.ListTTL, clk)
}

func NewServicesPoller(store *cache.Store, bus *events.Bus, cfg config.Config) *cache.Poller {
	return cache.NewPoller(store, bus, cache.KeyServices, cfg.Cache.ServicesPollInterval)
}
