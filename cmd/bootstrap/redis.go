package bootstrap

import (
	"context"

	"storefront-api/internal/infra/intents"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/usecase/commands"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewIntentStore,
			fx.As(new(commands.IntentStore)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := intents.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewIntentStore(client *redis.Client, cfg config.Config) *intents.RedisStore {
	return intents.NewRedisStore(client, cfg.Intent.TTL)
}
