package bootstrap

import (
	"context"
	"log/slog"

	"storefront-api/internal/infra/stream"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var StreamModule = fx.Module("stream",
	fx.Provide(
		fx.Annotate(
			NewModerationProducer,
			fx.As(new(commands.ModerationPublisher)),
		),
	),
)

func NewModerationProducer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *stream.Producer {
	producer := stream.NewProducer(cfg.Kafka, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
