package bootstrap

import (
	"context"
	"log/slog"

	"eventtix/internal/infra/notification"
	"eventtix/internal/usecase/commands"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/fx"
)

var PubSubModule = fx.Module("pubsub",
	fx.Provide(
		NewPubSub,
		func(ps *gochannel.GoChannel) message.Publisher {
			return ps
		},
		fx.Annotate(
			notification.NewWatermillPublisher,
			fx.As(new(commands.NotificationPublisher)),
		),
	),
)

func NewPubSub(lc fx.Lifecycle, logger *slog.Logger) *gochannel.GoChannel {
	pubSub, cleanup := notification.NewGoChannelPubSub(logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pubSub
}
