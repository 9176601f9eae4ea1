package notification

import (
	"encoding/json"
	"log/slog"

	"eventtix/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// WatermillPublisher adapts a watermill publisher to the fire-and-forget
// notification port. Delivery is best effort; subscribers are decoupled from
// the booking flow.
type WatermillPublisher struct {
	pub message.Publisher
}

func NewWatermillPublisher(pub message.Publisher) *WatermillPublisher {
	return &WatermillPublisher{pub: pub}
}

// NewGoChannelPubSub builds the in-process pub/sub used by the default wiring.
// A broker-backed publisher would replace it behind the same port.
func NewGoChannelPubSub(logger *slog.Logger) (*gochannel.GoChannel, func()) {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)
	cleanup := func() {
		if err := pubSub.Close(); err != nil {
			slog.Warn("failed to close pub/sub", "error", err.Error())
		}
	}
	return pubSub, cleanup
}

func (p *WatermillPublisher) Publish(eventName string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	if err := p.pub.Publish(eventName, msg); err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	return nil
}
