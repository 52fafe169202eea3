// Package events carries booking lifecycle events over an in-process watermill
// pub/sub. Delivery is best-effort: nothing is persisted and a message published
// without subscribers is dropped.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

const TopicBookingCreated = "booking.created"

func NewPubSub(logger *zap.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, NewZapLoggerAdapter(logger))
}

type BookingEventPublisher struct {
	publisher message.Publisher
	logger    *zap.Logger
}

var _ interfaces.IBookingEventPublisher = (*BookingEventPublisher)(nil)

func NewBookingEventPublisher(publisher message.Publisher, logger *zap.Logger) *BookingEventPublisher {
	return &BookingEventPublisher{publisher: publisher, logger: logger}
}

func (p *BookingEventPublisher) PublishBookingCreated(ctx context.Context, b entities.Booking) error {
	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(context.WithoutCancel(ctx))
	if err := p.publisher.Publish(TopicBookingCreated, msg); err != nil {
		p.logger.Error("[booking][events] publish failed", zap.String("booking_id", b.ID), zap.Error(err))
		return err
	}
	p.logger.Debug("[booking][events] event published",
		zap.String("topic", TopicBookingCreated),
		zap.String("booking_id", b.ID),
		zap.String("message_id", msg.UUID),
	)
	return nil
}

// BookingHandler reacts to a booking event. Errors are logged; the message is
// acknowledged anyway.
type BookingHandler func(ctx context.Context, b entities.Booking) error

// SubscribeBookingCreated starts consuming booking.created until ctx ends. The
// returned channel is closed once the consumer goroutine has exited.
func SubscribeBookingCreated(ctx context.Context, sub message.Subscriber, handle BookingHandler, logger *zap.Logger) (<-chan struct{}, error) {
	messages, err := sub.Subscribe(ctx, TopicBookingCreated)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range messages {
			var b entities.Booking
			if err := json.Unmarshal(msg.Payload, &b); err != nil {
				logger.Error("[booking][events] invalid payload", zap.String("message_id", msg.UUID), zap.Error(err))
				msg.Ack()
				continue
			}
			if err := handle(msg.Context(), b); err != nil {
				logger.Warn("[booking][events] handler failed", zap.String("booking_id", b.ID), zap.Error(err))
			}
			msg.Ack()
		}
	}()
	return done, nil
}
