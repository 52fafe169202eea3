package interfaces

import (
	"context"
	"travel_backoffice/internal/domain/entities"
)

// IBookingEventPublisher announces booking lifecycle events to asynchronous
// subscribers (confirmation email).
type IBookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, b entities.Booking) error
}
