package contracts

import (
	"context"
	"petgromee-web/internal/app/models"
)

type BookingEventPublisher interface {
	Publish(ctx context.Context, event *models.BookingEvent) error
}
