package bookingevents

import (
	"context"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/app/drivers/tracing"
	"petgromee-web/internal/app/models"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type bookingEventPublisher struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

type noopPublisher struct {
	Log *zap.Logger
}

// NewBookingEventPublisher opens a channel on conn. A nil connection, or one
// that refuses a channel, gives a publisher that only logs.
func NewBookingEventPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) contracts.BookingEventPublisher {
	if conn == nil {
		return &noopPublisher{Log: logger}
	}
	channel, err := conn.Channel()
	if err != nil {
		logger.Warn("NewBookingEventPublisher failed to open channel, booking events are disabled", zap.Error(err))
		return &noopPublisher{Log: logger}
	}
	return newBookingEventPublisher(channel, queue, logger)
}

func newBookingEventPublisher(channel publisher, queue string, logger *zap.Logger) *bookingEventPublisher {
	return &bookingEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *bookingEventPublisher) Publish(ctx context.Context, event *models.BookingEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("bookingEventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("bookingEventPublisher.Publish error marshaling event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
		"event_type":       event.Type,
	}
	traceparent, tracestate := tracing.TraceContextStrings(ctx)
	if traceparent != "" {
		headers["traceparent"] = traceparent
	}
	if tracestate != "" {
		headers["tracestate"] = tracestate
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.CreatedAt,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("bookingEventPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrPublishMessage(err, p.Queue)
	}

	p.Log.Info("bookingEventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	return nil
}

func (p *noopPublisher) Publish(ctx context.Context, event *models.BookingEvent) error {
	p.Log.Debug("noopPublisher.Publish skipped, no broker configured",
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
