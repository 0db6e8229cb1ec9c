package bookings

import (
	"context"
	"petgromee-web/internal/pkg/constvars"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type compensation struct {
	step string
	undo func(ctx context.Context) error
}

// saga runs remote create steps in order and remembers how to undo each one
// that succeeded.
type saga struct {
	compensations []compensation
	log           *zap.Logger
	requestID     string
}

func newSaga(log *zap.Logger, requestID string) *saga {
	return &saga{log: log, requestID: requestID}
}

// run executes one step inside its own span.
func (s *saga) run(ctx context.Context, step string, fn func(ctx context.Context) error) error {
	ctx, span := otel.Tracer(constvars.AppServiceName).Start(ctx, "booking."+step)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, step)
		return err
	}
	return nil
}

func (s *saga) onFailure(step string, undo func(ctx context.Context) error) {
	s.compensations = append(s.compensations, compensation{step: step, undo: undo})
}

// compensate undoes completed steps newest first. Failures are logged and
// never returned, the original error is what the visitor sees.
func (s *saga) compensate(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for i := len(s.compensations) - 1; i >= 0; i-- {
		c := s.compensations[i]
		if err := c.undo(ctx); err != nil {
			s.log.Error("bookingUsecase.SubmitBooking compensation failed",
				zap.String(constvars.LoggingRequestIDKey, s.requestID),
				zap.String(constvars.LoggingStepKey, c.step),
				zap.Error(err),
			)
			continue
		}
		s.log.Info("bookingUsecase.SubmitBooking compensation succeeded",
			zap.String(constvars.LoggingRequestIDKey, s.requestID),
			zap.String(constvars.LoggingStepKey, c.step),
		)
	}
	s.compensations = nil
}
