package payment_gateway

import (
	"context"
	"errors"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/app/models"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/exceptions"
	"strings"
	"sync"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

type paymentIntentGetter interface {
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeService struct {
	PaymentIntents paymentIntentGetter
	Log            *zap.Logger
}

var (
	stripeServiceInstance contracts.PaymentGatewayService
	onceStripeService     sync.Once
)

// NewStripeService returns a service whose IsConfigured is false when
// secretKey is empty.
func NewStripeService(secretKey string, logger *zap.Logger) contracts.PaymentGatewayService {
	onceStripeService.Do(func() {
		var intents paymentIntentGetter
		if strings.TrimSpace(secretKey) != "" {
			api := &client.API{}
			api.Init(secretKey, nil)
			intents = api.PaymentIntents
		}
		stripeServiceInstance = newStripeService(intents, logger)
	})
	return stripeServiceInstance
}

func newStripeService(intents paymentIntentGetter, logger *zap.Logger) *stripeService {
	return &stripeService{
		PaymentIntents: intents,
		Log:            logger,
	}
}

func (s *stripeService) IsConfigured() bool {
	return s.PaymentIntents != nil
}

func (s *stripeService) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*models.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.GetPaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentKey, paymentIntentID),
	)

	if !s.IsConfigured() {
		return nil, exceptions.ErrPaymentNotConfigured(nil)
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := s.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			s.Log.Warn("stripeService.GetPaymentIntent provider error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorTypeKey, string(stripeErr.Type)),
				zap.Error(err),
			)
			return nil, exceptions.ErrPaymentProvider(err, stripeErr.Msg)
		}
		s.Log.Error("stripeService.GetPaymentIntent error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentUnexpected(err)
	}

	result := &models.PaymentIntent{
		ID:       intent.ID,
		Status:   string(intent.Status),
		Amount:   intent.Amount,
		Currency: string(intent.Currency),
	}

	s.Log.Info("stripeService.GetPaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentStatusKey, result.Status),
	)
	return result, nil
}
