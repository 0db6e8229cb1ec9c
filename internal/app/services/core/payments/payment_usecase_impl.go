package payments

import (
	"context"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

const paymentIntentStatusSucceeded = "succeeded"

type paymentUsecase struct {
	PaymentGateway contracts.PaymentGatewayService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentGateway contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentGateway: paymentGateway,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) PreparePage(ctx context.Context, request *requests.PaymentPage) (*responses.PaymentPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.PreparePage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.InternalConfig.Stripe.PublishableKey == "" {
		uc.Log.Warn("paymentUsecase.PreparePage publishable key missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrPaymentNotConfigured(nil)
	}

	return &responses.PaymentPage{
		ClientSecret:   request.ClientSecret,
		PublishableKey: uc.InternalConfig.Stripe.PublishableKey,
		Amount:         request.Amount,
		AmountLabel:    utils.FormatPrice(request.Amount),
	}, nil
}

// ConfirmPayment reports the payment intent status after the browser side
// confirmation. Anything other than succeeded is returned as not completed.
func (uc *paymentUsecase) ConfirmPayment(ctx context.Context, request *requests.ConfirmPayment) (*responses.PaymentConfirmation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentKey, request.PaymentIntentID),
	)

	if !uc.PaymentGateway.IsConfigured() {
		return nil, exceptions.ErrPaymentNotConfigured(nil)
	}

	intent, err := uc.PaymentGateway.GetPaymentIntent(ctx, request.PaymentIntentID)
	if err != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment error fetching payment intent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := &responses.PaymentConfirmation{
		PaymentIntentID: intent.ID,
		Status:          intent.Status,
		Succeeded:       intent.Status == paymentIntentStatusSucceeded,
		Message:         constvars.ConfirmPaymentPendingMessage,
	}
	if result.Succeeded {
		result.Message = constvars.ConfirmPaymentSuccessMessage
	}

	uc.Log.Info("paymentUsecase.ConfirmPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentStatusKey, intent.Status),
	)
	return result, nil
}
