package convex_stripe

import (
	"context"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/convexapi"
	"sync"

	"go.uber.org/zap"
)

var (
	stripeConvexClientInstance contracts.StripeConvexClient
	onceStripeConvexClient     sync.Once
)

type stripeConvexClient struct {
	Caller contracts.ConvexCaller
	Log    *zap.Logger
}

func NewStripeConvexClient(caller contracts.ConvexCaller, logger *zap.Logger) contracts.StripeConvexClient {
	onceStripeConvexClient.Do(func() {
		stripeConvexClientInstance = &stripeConvexClient{
			Caller: caller,
			Log:    logger,
		}
	})
	return stripeConvexClientInstance
}

// CreateAppointmentCheckout returns the hosted checkout URL, which may be empty.
func (c *stripeConvexClient) CreateAppointmentCheckout(ctx context.Context, request *dto.AppointmentCheckoutArgs) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("stripeConvexClient.CreateAppointmentCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	checkoutURL, err := convexapi.Act(ctx, c.Caller, convexapi.Stripe.CreateAppointmentCheckout, *request)
	if err != nil {
		c.Log.Error("stripeConvexClient.CreateAppointmentCheckout error calling stripe.createAppointmentCheckout",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	c.Log.Info("stripeConvexClient.CreateAppointmentCheckout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckoutURLKey, checkoutURL),
	)
	return checkoutURL, nil
}
