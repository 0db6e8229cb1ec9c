package convex_customers

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
	customerConvexClientInstance contracts.CustomerConvexClient
	onceCustomerConvexClient     sync.Once
)

type customerConvexClient struct {
	Caller contracts.ConvexCaller
	Log    *zap.Logger
}

func NewCustomerConvexClient(caller contracts.ConvexCaller, logger *zap.Logger) contracts.CustomerConvexClient {
	onceCustomerConvexClient.Do(func() {
		customerConvexClientInstance = &customerConvexClient{
			Caller: caller,
			Log:    logger,
		}
	})
	return customerConvexClientInstance
}

func (c *customerConvexClient) CreateCustomer(ctx context.Context, request *dto.CreateCustomerArgs) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("customerConvexClient.CreateCustomer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, request.BusinessID),
	)

	customerID, err := convexapi.Mutate(ctx, c.Caller, convexapi.Customers.CreateCustomer, *request)
	if err != nil {
		c.Log.Error("customerConvexClient.CreateCustomer error calling customer.createCustomer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	c.Log.Info("customerConvexClient.CreateCustomer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID),
	)
	return customerID, nil
}

func (c *customerConvexClient) DeleteCustomer(ctx context.Context, customerID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("customerConvexClient.DeleteCustomer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID),
	)

	_, err := convexapi.Mutate(ctx, c.Caller, convexapi.Customers.DeleteCustomer, dto.IDArgs{ID: customerID})
	if err != nil {
		c.Log.Error("customerConvexClient.DeleteCustomer error calling customer.deleteCustomer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("customerConvexClient.DeleteCustomer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID),
	)
	return nil
}
