package convex_services

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
	serviceConvexClientInstance contracts.ServiceConvexClient
	onceServiceConvexClient     sync.Once
)

type serviceConvexClient struct {
	Caller contracts.ConvexCaller
	Log    *zap.Logger
}

func NewServiceConvexClient(caller contracts.ConvexCaller, logger *zap.Logger) contracts.ServiceConvexClient {
	onceServiceConvexClient.Do(func() {
		serviceConvexClientInstance = &serviceConvexClient{
			Caller: caller,
			Log:    logger,
		}
	})
	return serviceConvexClientInstance
}

func (c *serviceConvexClient) FindByBusiness(ctx context.Context, businessID string) (dto.Services, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceConvexClient.FindByBusiness called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, businessID),
	)

	services, err := convexapi.Query(ctx, c.Caller, convexapi.Services.GetByBusiness, dto.BusinessIDArgs{BusinessID: businessID})
	if err != nil {
		c.Log.Error("serviceConvexClient.FindByBusiness error calling services.getByBusiness",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("serviceConvexClient.FindByBusiness succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(services)),
	)
	return services, nil
}
