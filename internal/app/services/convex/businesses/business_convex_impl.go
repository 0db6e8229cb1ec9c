package convex_businesses

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
	businessConvexClientInstance contracts.BusinessConvexClient
	onceBusinessConvexClient     sync.Once
)

type businessConvexClient struct {
	Caller contracts.ConvexCaller
	Log    *zap.Logger
}

func NewBusinessConvexClient(caller contracts.ConvexCaller, logger *zap.Logger) contracts.BusinessConvexClient {
	onceBusinessConvexClient.Do(func() {
		businessConvexClientInstance = &businessConvexClient{
			Caller: caller,
			Log:    logger,
		}
	})
	return businessConvexClientInstance
}

// FindBySlug returns nil without error when no business uses the slug.
func (c *businessConvexClient) FindBySlug(ctx context.Context, slug string) (*dto.Business, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("businessConvexClient.FindBySlug called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessSlugKey, slug),
	)

	business, err := convexapi.Query(ctx, c.Caller, convexapi.Businesses.GetBySlug, dto.BusinessSlugArgs{Slug: slug})
	if err != nil {
		c.Log.Error("businessConvexClient.FindBySlug error calling businesses.getBySlug",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("businessConvexClient.FindBySlug succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, business != nil),
	)
	return business, nil
}
