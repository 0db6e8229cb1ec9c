package convex_memberships

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
	membershipConvexClientInstance contracts.MembershipConvexClient
	onceMembershipConvexClient     sync.Once
)

type membershipConvexClient struct {
	Caller contracts.ConvexCaller
	Log    *zap.Logger
}

func NewMembershipConvexClient(caller contracts.ConvexCaller, logger *zap.Logger) contracts.MembershipConvexClient {
	onceMembershipConvexClient.Do(func() {
		membershipConvexClientInstance = &membershipConvexClient{
			Caller: caller,
			Log:    logger,
		}
	})
	return membershipConvexClientInstance
}

func (c *membershipConvexClient) FindActiveByBusiness(ctx context.Context, businessID string) (dto.MembershipPlans, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("membershipConvexClient.FindActiveByBusiness called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, businessID),
	)

	plans, err := convexapi.Query(ctx, c.Caller, convexapi.Memberships.GetActiveBusinessMemberships, dto.BusinessIDArgs{BusinessID: businessID})
	if err != nil {
		c.Log.Error("membershipConvexClient.FindActiveByBusiness error calling memberships.getActiveBusinessMemberships",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("membershipConvexClient.FindActiveByBusiness succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(plans)),
	)
	return plans, nil
}

func (c *membershipConvexClient) CreateCheckout(ctx context.Context, request *dto.MembershipCheckoutArgs) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("membershipConvexClient.CreateCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMembershipIDKey, request.MembershipPlanID),
	)

	checkoutURL, err := convexapi.Mutate(ctx, c.Caller, convexapi.Memberships.CreateMembershipCheckout, *request)
	if err != nil {
		c.Log.Error("membershipConvexClient.CreateCheckout error calling memberships.createMembershipCheckout",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	c.Log.Info("membershipConvexClient.CreateCheckout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckoutURLKey, checkoutURL),
	)
	return checkoutURL, nil
}
