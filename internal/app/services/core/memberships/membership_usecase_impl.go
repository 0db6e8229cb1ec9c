package memberships

import (
	"context"
	"fmt"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const anonymousVisitor = "anonymous"

type membershipUsecase struct {
	MembershipConvexClient contracts.MembershipConvexClient
	LockService            contracts.LockerService
	Log                    *zap.Logger
}

var (
	membershipUsecaseInstance contracts.MembershipUsecase
	onceMembershipUsecase     sync.Once
)

func NewMembershipUsecase(
	membershipConvexClient contracts.MembershipConvexClient,
	lockService contracts.LockerService,
	logger *zap.Logger,
) contracts.MembershipUsecase {
	onceMembershipUsecase.Do(func() {
		membershipUsecaseInstance = &membershipUsecase{
			MembershipConvexClient: membershipConvexClient,
			LockService:            lockService,
			Log:                    logger,
		}
	})
	return membershipUsecaseInstance
}

// StartCheckout holds a lock per plan and visitor while the checkout session
// is created, so a double click cannot open two sessions.
func (uc *membershipUsecase) StartCheckout(ctx context.Context, request *requests.MembershipCheckout) (*responses.CheckoutResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	planID := request.MembershipPlanID
	uc.Log.Info("membershipUsecase.StartCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMembershipIDKey, planID),
	)

	visitorID := utils.GetVisitorID(ctx)
	if visitorID == "" {
		visitorID = anonymousVisitor
	}
	lockKey := fmt.Sprintf(constvars.RedisKeyMembershipLockFormat, planID, visitorID)

	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, constvars.LockMembershipCheckoutTTL*time.Second)
	if err != nil {
		uc.Log.Error("membershipUsecase.StartCheckout error acquiring lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("membershipUsecase.StartCheckout checkout already in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMembershipIDKey, planID),
		)
		return nil, exceptions.ErrMembershipCheckoutInProgress(nil, planID)
	}
	defer func() {
		if err := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Error("membershipUsecase.StartCheckout error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	checkoutURL, err := uc.MembershipConvexClient.CreateCheckout(ctx, &dto.MembershipCheckoutArgs{
		MembershipPlanID: planID,
		CustomerEmail:    request.CustomerEmail,
		CustomerName:     request.CustomerName,
	})
	if err != nil {
		uc.Log.Error("membershipUsecase.StartCheckout error creating checkout",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMembershipCheckoutFailed(err, planID)
	}

	uc.Log.Info("membershipUsecase.StartCheckout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckoutURLKey, checkoutURL),
	)
	return &responses.CheckoutResult{MembershipPlanID: planID, CheckoutURL: checkoutURL}, nil
}
