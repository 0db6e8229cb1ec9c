package memberships

import (
	"context"
	"errors"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockMembershipConvexClient struct{ mock.Mock }

func (m *MockMembershipConvexClient) FindActiveByBusiness(ctx context.Context, businessID string) (dto.MembershipPlans, error) {
	args := m.Called(ctx, businessID)
	plans, _ := args.Get(0).(dto.MembershipPlans)
	return plans, args.Error(1)
}

func (m *MockMembershipConvexClient) CreateCheckout(ctx context.Context, request *dto.MembershipCheckoutArgs) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type MockLockerService struct{ mock.Mock }

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func TestStartCheckout(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_VISITOR_ID_KEY, "visitor-1")
	lockKey := "membership:lock:plan_1:visitor-1"

	setup := func() (*membershipUsecase, *MockMembershipConvexClient, *MockLockerService) {
		client := new(MockMembershipConvexClient)
		locker := new(MockLockerService)
		return &membershipUsecase{MembershipConvexClient: client, LockService: locker, Log: zap.NewNop()}, client, locker
	}

	t.Run("Creates Checkout", func(t *testing.T) {
		uc, client, locker := setup()
		locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "lock-1", nil)
		locker.On("Unlock", mock.Anything, lockKey, "lock-1").Return(nil)
		client.On("CreateCheckout", ctx, &dto.MembershipCheckoutArgs{MembershipPlanID: "plan_1", CustomerEmail: "jane@example.com"}).
			Return("https://checkout.stripe.com/c/sub_1", nil)

		result, err := uc.StartCheckout(ctx, &requests.MembershipCheckout{MembershipPlanID: "plan_1", CustomerEmail: "jane@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.stripe.com/c/sub_1", result.CheckoutURL)
		locker.AssertExpectations(t)
	})

	t.Run("Second Checkout In Flight", func(t *testing.T) {
		uc, client, locker := setup()
		locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(false, "", nil)

		_, err := uc.StartCheckout(ctx, &requests.MembershipCheckout{MembershipPlanID: "plan_1"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		client.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
	})

	t.Run("Backend Failure Releases Lock", func(t *testing.T) {
		uc, client, locker := setup()
		locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "lock-1", nil)
		locker.On("Unlock", mock.Anything, lockKey, "lock-1").Return(nil)
		client.On("CreateCheckout", ctx, mock.Anything).Return("", errors.New("plan inactive"))

		_, err := uc.StartCheckout(ctx, &requests.MembershipCheckout{MembershipPlanID: "plan_1"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientCheckoutFailed, customErr.ClientMessage)
		locker.AssertCalled(t, "Unlock", mock.Anything, lockKey, "lock-1")
	})

	t.Run("Anonymous Visitor", func(t *testing.T) {
		uc, client, locker := setup()
		locker.On("TryLock", mock.Anything, "membership:lock:plan_2:anonymous", 30*time.Second).Return(true, "lock-2", nil)
		locker.On("Unlock", mock.Anything, "membership:lock:plan_2:anonymous", "lock-2").Return(nil)
		client.On("CreateCheckout", mock.Anything, mock.Anything).Return("https://checkout.stripe.com/c/sub_2", nil)

		_, err := uc.StartCheckout(context.Background(), &requests.MembershipCheckout{MembershipPlanID: "plan_2"})

		require.NoError(t, err)
	})
}
