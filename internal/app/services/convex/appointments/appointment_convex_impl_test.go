package convex_appointments

import (
	"context"
	"errors"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/convexapi"
	"petgromee-web/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockConvexCaller struct {
	mock.Mock
}

func (m *MockConvexCaller) Call(ctx context.Context, kind convexapi.Kind, path string, args interface{}, out interface{}) error {
	called := m.Called(ctx, kind, path, args, out)
	return called.Error(0)
}

func newTestClient(caller *MockConvexCaller) *appointmentConvexClient {
	return &appointmentConvexClient{Caller: caller, Log: zap.NewNop()}
}

func TestAppointmentConvexClient_FindDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Details", func(t *testing.T) {
		caller := new(MockConvexCaller)
		caller.On("Call", mock.Anything, convexapi.KindQuery, "appointments:getAppointmentDetails", dto.IDArgs{ID: "apt_1"}, mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(4).(**dto.AppointmentDetails)
				*out = &dto.AppointmentDetails{Appointment: dto.Appointment{
					ID:        "apt_1",
					Title:     "Full Grooming for Buddy",
					StartTime: "10:00",
					EndTime:   "11:30",
					Status:    constvars.AppointmentStatusPending,
				}}
			}).
			Return(nil)

		details, err := newTestClient(caller).FindDetails(ctx, "apt_1")

		require.NoError(t, err)
		assert.Equal(t, "Full Grooming for Buddy", details.Title)
		caller.AssertExpectations(t)
	})

	t.Run("Missing Appointment Is Not Found", func(t *testing.T) {
		caller := new(MockConvexCaller)
		caller.On("Call", mock.Anything, convexapi.KindQuery, "appointments:getAppointmentDetails", dto.IDArgs{ID: "apt_missing"}, mock.Anything).Return(nil)

		details, err := newTestClient(caller).FindDetails(ctx, "apt_missing")

		assert.Nil(t, details)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Invalid Record Is Rejected", func(t *testing.T) {
		caller := new(MockConvexCaller)
		caller.On("Call", mock.Anything, convexapi.KindQuery, "appointments:getAppointmentDetails", dto.IDArgs{ID: "apt_2"}, mock.Anything).
			Run(func(args mock.Arguments) {
				out := args.Get(4).(**dto.AppointmentDetails)
				*out = &dto.AppointmentDetails{Appointment: dto.Appointment{ID: "apt_2", Status: "lost"}}
			}).
			Return(nil)

		_, err := newTestClient(caller).FindDetails(ctx, "apt_2")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})
}

func TestAppointmentConvexClient_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	caller := new(MockConvexCaller)
	request := &dto.CreateAppointmentArgs{BusinessID: "biz_1", PetID: "pet_1", StartTime: "10:00", EndTime: "11:30"}

	caller.On("Call", mock.Anything, convexapi.KindMutation, "appointments:createAppointment", *request, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(4).(*string) = "apt_9"
		}).
		Return(nil)
	caller.On("Call", mock.Anything, convexapi.KindMutation, "appointments:deleteAppointment", dto.IDArgs{ID: "apt_9"}, mock.Anything).
		Return(errors.New("already gone"))

	client := newTestClient(caller)

	appointmentID, err := client.CreateAppointment(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, "apt_9", appointmentID)

	assert.Error(t, client.DeleteAppointment(ctx, "apt_9"))
	caller.AssertExpectations(t)
}
