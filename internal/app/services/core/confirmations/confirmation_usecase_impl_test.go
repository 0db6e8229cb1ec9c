package confirmations

import (
	"context"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentConvexClient struct{ mock.Mock }

func (m *MockAppointmentConvexClient) CreateAppointment(ctx context.Context, request *dto.CreateAppointmentArgs) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentConvexClient) DeleteAppointment(ctx context.Context, appointmentID string) error {
	return m.Called(ctx, appointmentID).Error(0)
}

func (m *MockAppointmentConvexClient) FindDetails(ctx context.Context, appointmentID string) (*dto.AppointmentDetails, error) {
	args := m.Called(ctx, appointmentID)
	details, _ := args.Get(0).(*dto.AppointmentDetails)
	return details, args.Error(1)
}

func testDetails() *dto.AppointmentDetails {
	weight := 65.5
	return &dto.AppointmentDetails{
		Appointment: dto.Appointment{
			ID:            "k17abcdefgh123",
			Title:         "Full Grooming for Buddy",
			ScheduledDate: 86400000,
			StartTime:     "10:00",
			EndTime:       "11:30",
			Status:        "pending",
		},
		Customer: &dto.Customer{ID: "cus_1", Name: "Jane Doe", Email: "jane@example.com", Phone: "5551234567"},
		Pet:      &dto.Pet{ID: "pet_1", Name: "Buddy", Breed: "Golden Retriever", Weight: &weight},
		Services: []dto.Service{{ID: "svc_1", Name: "Full Grooming", Price: 8500}, {ID: "svc_2", Name: "Nail Trim", Price: 1599}},
	}
}

func setup(secret string) (*confirmationUsecase, *MockAppointmentConvexClient) {
	client := new(MockAppointmentConvexClient)
	return &confirmationUsecase{
		AppointmentConvexClient: client,
		InternalConfig:          &config.InternalConfig{App: config.App{ConfirmationSecret: secret}},
		Location:                time.UTC,
		Log:                     zap.NewNop(),
	}, client
}

func TestFindConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("Builds Confirmation", func(t *testing.T) {
		uc, client := setup("")
		client.On("FindDetails", ctx, "k17abcdefgh123").Return(testDetails(), nil)

		result, err := uc.FindConfirmation(ctx, &requests.Confirmation{AppointmentID: "k17abcdefgh123"})

		require.NoError(t, err)
		assert.Equal(t, "K17ABCDE", result.ConfirmationNumber)
		assert.Equal(t, "Friday, January 2, 1970", result.DateLabel)
		assert.Equal(t, "10:00 AM - 11:30 AM", result.TimeLabel)
		assert.Equal(t, "$100.99", result.TotalLabel)
		assert.Equal(t, "65.5 lbs", result.PetWeight)
		require.Len(t, result.Services, 2)
		assert.Equal(t, "$85.00", result.Services[0].PriceLabel)
		assert.Equal(t, "/confirmation/k17abcdefgh123/calendar.ics", result.CalendarURL)
	})

	t.Run("Not Found", func(t *testing.T) {
		uc, client := setup("")
		client.On("FindDetails", ctx, "missing").Return(nil, exceptions.ErrAppointmentNotFound(nil, "missing"))

		_, err := uc.FindConfirmation(ctx, &requests.Confirmation{AppointmentID: "missing"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Signed State Required When Secret Set", func(t *testing.T) {
		uc, client := setup("top-secret")

		_, err := uc.FindConfirmation(ctx, &requests.Confirmation{AppointmentID: "k17abcdefgh123"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		client.AssertNotCalled(t, "FindDetails", mock.Anything, mock.Anything)
	})

	t.Run("State For Another Appointment Is Rejected", func(t *testing.T) {
		uc, client := setup("top-secret")
		state, err := utils.GenerateConfirmationStateJWT("other", "top-secret", 1)
		require.NoError(t, err)

		_, err = uc.FindConfirmation(ctx, &requests.Confirmation{AppointmentID: "k17abcdefgh123", State: state})

		assert.Error(t, err)
		client.AssertNotCalled(t, "FindDetails", mock.Anything, mock.Anything)
	})

	t.Run("Valid State Keeps Calendar Link Signed", func(t *testing.T) {
		uc, client := setup("top-secret")
		state, err := utils.GenerateConfirmationStateJWT("k17abcdefgh123", "top-secret", 1)
		require.NoError(t, err)
		client.On("FindDetails", ctx, "k17abcdefgh123").Return(testDetails(), nil)

		result, err := uc.FindConfirmation(ctx, &requests.Confirmation{AppointmentID: "k17abcdefgh123", State: state})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.CalendarURL, "/confirmation/k17abcdefgh123/calendar.ics?state="))
	})
}

func TestBuildCalendarFile(t *testing.T) {
	ctx := context.Background()
	uc, client := setup("")
	client.On("FindDetails", ctx, "k17abcdefgh123").Return(testDetails(), nil)

	file, err := uc.BuildCalendarFile(ctx, &requests.Confirmation{AppointmentID: "k17abcdefgh123"})

	require.NoError(t, err)
	assert.Equal(t, "appointment.ics", file.FileName)
	assert.Equal(t, strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"SUMMARY:Full Grooming for Buddy",
		"DTSTART:19700102T100000Z",
		"DTEND:19700102T113000Z",
		"DESCRIPTION:Pet grooming appointment",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\n"), file.Content)
}
