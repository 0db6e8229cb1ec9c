package bookings

import (
	"context"
	"errors"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/models"
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

type MockBusinessConvexClient struct{ mock.Mock }

func (m *MockBusinessConvexClient) FindBySlug(ctx context.Context, slug string) (*dto.Business, error) {
	args := m.Called(ctx, slug)
	business, _ := args.Get(0).(*dto.Business)
	return business, args.Error(1)
}

type MockServiceConvexClient struct{ mock.Mock }

func (m *MockServiceConvexClient) FindByBusiness(ctx context.Context, businessID string) (dto.Services, error) {
	args := m.Called(ctx, businessID)
	services, _ := args.Get(0).(dto.Services)
	return services, args.Error(1)
}

type MockCustomerConvexClient struct{ mock.Mock }

func (m *MockCustomerConvexClient) CreateCustomer(ctx context.Context, request *dto.CreateCustomerArgs) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerConvexClient) DeleteCustomer(ctx context.Context, customerID string) error {
	return m.Called(ctx, customerID).Error(0)
}

type MockPetConvexClient struct{ mock.Mock }

func (m *MockPetConvexClient) CreatePet(ctx context.Context, request *dto.CreatePetArgs) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockPetConvexClient) DeletePet(ctx context.Context, petID string) error {
	return m.Called(ctx, petID).Error(0)
}

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

type MockStripeConvexClient struct{ mock.Mock }

func (m *MockStripeConvexClient) CreateAppointmentCheckout(ctx context.Context, request *dto.AppointmentCheckoutArgs) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type MockRedisRepository struct{ mock.Mock }

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	args := m.Called(ctx, key, exp)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockLockerService struct{ mock.Mock }

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type MockBookingEventPublisher struct{ mock.Mock }

func (m *MockBookingEventPublisher) Publish(ctx context.Context, event *models.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

type bookingMocks struct {
	businesses   *MockBusinessConvexClient
	services     *MockServiceConvexClient
	customers    *MockCustomerConvexClient
	pets         *MockPetConvexClient
	appointments *MockAppointmentConvexClient
	stripe       *MockStripeConvexClient
	redis        *MockRedisRepository
	locker       *MockLockerService
	publisher    *MockBookingEventPublisher
	calls        []string
}

const testToken = "5f0c6a8e-7b7e-4c55-9a43-1f1d1f2b3c4d"

var fixedNow = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

func setupBooking(secret string) (*bookingUsecase, *bookingMocks) {
	m := &bookingMocks{
		businesses:   new(MockBusinessConvexClient),
		services:     new(MockServiceConvexClient),
		customers:    new(MockCustomerConvexClient),
		pets:         new(MockPetConvexClient),
		appointments: new(MockAppointmentConvexClient),
		stripe:       new(MockStripeConvexClient),
		redis:        new(MockRedisRepository),
		locker:       new(MockLockerService),
		publisher:    new(MockBookingEventPublisher),
	}
	uc := &bookingUsecase{
		BusinessConvexClient:    m.businesses,
		ServiceConvexClient:     m.services,
		CustomerConvexClient:    m.customers,
		PetConvexClient:         m.pets,
		AppointmentConvexClient: m.appointments,
		StripeConvexClient:      m.stripe,
		RedisRepository:         m.redis,
		LockService:             m.locker,
		EventPublisher:          m.publisher,
		InternalConfig: &config.InternalConfig{App: config.App{
			BaseUrl:                        "https://shop.example.com",
			BusinessSlug:                   "test-grooming-shop",
			SubmissionTokenTTLInMinutes:    30,
			ConfirmationSecret:             secret,
			ConfirmationStateExpiryInHours: 72,
		}},
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
		Log:      zap.NewNop(),
	}

	m.businesses.On("FindBySlug", mock.Anything, "test-grooming-shop").
		Return(&dto.Business{ID: "biz_1", Name: "Test", Slug: "test-grooming-shop"}, nil)
	m.services.On("FindByBusiness", mock.Anything, "biz_1").
		Return(dto.Services{{ID: "svc_1", Name: "Full Grooming", Price: 8500, Duration: 90, Category: "grooming"}}, nil)
	return uc, m
}

func (m *bookingMocks) record(name string) func(mock.Arguments) {
	return func(mock.Arguments) { m.calls = append(m.calls, name) }
}

func (m *bookingMocks) expectLock() {
	m.redis.On("Get", mock.Anything, "booking:submission:"+testToken).Return("", nil)
	m.locker.On("TryLock", mock.Anything, "booking:lock:"+testToken, 60*time.Second).Return(true, "lock-1", nil)
	m.locker.On("Unlock", mock.Anything, "booking:lock:"+testToken, "lock-1").Return(nil)
}

func validForm() *requests.BookingForm {
	return &requests.BookingForm{
		SubmissionToken: testToken,
		ServiceID:       "svc_1",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "5551234567",
		PetName:         "Buddy",
		PetSpecies:      "dog",
		PetBreed:        "Poodle",
		PetAge:          "3",
		PetGender:       "male",
		AppointmentDate: "2026-03-10",
		AppointmentTime: "10:00",
	}
}

func TestSubmitBooking_HappyPath(t *testing.T) {
	uc, m := setupBooking("")
	m.expectLock()

	m.customers.On("CreateCustomer", mock.Anything, &dto.CreateCustomerArgs{
		BusinessID: "biz_1", Name: "Jane Doe", Email: "jane@example.com", Phone: "5551234567",
	}).Run(m.record("customer")).Return("cus_1", nil)
	m.pets.On("CreatePet", mock.Anything, mock.MatchedBy(func(args *dto.CreatePetArgs) bool {
		return args.CustomerID == "cus_1" && args.Name == "Buddy" && *args.Age == 3 && args.Weight == nil &&
			args.CreatedAt == fixedNow.UnixMilli()
	})).Run(m.record("pet")).Return("pet_1", nil)
	m.appointments.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(args *dto.CreateAppointmentArgs) bool {
		return args.PetID == "pet_1" && args.CustomerID == "cus_1" && !*args.AutoConfirm &&
			args.Title == "Full Grooming for Buddy" && args.StartTime == "10:00" && args.EndTime == "11:30" &&
			args.ScheduledDate == time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC).UnixMilli() &&
			assert.ObjectsAreEqual([]string{"svc_1"}, args.ServiceIDs)
	})).Run(m.record("appointment")).Return("appt_1", nil)
	m.stripe.On("CreateAppointmentCheckout", mock.Anything, &dto.AppointmentCheckoutArgs{
		AppointmentID: "appt_1",
		CustomerEmail: "jane@example.com",
		CustomerName:  "Jane Doe",
		SuccessURL:    "https://shop.example.com/confirmation/appt_1",
		CancelURL:     "https://shop.example.com/book?serviceId=svc_1",
	}).Run(m.record("checkout")).Return("https://checkout.stripe.com/c/pay_1", nil)
	m.redis.On("Set", mock.Anything, "booking:submission:"+testToken, mock.AnythingOfType("models.BookingSubmission"), 30*time.Minute).Return(nil)
	m.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *models.BookingEvent) bool {
		return event.AppointmentID == "appt_1" && event.EndTime == "11:30" && event.Type == constvars.EventBookingCheckoutStarted
	})).Return(nil)

	result, err := uc.SubmitBooking(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay_1", result.CheckoutURL)
	assert.Equal(t, "appt_1", result.AppointmentID)
	assert.False(t, result.Replayed)
	assert.Equal(t, []string{"customer", "pet", "appointment", "checkout"}, m.calls)
	m.locker.AssertCalled(t, "Unlock", mock.Anything, "booking:lock:"+testToken, "lock-1")
	m.customers.AssertNotCalled(t, "DeleteCustomer", mock.Anything, mock.Anything)
	m.publisher.AssertExpectations(t)
}

func TestSubmitBooking_AppointmentFailure(t *testing.T) {
	uc, m := setupBooking("")
	m.expectLock()

	m.customers.On("CreateCustomer", mock.Anything, mock.Anything).Return("cus_1", nil)
	m.pets.On("CreatePet", mock.Anything, mock.Anything).Return("pet_1", nil)
	m.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return("", errors.New("slot taken"))
	m.pets.On("DeletePet", mock.Anything, "pet_1").Run(m.record("deletePet")).Return(nil)
	m.customers.On("DeleteCustomer", mock.Anything, "cus_1").Run(m.record("deleteCustomer")).Return(nil)

	result, err := uc.SubmitBooking(context.Background(), validForm())

	assert.Nil(t, result)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientBookingFailed, customErr.ClientMessage)
	assert.Equal(t, []string{"deletePet", "deleteCustomer"}, m.calls)
	m.stripe.AssertNotCalled(t, "CreateAppointmentCheckout", mock.Anything, mock.Anything)
	m.appointments.AssertNotCalled(t, "DeleteAppointment", mock.Anything, mock.Anything)
	m.locker.AssertCalled(t, "Unlock", mock.Anything, "booking:lock:"+testToken, "lock-1")
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubmitBooking_CheckoutFailureCompensatesEverything(t *testing.T) {
	uc, m := setupBooking("")
	m.expectLock()

	m.customers.On("CreateCustomer", mock.Anything, mock.Anything).Return("cus_1", nil)
	m.pets.On("CreatePet", mock.Anything, mock.Anything).Return("pet_1", nil)
	m.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return("appt_1", nil)
	m.stripe.On("CreateAppointmentCheckout", mock.Anything, mock.Anything).Return("", errors.New("stripe down"))
	m.appointments.On("DeleteAppointment", mock.Anything, "appt_1").Run(m.record("deleteAppointment")).Return(nil)
	m.pets.On("DeletePet", mock.Anything, "pet_1").Run(m.record("deletePet")).Return(errors.New("already gone"))
	m.customers.On("DeleteCustomer", mock.Anything, "cus_1").Run(m.record("deleteCustomer")).Return(nil)

	_, err := uc.SubmitBooking(context.Background(), validForm())

	require.Error(t, err)
	assert.Equal(t, []string{"deleteAppointment", "deletePet", "deleteCustomer"}, m.calls)
}

func TestSubmitBooking_Replay(t *testing.T) {
	uc, m := setupBooking("")
	m.redis.On("Get", mock.Anything, "booking:submission:"+testToken).
		Return(`{"submissionToken":"`+testToken+`","appointmentId":"appt_1","checkoutUrl":"https://checkout.stripe.com/c/pay_1"}`, nil)

	result, err := uc.SubmitBooking(context.Background(), validForm())

	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, "https://checkout.stripe.com/c/pay_1", result.CheckoutURL)
	m.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	m.customers.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestSubmitBooking_InFlight(t *testing.T) {
	uc, m := setupBooking("")
	m.redis.On("Get", mock.Anything, "booking:submission:"+testToken).Return("", nil)
	m.locker.On("TryLock", mock.Anything, "booking:lock:"+testToken, 60*time.Second).Return(false, "", nil)

	_, err := uc.SubmitBooking(context.Background(), validForm())

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	m.customers.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
	m.locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBooking_UnknownService(t *testing.T) {
	uc, m := setupBooking("")
	m.expectLock()
	form := validForm()
	form.ServiceID = "svc_missing"

	_, err := uc.SubmitBooking(context.Background(), form)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientBusinessOrServiceNotFound, customErr.ClientMessage)
	m.customers.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestSubmitBooking_EmptyCheckoutURL(t *testing.T) {
	uc, m := setupBooking("")
	m.expectLock()
	m.customers.On("CreateCustomer", mock.Anything, mock.Anything).Return("cus_1", nil)
	m.pets.On("CreatePet", mock.Anything, mock.Anything).Return("pet_1", nil)
	m.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return("appt_1", nil)
	m.stripe.On("CreateAppointmentCheckout", mock.Anything, mock.Anything).Return("", nil)
	m.redis.On("Set", mock.Anything, "booking:submission:"+testToken, mock.MatchedBy(func(submission models.BookingSubmission) bool {
		return submission.AppointmentID == "appt_1" && submission.CustomerID == "cus_1" &&
			submission.PetID == "pet_1" && submission.EndTime == "11:30" && submission.CheckoutURL == ""
	}), 30*time.Minute).Return(nil)

	result, err := uc.SubmitBooking(context.Background(), validForm())

	require.NoError(t, err)
	assert.Empty(t, result.CheckoutURL)
	m.redis.AssertExpectations(t)
	m.appointments.AssertNotCalled(t, "DeleteAppointment", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubmitBooking_ResumesStalledCheckout(t *testing.T) {
	uc, m := setupBooking("")
	m.redis.On("Get", mock.Anything, "booking:submission:"+testToken).
		Return(`{"submissionToken":"`+testToken+`","customerId":"cus_1","petId":"pet_1","appointmentId":"appt_1","endTime":"11:30","checkoutUrl":""}`, nil)
	m.locker.On("TryLock", mock.Anything, "booking:lock:"+testToken, 60*time.Second).Return(true, "lock-1", nil)
	m.locker.On("Unlock", mock.Anything, "booking:lock:"+testToken, "lock-1").Return(nil)
	m.stripe.On("CreateAppointmentCheckout", mock.Anything, mock.MatchedBy(func(args *dto.AppointmentCheckoutArgs) bool {
		return args.AppointmentID == "appt_1" && args.SuccessURL == "https://shop.example.com/confirmation/appt_1"
	})).Return("https://checkout.stripe.com/c/pay_2", nil)
	m.redis.On("Set", mock.Anything, "booking:submission:"+testToken, mock.MatchedBy(func(submission models.BookingSubmission) bool {
		return submission.AppointmentID == "appt_1" && submission.CheckoutURL == "https://checkout.stripe.com/c/pay_2"
	}), 30*time.Minute).Return(nil)
	m.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *models.BookingEvent) bool {
		return event.AppointmentID == "appt_1" && event.CustomerID == "cus_1" && event.PetID == "pet_1"
	})).Return(nil)

	result, err := uc.SubmitBooking(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, "appt_1", result.AppointmentID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay_2", result.CheckoutURL)
	m.customers.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
	m.pets.AssertNotCalled(t, "CreatePet", mock.Anything, mock.Anything)
	m.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	m.locker.AssertCalled(t, "Unlock", mock.Anything, "booking:lock:"+testToken, "lock-1")
	m.redis.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func TestSubmitBooking_ResumeFailureKeepsAppointment(t *testing.T) {
	uc, m := setupBooking("")
	m.redis.On("Get", mock.Anything, "booking:submission:"+testToken).
		Return(`{"submissionToken":"`+testToken+`","appointmentId":"appt_1","checkoutUrl":""}`, nil)
	m.locker.On("TryLock", mock.Anything, "booking:lock:"+testToken, 60*time.Second).Return(true, "lock-1", nil)
	m.locker.On("Unlock", mock.Anything, "booking:lock:"+testToken, "lock-1").Return(nil)
	m.stripe.On("CreateAppointmentCheckout", mock.Anything, mock.Anything).Return("", errors.New("stripe down"))

	_, err := uc.SubmitBooking(context.Background(), validForm())

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientBookingFailed, customErr.ClientMessage)
	m.appointments.AssertNotCalled(t, "DeleteAppointment", mock.Anything, mock.Anything)
	m.redis.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBooking_SignedSuccessURL(t *testing.T) {
	uc, m := setupBooking("top-secret")
	m.expectLock()
	m.customers.On("CreateCustomer", mock.Anything, mock.Anything).Return("cus_1", nil)
	m.pets.On("CreatePet", mock.Anything, mock.Anything).Return("pet_1", nil)
	m.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return("appt_1", nil)

	var successURL string
	m.stripe.On("CreateAppointmentCheckout", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { successURL = args.Get(1).(*dto.AppointmentCheckoutArgs).SuccessURL }).
		Return("https://checkout.stripe.com/c/pay_1", nil)
	m.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := uc.SubmitBooking(context.Background(), validForm())
	require.NoError(t, err)

	prefix := "https://shop.example.com/confirmation/appt_1?state="
	require.True(t, strings.HasPrefix(successURL, prefix))
	appointmentID, err := utils.ParseConfirmationStateJWT(strings.TrimPrefix(successURL, prefix), "top-secret")
	require.NoError(t, err)
	assert.Equal(t, "appt_1", appointmentID)
}

func TestPrepareForm(t *testing.T) {
	t.Run("Preselects Known Service", func(t *testing.T) {
		uc, _ := setupBooking("")

		page, err := uc.PrepareForm(context.Background(), "svc_1")

		require.NoError(t, err)
		assert.True(t, page.BusinessFound)
		require.NotNil(t, page.SelectedService)
		assert.Equal(t, "Full Grooming - $85.00 (1h 30m)", page.SelectedService.Label)
		assert.Equal(t, "svc_1", page.Form.ServiceID)
		assert.Equal(t, "dog", page.Form.PetSpecies)
		assert.Equal(t, "male", page.Form.PetGender)
		assert.Equal(t, "2026-03-02", page.MinDate)
		assert.Len(t, page.Slots, 17)
		assert.Equal(t, "9:00 AM", page.Slots[0].Label)
		assert.NotEmpty(t, page.SubmissionToken)
		assert.Equal(t, page.SubmissionToken, page.Form.SubmissionToken)
	})

	t.Run("Unknown Service Clears Selection", func(t *testing.T) {
		uc, _ := setupBooking("")

		page, err := uc.PrepareForm(context.Background(), "svc_missing")

		require.NoError(t, err)
		assert.Nil(t, page.SelectedService)
		assert.Empty(t, page.Form.ServiceID)
	})
}
