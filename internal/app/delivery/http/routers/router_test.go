package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/delivery/http/controllers"
	"petgromee-web/internal/app/delivery/http/middlewares"
	"petgromee-web/internal/app/delivery/http/views"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
	"petgromee-web/internal/pkg/loadable"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) FindBusiness(ctx context.Context) (*dto.Business, error) {
	args := m.Called(ctx)
	business, _ := args.Get(0).(*dto.Business)
	return business, args.Error(1)
}

func (m *MockCatalogUsecase) LoadCatalog(ctx context.Context, request *requests.CatalogQuery) *responses.CatalogPage {
	return m.Called(ctx, request).Get(0).(*responses.CatalogPage)
}

func (m *MockCatalogUsecase) ListServices(ctx context.Context, category string) ([]responses.ServiceCard, error) {
	args := m.Called(ctx, category)
	cards, _ := args.Get(0).([]responses.ServiceCard)
	return cards, args.Error(1)
}

func (m *MockCatalogUsecase) ListMembershipTiers(ctx context.Context, membershipType, frequency string) ([]responses.MembershipTier, error) {
	args := m.Called(ctx, membershipType, frequency)
	tiers, _ := args.Get(0).([]responses.MembershipTier)
	return tiers, args.Error(1)
}

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) PrepareForm(ctx context.Context, serviceID string) (*responses.BookingPage, error) {
	args := m.Called(ctx, serviceID)
	page, _ := args.Get(0).(*responses.BookingPage)
	return page, args.Error(1)
}

func (m *MockBookingUsecase) SubmitBooking(ctx context.Context, request *requests.BookingForm) (*responses.BookingResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.BookingResult)
	return result, args.Error(1)
}

type MockMembershipUsecase struct {
	mock.Mock
}

func (m *MockMembershipUsecase) StartCheckout(ctx context.Context, request *requests.MembershipCheckout) (*responses.CheckoutResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CheckoutResult)
	return result, args.Error(1)
}

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) PreparePage(ctx context.Context, request *requests.PaymentPage) (*responses.PaymentPage, error) {
	args := m.Called(ctx, request)
	page, _ := args.Get(0).(*responses.PaymentPage)
	return page, args.Error(1)
}

func (m *MockPaymentUsecase) ConfirmPayment(ctx context.Context, request *requests.ConfirmPayment) (*responses.PaymentConfirmation, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.PaymentConfirmation)
	return result, args.Error(1)
}

type MockConfirmationUsecase struct {
	mock.Mock
}

func (m *MockConfirmationUsecase) FindConfirmation(ctx context.Context, request *requests.Confirmation) (*responses.Confirmation, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Confirmation)
	return result, args.Error(1)
}

func (m *MockConfirmationUsecase) BuildCalendarFile(ctx context.Context, request *requests.Confirmation) (*responses.CalendarFile, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CalendarFile)
	return result, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

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

type testServer struct {
	router       *chi.Mux
	catalog      *MockCatalogUsecase
	booking      *MockBookingUsecase
	membership   *MockMembershipUsecase
	payment      *MockPaymentUsecase
	confirmation *MockConfirmationUsecase
	redis        *MockRedisRepository
}

var (
	sharedServer     *testServer
	onceSharedServer sync.Once
)

// newTestServer wires the real controllers and renderer once, since their
// constructors are process wide singletons.
func newTestServer() *testServer {
	onceSharedServer.Do(func() {
		logger := zap.NewNop()
		internalConfig := &config.InternalConfig{
			App: config.App{
				Env:                     "development",
				MaxRequests:             1000,
				RequestTimeoutInSeconds: 5,
				BookingRatePerMinute:    100,
				AllowedOrigins:          []string{"*"},
			},
			Stripe: config.Stripe{PublishableKey: "pk_test_123"},
		}

		server := &testServer{
			router:       chi.NewRouter(),
			catalog:      new(MockCatalogUsecase),
			booking:      new(MockBookingUsecase),
			membership:   new(MockMembershipUsecase),
			payment:      new(MockPaymentUsecase),
			confirmation: new(MockConfirmationUsecase),
			redis:        new(MockRedisRepository),
		}

		renderer := views.NewPageRenderer(internalConfig, logger)
		SetupRoutes(
			server.router,
			internalConfig,
			middlewares.NewMiddlewares(logger, internalConfig, nil),
			controllers.NewCatalogController(logger, renderer, internalConfig, server.catalog),
			controllers.NewBookingController(logger, renderer, internalConfig, server.booking),
			controllers.NewMembershipController(logger, renderer, internalConfig, server.membership),
			controllers.NewPaymentController(logger, renderer, internalConfig, server.payment),
			controllers.NewConfirmationController(logger, renderer, internalConfig, server.confirmation),
			controllers.NewStaticController(logger, renderer, internalConfig),
			controllers.NewHealthController(logger, server.redis),
		)
		sharedServer = server
	})
	return sharedServer
}

func TestRouter_HomePage(t *testing.T) {
	server := newTestServer()
	server.catalog.On("LoadCatalog", mock.Anything, &requests.CatalogQuery{Category: "bath", Frequency: "yearly"}).Return(&responses.CatalogPage{
		Business: loadable.Loaded(&dto.Business{ID: "biz_1", Name: "Test Grooming"}),
		Services: loadable.Loaded([]responses.ServiceCard{{ID: "svc_bath", Name: "Bath & Brush", PriceLabel: "$45", BookingURL: "/appointment?serviceId=svc_bath"}}),
		Grooming: loadable.Loaded([]responses.MembershipTier{{ID: "plan_1", Name: "Gold", Price: "$80", Frequency: "yearly", CheckoutURL: "/memberships/plan_1/checkout"}}),
		Daycare:  loadable.Loaded([]responses.MembershipTier{}),
		Category: "bath", Frequency: "yearly",
	})

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?category=bath&frequency=yearly", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
	body := rec.Body.String()
	assert.Contains(t, body, "Bath &amp; Brush")
	assert.Contains(t, body, "Gold")
	assert.Contains(t, body, "No Daycare Memberships Available")

	var visitorCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constvars.CookieVisitorID {
			visitorCookie = cookie
		}
	}
	require.NotNil(t, visitorCookie)
}

func TestRouter_UnknownRouteRendersNotFound(t *testing.T) {
	server := newTestServer()

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "This page has wandered off")
}

func TestRouter_ServicesAPI(t *testing.T) {
	server := newTestServer()
	server.catalog.On("ListServices", mock.Anything, "addon").Return([]responses.ServiceCard{{ID: "svc_nails", Name: "Nail Trim"}}, nil)

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services?category=addon", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var response struct {
		Success bool                    `json:"success"`
		Data    []responses.ServiceCard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "Nail Trim", response.Data[0].Name)
}

func TestRouter_MembershipsAPIRejectsUnknownFrequency(t *testing.T) {
	server := newTestServer()

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/memberships?type=grooming&frequency=weekly", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_BookingSubmissionRedirects(t *testing.T) {
	server := newTestServer()
	server.booking.On("SubmitBooking", mock.Anything, mock.MatchedBy(func(form *requests.BookingForm) bool {
		return form.PetName == "Router Buddy"
	})).Return(&responses.BookingResult{AppointmentID: "appt_router", CheckoutURL: "https://checkout.stripe.com/c/router"}, nil)

	values := url.Values{
		"serviceId":       {"svc_1"},
		"customerName":    {"Jane Doe"},
		"customerEmail":   {"jane@example.com"},
		"customerPhone":   {"5551234567"},
		"petName":         {"Router Buddy"},
		"petSpecies":      {"dog"},
		"petGender":       {"female"},
		"appointmentDate": {time.Now().AddDate(0, 0, 3).Format(constvars.TimeLayoutDate)},
		"appointmentTime": {"14:30"},
	}
	req := httptest.NewRequest(http.MethodPost, "/appointment", strings.NewReader(values.Encode()))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.RemoteAddr = "203.0.113.10:5000"
	rec := httptest.NewRecorder()

	server.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://checkout.stripe.com/c/router", rec.Header().Get(constvars.HeaderLocation))
}

func TestRouter_CalendarDownload(t *testing.T) {
	server := newTestServer()
	server.confirmation.On("BuildCalendarFile", mock.Anything, &requests.Confirmation{AppointmentID: "appt_ics"}).
		Return(&responses.CalendarFile{FileName: constvars.AppCalendarFileName, Content: "BEGIN:VCALENDAR"}, nil)

	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/confirmation/appt_ics/calendar.ics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constvars.MIMETextCalendarCharsetUTF8, rec.Header().Get(constvars.HeaderContentType))
	assert.Equal(t, "BEGIN:VCALENDAR", rec.Body.String())
}

func TestRouter_Health(t *testing.T) {
	server := newTestServer()
	server.redis.On("Ping", mock.Anything).Return(nil)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		server.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
