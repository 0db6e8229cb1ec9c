package bookings

import (
	"context"
	"fmt"
	"net/url"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/app/models"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	stepResolve           = "resolveService"
	stepCreateCustomer    = "createCustomer"
	stepCreatePet         = "createPet"
	stepCalculateEndTime  = "calculateEndTime"
	stepCreateAppointment = "createAppointment"
	stepCreateCheckout    = "createCheckout"
)

type bookingUsecase struct {
	BusinessConvexClient    contracts.BusinessConvexClient
	ServiceConvexClient     contracts.ServiceConvexClient
	CustomerConvexClient    contracts.CustomerConvexClient
	PetConvexClient         contracts.PetConvexClient
	AppointmentConvexClient contracts.AppointmentConvexClient
	StripeConvexClient      contracts.StripeConvexClient
	RedisRepository         contracts.RedisRepository
	LockService             contracts.LockerService
	EventPublisher          contracts.BookingEventPublisher
	InternalConfig          *config.InternalConfig
	Location                *time.Location
	Now                     func() time.Time
	Log                     *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	businessConvexClient contracts.BusinessConvexClient,
	serviceConvexClient contracts.ServiceConvexClient,
	customerConvexClient contracts.CustomerConvexClient,
	petConvexClient contracts.PetConvexClient,
	appointmentConvexClient contracts.AppointmentConvexClient,
	stripeConvexClient contracts.StripeConvexClient,
	redisRepository contracts.RedisRepository,
	lockService contracts.LockerService,
	eventPublisher contracts.BookingEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			BusinessConvexClient:    businessConvexClient,
			ServiceConvexClient:     serviceConvexClient,
			CustomerConvexClient:    customerConvexClient,
			PetConvexClient:         petConvexClient,
			AppointmentConvexClient: appointmentConvexClient,
			StripeConvexClient:      stripeConvexClient,
			RedisRepository:         redisRepository,
			LockService:             lockService,
			EventPublisher:          eventPublisher,
			InternalConfig:          internalConfig,
			Location:                utils.LoadLocation(internalConfig.App.Timezone),
			Now:                     time.Now,
			Log:                     logger,
		}
	})
	return bookingUsecaseInstance
}

// PrepareForm builds an empty appointment form. An unknown serviceID is not an
// error, the form just starts without a selection.
func (uc *bookingUsecase) PrepareForm(ctx context.Context, serviceID string) (*responses.BookingPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.PrepareForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	page := &responses.BookingPage{
		Slots:           utils.TimeSlotOptions(),
		SubmissionToken: utils.GenerateSubmissionToken(),
		MinDate:         uc.Now().In(uc.Location).Format(constvars.TimeLayoutDate),
		Form: requests.BookingForm{
			ServiceID:  serviceID,
			PetSpecies: constvars.PetSpeciesDog,
			PetGender:  constvars.PetGenderMale,
		},
		Services: []responses.ServiceOption{},
	}
	page.Form.SubmissionToken = page.SubmissionToken

	business, err := uc.BusinessConvexClient.FindBySlug(ctx, uc.InternalConfig.App.BusinessSlug)
	if err != nil {
		uc.Log.Error("bookingUsecase.PrepareForm error fetching business",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if business == nil {
		uc.Log.Warn("bookingUsecase.PrepareForm business not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return page, nil
	}
	page.BusinessFound = true

	services, err := uc.ServiceConvexClient.FindByBusiness(ctx, business.ID)
	if err != nil {
		uc.Log.Error("bookingUsecase.PrepareForm error fetching services",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	page.Services, page.SelectedService = buildServiceOptions(services, serviceID)
	if page.SelectedService == nil {
		page.Form.ServiceID = ""
	}

	uc.Log.Info("bookingUsecase.PrepareForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(page.Services)),
	)
	return page, nil
}

// SubmitBooking creates customer, pet, appointment and checkout session in
// that order. A failed step undoes the completed ones. A submission token that
// already produced a checkout replays it without touching the backend.
func (uc *bookingUsecase) SubmitBooking(ctx context.Context, request *requests.BookingForm) (*responses.BookingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	token := request.SubmissionToken
	uc.Log.Info("bookingUsecase.SubmitBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionKey, token),
		zap.String(constvars.LoggingServiceIDKey, request.ServiceID),
	)

	var pending *models.BookingSubmission
	if token != "" {
		previous, err := uc.findSubmission(ctx, token)
		if err != nil {
			return nil, err
		}
		if previous != nil && previous.CheckoutURL != "" {
			uc.Log.Info("bookingUsecase.SubmitBooking replaying finished submission",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, previous.AppointmentID),
			)
			return &responses.BookingResult{
				AppointmentID: previous.AppointmentID,
				CheckoutURL:   previous.CheckoutURL,
				Replayed:      true,
			}, nil
		}

		lockKey := fmt.Sprintf(constvars.RedisKeyBookingLockFormat, token)
		acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, constvars.LockBookingSubmissionTTL*time.Second)
		if err != nil {
			uc.Log.Error("bookingUsecase.SubmitBooking error acquiring lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if !acquired {
			uc.Log.Warn("bookingUsecase.SubmitBooking submission already in flight",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSubmissionKey, token),
			)
			return nil, exceptions.ErrBookingInProgress(nil, token)
		}
		defer func() {
			if err := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
				uc.Log.Error("bookingUsecase.SubmitBooking error releasing lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}()

		// Re-read under the lock: the holder before us may have finished or stalled.
		pending, err = uc.findSubmission(ctx, token)
		if err != nil {
			return nil, err
		}
		if pending != nil && pending.CheckoutURL != "" {
			return &responses.BookingResult{
				AppointmentID: pending.AppointmentID,
				CheckoutURL:   pending.CheckoutURL,
				Replayed:      true,
			}, nil
		}
	}

	business, service, err := uc.resolveService(ctx, request.ServiceID)
	if err != nil {
		return nil, err
	}

	if pending != nil && pending.AppointmentID != "" {
		return uc.resumeCheckout(ctx, request, business, service, pending)
	}

	flow := newSaga(uc.Log, requestID)
	event := &models.BookingEvent{
		EventID:         uuid.NewString(),
		Type:            constvars.EventBookingCheckoutStarted,
		SubmissionToken: token,
		BusinessID:      business.ID,
		ServiceID:       service.ID,
		StartTime:       request.AppointmentTime,
	}

	failed := func(step string, err error) (*responses.BookingResult, error) {
		uc.Log.Error("bookingUsecase.SubmitBooking step failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStepKey, step),
			zap.Error(err),
		)
		flow.compensate(ctx)
		return nil, exceptions.ErrBookingFailed(err, step)
	}

	err = flow.run(ctx, stepCreateCustomer, func(ctx context.Context) error {
		customerID, err := uc.CustomerConvexClient.CreateCustomer(ctx, &dto.CreateCustomerArgs{
			BusinessID: business.ID,
			Name:       request.CustomerName,
			Email:      request.CustomerEmail,
			Phone:      request.CustomerPhone,
		})
		event.CustomerID = customerID
		return err
	})
	if err != nil {
		return failed(stepCreateCustomer, err)
	}
	flow.onFailure(stepCreateCustomer, func(ctx context.Context) error {
		return uc.CustomerConvexClient.DeleteCustomer(ctx, event.CustomerID)
	})

	err = flow.run(ctx, stepCreatePet, func(ctx context.Context) error {
		petID, err := uc.PetConvexClient.CreatePet(ctx, &dto.CreatePetArgs{
			CustomerID: event.CustomerID,
			Name:       request.PetName,
			Species:    request.PetSpecies,
			Breed:      request.PetBreed,
			Age:        request.Age(),
			Weight:     request.Weight(),
			Gender:     request.PetGender,
			CreatedAt:  uc.Now().UnixMilli(),
		})
		event.PetID = petID
		return err
	})
	if err != nil {
		return failed(stepCreatePet, err)
	}
	flow.onFailure(stepCreatePet, func(ctx context.Context) error {
		return uc.PetConvexClient.DeletePet(ctx, event.PetID)
	})

	endTime, wrapped, err := utils.CalculateEndTime(request.AppointmentTime, service.Duration)
	if err != nil {
		return failed(stepCalculateEndTime, exceptions.ErrInvalidTime(err, request.AppointmentTime))
	}
	if wrapped {
		uc.Log.Warn("bookingUsecase.SubmitBooking end time wraps past midnight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStartTimeKey, request.AppointmentTime),
			zap.String(constvars.LoggingEndTimeKey, endTime),
		)
	}
	event.EndTime = endTime

	scheduledDay, err := utils.ParseAppointmentDate(request.AppointmentDate, uc.Location)
	if err != nil {
		return failed(stepCreateAppointment, exceptions.ErrInvalidDate(err, request.AppointmentDate))
	}
	event.ScheduledDate = scheduledDay.UnixMilli()

	autoConfirm := false
	err = flow.run(ctx, stepCreateAppointment, func(ctx context.Context) error {
		appointmentID, err := uc.AppointmentConvexClient.CreateAppointment(ctx, &dto.CreateAppointmentArgs{
			AutoConfirm:         &autoConfirm,
			BusinessID:          business.ID,
			CustomerID:          event.CustomerID,
			PetID:               event.PetID,
			Title:               fmt.Sprintf("%s for %s", service.Name, request.PetName),
			ScheduledDate:       event.ScheduledDate,
			StartTime:           request.AppointmentTime,
			EndTime:             endTime,
			EstimatedDuration:   service.Duration,
			ServiceIDs:          []string{service.ID},
			SpecialInstructions: request.SpecialInstructions,
		})
		event.AppointmentID = appointmentID
		return err
	})
	if err != nil {
		return failed(stepCreateAppointment, err)
	}
	flow.onFailure(stepCreateAppointment, func(ctx context.Context) error {
		return uc.AppointmentConvexClient.DeleteAppointment(ctx, event.AppointmentID)
	})

	successURL, err := uc.successURL(event.AppointmentID)
	if err != nil {
		return failed(stepCreateCheckout, exceptions.ErrConfirmationTokenGenerate(err))
	}

	err = flow.run(ctx, stepCreateCheckout, func(ctx context.Context) error {
		checkoutURL, err := uc.StripeConvexClient.CreateAppointmentCheckout(ctx, uc.checkoutArgs(request, service, event.AppointmentID, successURL))
		event.CheckoutURL = checkoutURL
		return err
	})
	if err != nil {
		return failed(stepCreateCheckout, err)
	}

	return uc.completeBooking(ctx, event), nil
}

// resumeCheckout retries only the checkout step for a submission whose
// appointment already exists. Nothing is compensated on failure so the next
// retry can resume again.
func (uc *bookingUsecase) resumeCheckout(ctx context.Context, request *requests.BookingForm, business *dto.Business, service *dto.Service, pending *models.BookingSubmission) (*responses.BookingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.resumeCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, pending.AppointmentID),
	)

	event := &models.BookingEvent{
		EventID:         uuid.NewString(),
		Type:            constvars.EventBookingCheckoutStarted,
		SubmissionToken: request.SubmissionToken,
		BusinessID:      business.ID,
		ServiceID:       service.ID,
		CustomerID:      pending.CustomerID,
		PetID:           pending.PetID,
		AppointmentID:   pending.AppointmentID,
		ScheduledDate:   pending.ScheduledDate,
		StartTime:       request.AppointmentTime,
		EndTime:         pending.EndTime,
	}

	successURL, err := uc.successURL(event.AppointmentID)
	if err != nil {
		return nil, exceptions.ErrBookingFailed(exceptions.ErrConfirmationTokenGenerate(err), stepCreateCheckout)
	}

	checkoutURL, err := uc.StripeConvexClient.CreateAppointmentCheckout(ctx, uc.checkoutArgs(request, service, event.AppointmentID, successURL))
	if err != nil {
		uc.Log.Error("bookingUsecase.resumeCheckout error creating checkout",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingFailed(err, stepCreateCheckout)
	}
	event.CheckoutURL = checkoutURL

	return uc.completeBooking(ctx, event), nil
}

func (uc *bookingUsecase) checkoutArgs(request *requests.BookingForm, service *dto.Service, appointmentID, successURL string) *dto.AppointmentCheckoutArgs {
	return &dto.AppointmentCheckoutArgs{
		AppointmentID: appointmentID,
		CustomerEmail: request.CustomerEmail,
		CustomerName:  request.CustomerName,
		SuccessURL:    successURL,
		CancelURL:     fmt.Sprintf(constvars.BookingCancelURLFormat, uc.InternalConfig.App.BaseUrl, url.QueryEscape(service.ID)),
	}
}

// completeBooking records the outcome under the submission token. A stalled
// checkout is stored without a URL so a retry resumes from the checkout step.
func (uc *bookingUsecase) completeBooking(ctx context.Context, event *models.BookingEvent) *responses.BookingResult {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	result := &responses.BookingResult{
		AppointmentID: event.AppointmentID,
		CheckoutURL:   event.CheckoutURL,
		EndTime:       event.EndTime,
	}

	if event.SubmissionToken != "" {
		uc.storeSubmission(ctx, &models.BookingSubmission{
			SubmissionToken: event.SubmissionToken,
			CustomerID:      event.CustomerID,
			PetID:           event.PetID,
			AppointmentID:   event.AppointmentID,
			ScheduledDate:   event.ScheduledDate,
			EndTime:         event.EndTime,
			CheckoutURL:     event.CheckoutURL,
		})
	}

	if event.CheckoutURL == "" {
		uc.Log.Warn("bookingUsecase.SubmitBooking checkout returned no URL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		)
		return result
	}

	event.SetCreatedAt()
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("bookingUsecase.SubmitBooking error publishing booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("bookingUsecase.SubmitBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		zap.String(constvars.LoggingCheckoutURLKey, event.CheckoutURL),
	)
	return result
}

func (uc *bookingUsecase) resolveService(ctx context.Context, serviceID string) (*dto.Business, *dto.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	business, err := uc.BusinessConvexClient.FindBySlug(ctx, uc.InternalConfig.App.BusinessSlug)
	if err != nil {
		uc.Log.Error("bookingUsecase.resolveService error fetching business",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrBookingFailed(err, stepResolve)
	}
	if business == nil {
		return nil, nil, exceptions.ErrBusinessOrServiceNotFound(nil)
	}

	services, err := uc.ServiceConvexClient.FindByBusiness(ctx, business.ID)
	if err != nil {
		uc.Log.Error("bookingUsecase.resolveService error fetching services",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrBookingFailed(err, stepResolve)
	}

	service, ok := services.FindByID(serviceID)
	if !ok {
		uc.Log.Warn("bookingUsecase.resolveService service not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceIDKey, serviceID),
		)
		return nil, nil, exceptions.ErrBusinessOrServiceNotFound(nil)
	}
	return business, &service, nil
}

// successURL points back to the confirmation page, signed when a secret is configured.
func (uc *bookingUsecase) successURL(appointmentID string) (string, error) {
	base := fmt.Sprintf(constvars.ConfirmationURLFormat, uc.InternalConfig.App.BaseUrl, appointmentID)
	secret := uc.InternalConfig.App.ConfirmationSecret
	if secret == "" {
		return base, nil
	}
	state, err := utils.GenerateConfirmationStateJWT(appointmentID, secret, uc.InternalConfig.App.ConfirmationStateExpiryInHours)
	if err != nil {
		return "", err
	}
	return base + "?" + url.Values{constvars.ConfirmationStateQueryParam: {state}}.Encode(), nil
}

func (uc *bookingUsecase) findSubmission(ctx context.Context, token string) (*models.BookingSubmission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	key := fmt.Sprintf(constvars.RedisKeyBookingSubmissionFormat, token)

	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Error("bookingUsecase.findSubmission error reading redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var submission models.BookingSubmission
	if err := json.Unmarshal([]byte(raw), &submission); err != nil {
		uc.Log.Warn("bookingUsecase.findSubmission ignoring unreadable record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, nil
	}
	return &submission, nil
}

func (uc *bookingUsecase) storeSubmission(ctx context.Context, submission *models.BookingSubmission) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	key := fmt.Sprintf(constvars.RedisKeyBookingSubmissionFormat, submission.SubmissionToken)
	submission.SetCreatedAt()

	ttl := time.Duration(uc.InternalConfig.App.SubmissionTokenTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, key, *submission, ttl); err != nil {
		uc.Log.Warn("bookingUsecase.storeSubmission error writing redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

func buildServiceOptions(services dto.Services, selectedID string) ([]responses.ServiceOption, *responses.ServiceOption) {
	options := make([]responses.ServiceOption, 0, len(services))
	var selected *responses.ServiceOption
	for _, service := range services {
		option := responses.ServiceOption{
			ID:            service.ID,
			Name:          service.Name,
			PriceLabel:    utils.FormatPrice(service.Price),
			DurationLabel: utils.FormatDuration(service.Duration),
			Selected:      service.ID == selectedID,
		}
		option.Label = fmt.Sprintf("%s - %s (%s)", option.Name, option.PriceLabel, option.DurationLabel)
		options = append(options, option)
		if option.Selected {
			selectedOption := option
			selected = &selectedOption
		}
	}
	return options, selected
}
