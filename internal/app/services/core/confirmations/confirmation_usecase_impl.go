package confirmations

import (
	"context"
	"fmt"
	"net/url"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/convexapi"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

type confirmationUsecase struct {
	AppointmentConvexClient contracts.AppointmentConvexClient
	InternalConfig          *config.InternalConfig
	Location                *time.Location
	Log                     *zap.Logger
}

var (
	confirmationUsecaseInstance contracts.ConfirmationUsecase
	onceConfirmationUsecase     sync.Once
)

func NewConfirmationUsecase(
	appointmentConvexClient contracts.AppointmentConvexClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConfirmationUsecase {
	onceConfirmationUsecase.Do(func() {
		confirmationUsecaseInstance = &confirmationUsecase{
			AppointmentConvexClient: appointmentConvexClient,
			InternalConfig:          internalConfig,
			Location:                utils.LoadLocation(internalConfig.App.Timezone),
			Log:                     logger,
		}
	})
	return confirmationUsecaseInstance
}

func (uc *confirmationUsecase) FindConfirmation(ctx context.Context, request *requests.Confirmation) (*responses.Confirmation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("confirmationUsecase.FindConfirmation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	details, err := uc.findDetails(ctx, request)
	if err != nil {
		return nil, err
	}

	response := &responses.Confirmation{
		AppointmentID:       details.ID,
		ConfirmationNumber:  utils.ConfirmationNumber(details.ID),
		Title:               details.Title,
		Status:              details.Status,
		DateLabel:           utils.FormatLongDate(details.ScheduledDate, uc.Location),
		StartTime:           details.StartTime,
		EndTime:             details.EndTime,
		TimeLabel:           utils.FormatTime12Hour(details.StartTime) + " - " + utils.FormatTime12Hour(details.EndTime),
		TotalAmount:         details.Total(),
		TotalLabel:          utils.FormatPrice(details.Total()),
		Services:            make([]responses.ConfirmationLine, 0, len(details.Services)),
		SpecialInstructions: details.SpecialInstructions,
		CalendarURL:         calendarURL(details.ID, request.State),
	}
	if details.Customer != nil {
		response.CustomerName = details.Customer.Name
		response.CustomerEmail = details.Customer.Email
		response.CustomerPhone = details.Customer.Phone
	}
	if details.Pet != nil {
		response.PetName = details.Pet.Name
		response.PetBreed = details.Pet.Breed
		if details.Pet.Weight != nil {
			response.PetWeight = strconv.FormatFloat(*details.Pet.Weight, 'f', -1, 64) + " lbs"
		}
	}
	for _, service := range details.Services {
		response.Services = append(response.Services, responses.ConfirmationLine{
			Name:       service.Name,
			Price:      service.Price,
			PriceLabel: utils.FormatPrice(service.Price),
		})
	}

	uc.Log.Info("confirmationUsecase.FindConfirmation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, details.ID),
	)
	return response, nil
}

// BuildCalendarFile renders the appointment as a single event iCalendar file.
func (uc *confirmationUsecase) BuildCalendarFile(ctx context.Context, request *requests.Confirmation) (*responses.CalendarFile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("confirmationUsecase.BuildCalendarFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	details, err := uc.findDetails(ctx, request)
	if err != nil {
		return nil, err
	}

	content, err := utils.BuildAppointmentICS(details.Title, details.ScheduledDate, details.StartTime, details.EndTime, uc.Location)
	if err != nil {
		uc.Log.Error("confirmationUsecase.BuildCalendarFile error building calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrConvexInvalidResult(err, convexapi.Appointments.GetAppointmentDetails.Ref().Path, "unreadable start or end time")
	}

	uc.Log.Info("confirmationUsecase.BuildCalendarFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.CalendarFile{FileName: constvars.AppCalendarFileName, Content: content}, nil
}

// findDetails checks the signed state first when a confirmation secret is
// configured, so a guessed id cannot reach the backend.
func (uc *confirmationUsecase) findDetails(ctx context.Context, request *requests.Confirmation) (*dto.AppointmentDetails, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if secret := uc.InternalConfig.App.ConfirmationSecret; secret != "" {
		appointmentID, err := utils.ParseConfirmationStateJWT(request.State, secret)
		if err != nil || appointmentID != request.AppointmentID {
			uc.Log.Warn("confirmationUsecase.findDetails rejected confirmation state",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
			)
			return nil, exceptions.ErrConfirmationTokenInvalid(err)
		}
	}

	details, err := uc.AppointmentConvexClient.FindDetails(ctx, request.AppointmentID)
	if err != nil {
		uc.Log.Error("confirmationUsecase.findDetails error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return details, nil
}

func calendarURL(appointmentID, state string) string {
	link := fmt.Sprintf(constvars.ConfirmationCalendarFormat, url.PathEscape(appointmentID))
	if state == "" {
		return link
	}
	return link + "?" + url.Values{constvars.ConfirmationStateQueryParam: {state}}.Encode()
}
