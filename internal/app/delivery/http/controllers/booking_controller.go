package controllers

import (
	"context"
	"errors"
	"net/http"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/app/delivery/http/views"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const bookingPageTitle = "Book an Appointment - " + constvars.AppName

type BookingController struct {
	pageResponder
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, renderer contracts.PageRenderer, internalConfig *config.InternalConfig, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		bookingControllerInstance = &BookingController{
			pageResponder: pageResponder{
				Log:            logger,
				Renderer:       renderer,
				InternalConfig: internalConfig,
			},
			BookingUsecase: bookingUsecase,
		}
	})
	return bookingControllerInstance
}

// ShowForm serves /appointment, /book and /book/{serviceId}. The path value
// wins over the serviceId query parameter.
func (ctrl *BookingController) ShowForm(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, constvars.URLParamServiceID)
	if serviceID == "" {
		serviceID = r.URL.Query().Get(constvars.QueryParamServiceID)
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	page, err := ctrl.BookingUsecase.PrepareForm(ctx, serviceID)
	if err != nil {
		ctrl.Log.Error("BookingController.ShowForm error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingServiceIDKey, serviceID),
			zap.Error(err),
		)
		ctrl.renderFailure(w, r, err)
		return
	}

	ctrl.render(w, r, constvars.StatusOK, views.PageAppointment, bookingPageTitle, "", page)
}

func (ctrl *BookingController) Submit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("BookingController.Submit error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.renderFailure(w, r, exceptions.ErrCannotParseForm(err))
		return
	}

	form := bookingFormFromRequest(r)
	utils.SanitizeBookingForm(form)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	if err := utils.ValidateStruct(form); err != nil {
		fields := exceptions.FieldMessages(err, constvars.BookingFieldValidationMessages)
		ctrl.Log.Info("BookingController.Submit validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Any(constvars.LoggingDataKey, fields),
		)
		ctrl.rerender(w, r, form, fields, "", constvars.StatusUnprocessableEntity)
		return
	}

	result, err := ctrl.BookingUsecase.SubmitBooking(ctx, form)
	if err != nil {
		code, toast := ctrl.submissionFailure(err)
		ctrl.Log.Error("BookingController.Submit error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		ctrl.rerender(w, r, form, nil, toast, code)
		return
	}

	if result.CheckoutURL == "" {
		ctrl.Log.Warn("BookingController.Submit checkout returned no URL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, result.AppointmentID),
		)
		ctrl.rerender(w, r, form, nil, "", constvars.StatusOK)
		return
	}

	ctrl.Log.Info("BookingController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, result.AppointmentID),
		zap.Bool("replayed", result.Replayed),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	http.Redirect(w, r, result.CheckoutURL, constvars.StatusSeeOther)
}

// submissionFailure picks the status and toast for a failed submission. Errors
// without a client message of their own get the generic booking toast.
func (ctrl *BookingController) submissionFailure(err error) (int, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return constvars.StatusGatewayTimeout, constvars.ErrClientBookingFailed
	}

	code, clientMessage, customErr := utils.ResolveError(ctrl.Log, err)
	if customErr == nil {
		return code, constvars.ErrClientBookingFailed
	}
	return code, clientMessage
}

// rerender shows the form again with the visitor's values and the submission
// token they already hold, so a retry stays idempotent. It runs on its own
// deadline because the submission may have used up the request's.
func (ctrl *BookingController) rerender(w http.ResponseWriter, r *http.Request, form *requests.BookingForm, fields map[string]string, toast string, status int) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	page, err := ctrl.BookingUsecase.PrepareForm(ctx, form.ServiceID)
	if err != nil {
		ctrl.Log.Warn("BookingController.rerender catalog unavailable, keeping posted form",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingServiceIDKey, form.ServiceID),
			zap.Error(err),
		)
		page = postedFormPage(form)
		if toast == "" {
			toast = constvars.ErrClientBookingFailed
		}
	}

	if form.SubmissionToken != "" && fields["submissionToken"] == "" {
		page.SubmissionToken = form.SubmissionToken
	}
	page.Form = *form
	page.Form.SubmissionToken = page.SubmissionToken
	page.Errors = fields

	ctrl.render(w, r, status, views.PageAppointment, bookingPageTitle, toast, page)
}

// postedFormPage rebuilds the appointment form from the submission alone.
func postedFormPage(form *requests.BookingForm) *responses.BookingPage {
	page := &responses.BookingPage{
		BusinessFound:   true,
		Services:        []responses.ServiceOption{},
		Slots:           utils.TimeSlotOptions(),
		SubmissionToken: form.SubmissionToken,
		MinDate:         time.Now().Format(constvars.TimeLayoutDate),
	}
	if page.SubmissionToken == "" {
		page.SubmissionToken = utils.GenerateSubmissionToken()
	}
	if form.ServiceID != "" {
		page.Services = append(page.Services, responses.ServiceOption{
			ID:       form.ServiceID,
			Name:     constvars.SelectedServiceLabel,
			Label:    constvars.SelectedServiceLabel,
			Selected: true,
		})
	}
	return page
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.BookingForm)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if request.SubmissionToken == "" {
		request.SubmissionToken = r.Header.Get(constvars.HeaderIdempotencyKey)
	}
	utils.SanitizeBookingForm(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Info("BookingController.CreateBooking validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildValidationErrorResponse(w, exceptions.FormatFirstValidationError(err), exceptions.FieldMessages(err, constvars.BookingFieldValidationMessages))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.BookingUsecase.SubmitBooking(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, result.AppointmentID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBookingSuccessMessage, result)
}

func bookingFormFromRequest(r *http.Request) *requests.BookingForm {
	return &requests.BookingForm{
		SubmissionToken:     r.PostFormValue("submissionToken"),
		ServiceID:           r.PostFormValue("serviceId"),
		CustomerName:        r.PostFormValue("customerName"),
		CustomerEmail:       r.PostFormValue("customerEmail"),
		CustomerPhone:       r.PostFormValue("customerPhone"),
		PetName:             r.PostFormValue("petName"),
		PetSpecies:          r.PostFormValue("petSpecies"),
		PetBreed:            r.PostFormValue("petBreed"),
		PetAge:              r.PostFormValue("petAge"),
		PetWeight:           r.PostFormValue("petWeight"),
		PetGender:           r.PostFormValue("petGender"),
		AppointmentDate:     r.PostFormValue("appointmentDate"),
		AppointmentTime:     r.PostFormValue("appointmentTime"),
		SpecialInstructions: r.PostFormValue("specialInstructions"),
	}
}
