package controllers

import (
	"context"
	"net/http"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/app/delivery/http/views"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	pageResponder
	PaymentUsecase contracts.PaymentUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, renderer contracts.PageRenderer, internalConfig *config.InternalConfig, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	oncePaymentController.Do(func() {
		instance := &PaymentController{
			pageResponder: pageResponder{
				Log:            logger,
				Renderer:       renderer,
				InternalConfig: internalConfig,
			},
			PaymentUsecase: paymentUsecase,
		}
		paymentControllerInstance = instance
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) Page(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	query := r.URL.Query()

	request := &requests.PaymentPage{ClientSecret: query.Get(constvars.QueryParamClientSecret)}
	if rawAmount := query.Get(constvars.QueryParamAmount); rawAmount != "" {
		amount, err := strconv.ParseInt(rawAmount, 10, 64)
		if err != nil {
			ctrl.Log.Info("PaymentController.Page invalid amount",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
			)
			ctrl.renderFailure(w, r, exceptions.ErrInputValidation(err))
			return
		}
		request.Amount = amount
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Info("PaymentController.Page validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.renderFailure(w, r, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	page, err := ctrl.PaymentUsecase.PreparePage(ctx, request)
	if err != nil {
		ctrl.renderFailure(w, r, err)
		return
	}

	ctrl.render(w, r, constvars.StatusOK, views.PagePayment, "Payment - "+constvars.AppName, "", page)
}

func (ctrl *PaymentController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.ConfirmPayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("PaymentController.ConfirmPayment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeConfirmPayment(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Info("PaymentController.ConfirmPayment validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.PaymentUsecase.ConfirmPayment(ctx, request)
	if err != nil {
		ctrl.Log.Error("PaymentController.ConfirmPayment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIntentKey, request.PaymentIntentID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PaymentController.ConfirmPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentStatusKey, result.Status),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, result.Message, result)
}
