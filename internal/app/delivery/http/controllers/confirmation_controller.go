package controllers

import (
	"context"
	"fmt"
	"net/http"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/app/delivery/http/views"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/utils"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ConfirmationController struct {
	pageResponder
	ConfirmationUsecase contracts.ConfirmationUsecase
}

var (
	confirmationControllerInstance *ConfirmationController
	onceConfirmationController     sync.Once
)

func NewConfirmationController(logger *zap.Logger, renderer contracts.PageRenderer, internalConfig *config.InternalConfig, confirmationUsecase contracts.ConfirmationUsecase) *ConfirmationController {
	onceConfirmationController.Do(func() {
		confirmationControllerInstance = &ConfirmationController{
			pageResponder: pageResponder{
				Log:            logger,
				Renderer:       renderer,
				InternalConfig: internalConfig,
			},
			ConfirmationUsecase: confirmationUsecase,
		}
	})
	return confirmationControllerInstance
}

func (ctrl *ConfirmationController) Page(w http.ResponseWriter, r *http.Request) {
	request := confirmationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	confirmation, err := ctrl.ConfirmationUsecase.FindConfirmation(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConfirmationController.Page error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
			zap.Error(err),
		)
		ctrl.renderFailure(w, r, err)
		return
	}

	ctrl.render(w, r, constvars.StatusOK, views.PageConfirmation, "Appointment Confirmed - "+constvars.AppName, "", confirmation)
}

func (ctrl *ConfirmationController) Calendar(w http.ResponseWriter, r *http.Request) {
	request := confirmationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	file, err := ctrl.ConfirmationUsecase.BuildCalendarFile(ctx, request)
	if err != nil {
		ctrl.Log.Error("ConfirmationController.Calendar error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
			zap.Error(err),
		)
		ctrl.renderFailure(w, r, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCalendarCharsetUTF8)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.WriteHeader(constvars.StatusOK)
	_, _ = w.Write([]byte(file.Content))
}

func confirmationRequest(r *http.Request) *requests.Confirmation {
	return &requests.Confirmation{
		AppointmentID: chi.URLParam(r, constvars.URLParamAppointmentID),
		State:         r.URL.Query().Get(constvars.ConfirmationStateQueryParam),
	}
}
