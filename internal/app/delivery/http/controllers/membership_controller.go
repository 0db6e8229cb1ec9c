package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MembershipController struct {
	pageResponder
	MembershipUsecase contracts.MembershipUsecase
}

var (
	membershipControllerInstance *MembershipController
	onceMembershipController     sync.Once
)

func NewMembershipController(logger *zap.Logger, renderer contracts.PageRenderer, internalConfig *config.InternalConfig, membershipUsecase contracts.MembershipUsecase) *MembershipController {
	onceMembershipController.Do(func() {
		membershipControllerInstance = &MembershipController{
			pageResponder: pageResponder{
				Log:            logger,
				Renderer:       renderer,
				InternalConfig: internalConfig,
			},
			MembershipUsecase: membershipUsecase,
		}
	})
	return membershipControllerInstance
}

// Checkout answers the pricing card form. Every failure lands back on the
// membership section with a toast.
func (ctrl *MembershipController) Checkout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("MembershipController.Checkout error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.redirectWithToast(w, r, constvars.RouteMembershipAnchor, constvars.ErrClientCheckoutFailed)
		return
	}

	request := &requests.MembershipCheckout{
		MembershipPlanID: chi.URLParam(r, constvars.URLParamPlanID),
		CustomerEmail:    r.PostFormValue("customerEmail"),
		CustomerName:     r.PostFormValue("customerName"),
	}
	utils.SanitizeMembershipCheckout(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Info("MembershipController.Checkout validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.redirectWithToast(w, r, constvars.RouteMembershipAnchor, constvars.ErrClientCheckoutFailed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.MembershipUsecase.StartCheckout(ctx, request)
	if err != nil {
		_, clientMessage, _ := utils.ResolveError(ctrl.Log, err)
		ctrl.Log.Error("MembershipController.Checkout error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMembershipIDKey, request.MembershipPlanID),
			zap.Error(err),
		)
		ctrl.redirectWithToast(w, r, constvars.RouteMembershipAnchor, clientMessage)
		return
	}

	if result.CheckoutURL == "" {
		ctrl.Log.Warn("MembershipController.Checkout checkout returned no URL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMembershipIDKey, request.MembershipPlanID),
		)
		ctrl.redirectWithToast(w, r, constvars.RouteMembershipAnchor, constvars.ErrClientCheckoutFailed)
		return
	}

	http.Redirect(w, r, result.CheckoutURL, constvars.StatusSeeOther)
}

func (ctrl *MembershipController) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.MembershipCheckout)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil && !errors.Is(err, io.EOF) {
		ctrl.Log.Error("MembershipController.CreateCheckout error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.MembershipPlanID = chi.URLParam(r, constvars.URLParamPlanID)
	utils.SanitizeMembershipCheckout(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Info("MembershipController.CreateCheckout validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.MembershipUsecase.StartCheckout(ctx, request)
	if err != nil {
		ctrl.Log.Error("MembershipController.CreateCheckout error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMembershipIDKey, request.MembershipPlanID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCheckoutSuccessMessage, result)
}
