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
	"sync"

	"go.uber.org/zap"
)

type CatalogController struct {
	pageResponder
	CatalogUsecase contracts.CatalogUsecase
}

var (
	catalogControllerInstance *CatalogController
	onceCatalogController     sync.Once
)

func NewCatalogController(logger *zap.Logger, renderer contracts.PageRenderer, internalConfig *config.InternalConfig, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	onceCatalogController.Do(func() {
		catalogControllerInstance = &CatalogController{
			pageResponder: pageResponder{
				Log:            logger,
				Renderer:       renderer,
				InternalConfig: internalConfig,
			},
			CatalogUsecase: catalogUsecase,
		}
	})
	return catalogControllerInstance
}

func (ctrl *CatalogController) Home(w http.ResponseWriter, r *http.Request) {
	ctrl.renderCatalog(w, r, views.PageHome, constvars.AppName+" - Professional Pet Grooming")
}

func (ctrl *CatalogController) ServicesPage(w http.ResponseWriter, r *http.Request) {
	ctrl.renderCatalog(w, r, views.PageServices, "Services - "+constvars.AppName)
}

func (ctrl *CatalogController) renderCatalog(w http.ResponseWriter, r *http.Request, page, title string) {
	requestID := utils.GetRequestID(r.Context())
	query := catalogQueryFromRequest(r)
	if err := utils.ValidateStruct(query); err != nil {
		ctrl.Log.Warn("CatalogController.renderCatalog invalid query, falling back to defaults",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
		)
		query.Frequency = ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	catalog := ctrl.CatalogUsecase.LoadCatalog(ctx, query)
	ctrl.render(w, r, constvars.StatusOK, page, title, "", catalog)
}

func (ctrl *CatalogController) GetServices(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	category := r.URL.Query().Get(constvars.QueryParamCategory)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	services, err := ctrl.CatalogUsecase.ListServices(ctx, category)
	if err != nil {
		ctrl.Log.Error("CatalogController.GetServices error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCategoryKey, category),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesSuccessMessage, services)
}

func (ctrl *CatalogController) GetMemberships(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	membershipType := r.URL.Query().Get(constvars.QueryParamType)
	query := catalogQueryFromRequest(r)
	if err := utils.ValidateStruct(query); err != nil {
		ctrl.Log.Error("CatalogController.GetMemberships validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	tiers, err := ctrl.CatalogUsecase.ListMembershipTiers(ctx, membershipType, query.Frequency)
	if err != nil {
		ctrl.Log.Error("CatalogController.GetMemberships error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMembershipTypeKey, membershipType),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMembershipsSuccessMessage, tiers)
}

func catalogQueryFromRequest(r *http.Request) *requests.CatalogQuery {
	query := r.URL.Query()
	return &requests.CatalogQuery{
		Category:  query.Get(constvars.QueryParamCategory),
		Frequency: query.Get(constvars.QueryParamFrequency),
	}
}
