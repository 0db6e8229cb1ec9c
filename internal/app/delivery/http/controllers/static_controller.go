package controllers

import (
	"net/http"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/app/delivery/http/views"
	"petgromee-web/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

type StaticController struct {
	pageResponder
}

var (
	staticControllerInstance *StaticController
	onceStaticController     sync.Once
)

func NewStaticController(logger *zap.Logger, renderer contracts.PageRenderer, internalConfig *config.InternalConfig) *StaticController {
	onceStaticController.Do(func() {
		staticControllerInstance = &StaticController{
			pageResponder: pageResponder{
				Log:            logger,
				Renderer:       renderer,
				InternalConfig: internalConfig,
			},
		}
	})
	return staticControllerInstance
}

func (ctrl *StaticController) SignUp(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, r, constvars.StatusOK, views.PageSignUp, "Sign Up - "+constvars.AppName, "", nil)
}

func (ctrl *StaticController) NotFound(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, r, constvars.StatusNotFound, views.PageNotFound, constvars.ErrClientPageNotFound, "", nil)
}
