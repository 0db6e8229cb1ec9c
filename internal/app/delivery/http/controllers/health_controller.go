package controllers

import (
	"context"
	"net/http"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

type HealthController struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
}

var (
	healthControllerInstance *HealthController
	onceHealthController     sync.Once
)

func NewHealthController(logger *zap.Logger, redisRepository contracts.RedisRepository) *HealthController {
	onceHealthController.Do(func() {
		healthControllerInstance = &HealthController{
			Log:             logger,
			RedisRepository: redisRepository,
		}
	})
	return healthControllerInstance
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthyMessage, nil)
}

// Readyz fails while Redis is unreachable since bookings cannot be locked without it.
func (ctrl *HealthController) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := ctrl.RedisRepository.Ping(ctx); err != nil {
		ctrl.Log.Error("HealthController.Readyz redis ping failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.NotReadyMessage, constvars.NotReadyMessage))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReadyMessage, nil)
}
