package middlewares

import (
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	InternalConfig    *config.InternalConfig
	SubmissionLimiter *ratelimiter.ResourceLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, submissionLimiter *ratelimiter.ResourceLimiter) *Middlewares {
	return &Middlewares{
		Log:               logger,
		InternalConfig:    internalConfig,
		SubmissionLimiter: submissionLimiter,
	}
}
