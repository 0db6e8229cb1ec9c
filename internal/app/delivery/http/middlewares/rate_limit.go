package middlewares

import (
	"net/http"
	"petgromee-web/internal/app/services/shared/ratelimiter"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// GlobalRateLimit caps requests per client IP per second across every route.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return clientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}

// SubmissionQuota counts submissions of one group per visitor in Redis so the
// quota holds across server instances. Redis failures let the request through.
func (m *Middlewares) SubmissionQuota(group string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.SubmissionLimiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			resource := utils.GetVisitorID(r.Context())
			if resource == "" {
				resource = clientIP(r)
			}

			result, err := m.SubmissionLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
				ResourceName:      resource,
				LimiterGroupName:  group,
				WindowDurationSec: constvars.RateLimitWindowInSeconds,
				MaxQuota:          m.InternalConfig.App.BookingRatePerMinute,
			})
			if err != nil {
				m.Log.Warn("Middlewares.SubmissionQuota limiter unavailable, allowing request",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !result.Allowed {
				w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(result.RetryAfterSecs))
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
