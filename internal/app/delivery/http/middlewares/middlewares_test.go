package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/services/shared/ratelimiter"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/utils"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct{ mock.Mock }

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	args := m.Called(ctx, key, exp)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestMiddlewares(limiter *ratelimiter.ResourceLimiter) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{App: config.App{
		Env:                  "development",
		MaxRequests:          100,
		BookingRatePerMinute: 2,
	}}, limiter)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)

	t.Run("Generates Request ID", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps Client Request ID", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "client-123", seen)
	})
}

func TestVisitorMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)

	t.Run("Issues Cookie To New Visitor", func(t *testing.T) {
		var seen string
		handler := m.VisitorMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetVisitorID(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, constvars.CookieVisitorID, cookies[0].Name)
		assert.Equal(t, seen, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("Reuses Known Visitor", func(t *testing.T) {
		visitorID := uuid.NewString()
		var seen string
		handler := m.VisitorMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = utils.GetVisitorID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieVisitorID, Value: visitorID})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, visitorID, seen)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
}

func TestRateLimiter(t *testing.T) {
	clock := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Hour, time.Minute)
	limiter.now = func() time.Time { return clock }
	handler := limiter.Limit(okHandler)

	submit := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/appointment", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	codes := make([]int, 0, 4)
	var blocked *httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		blocked = submit("203.0.113.9:5555")
		codes = append(codes, blocked.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "60", blocked.Header().Get(constvars.HeaderRetryAfter))
	assert.Contains(t, blocked.Body.String(), constvars.ErrClientTooManyRequests)

	t.Run("Other Client Unaffected", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, submit("198.51.100.1:5555").Code)
	})

	t.Run("Block Expires Once The Bucket Refills", func(t *testing.T) {
		clock = clock.Add(time.Minute + time.Second)
		assert.Equal(t, http.StatusTooManyRequests, submit("203.0.113.9:5555").Code)

		clock = clock.Add(31 * time.Minute)
		assert.Equal(t, http.StatusNoContent, submit("203.0.113.9:5555").Code)
	})
}

func TestSubmissionQuota(t *testing.T) {
	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/appointment", nil)
		return req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_VISITOR_ID_KEY, "visitor-1"))
	}

	t.Run("Over Quota", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "ratelimit:BOOKING:visitor-1:")
		}), 61*time.Second).Return(3, nil)
		m := newTestMiddlewares(ratelimiter.NewResourceLimiter(repo, zap.NewNop()))

		rec := httptest.NewRecorder()
		m.SubmissionQuota(constvars.RateLimitGroupBooking)(okHandler).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("Redis Down Lets Request Through", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("dial tcp"))
		m := newTestMiddlewares(ratelimiter.NewResourceLimiter(repo, zap.NewNop()))

		rec := httptest.NewRecorder()
		m.SubmissionQuota(constvars.RateLimitGroupBooking)(okHandler).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
