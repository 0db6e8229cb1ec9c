package middlewares

import (
	"math"
	"net/http"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter guards submission routes with one token bucket per client IP.
// The bucket holds quota submissions and refills over per; a client that
// empties it is turned away for blockTime.
type RateLimiter struct {
	Log       *zap.Logger
	mu        sync.Mutex
	clients   map[string]*submissionClient
	quota     int
	refill    rate.Limit
	blockTime time.Duration
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type submissionClient struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

func NewRateLimiter(logger *zap.Logger, quota int, per, blockTime time.Duration) *RateLimiter {
	if quota < 1 {
		quota = 1
	}
	idleAfter := per
	if blockTime > idleAfter {
		idleAfter = blockTime
	}
	return &RateLimiter{
		Log:       logger,
		clients:   make(map[string]*submissionClient),
		quota:     quota,
		refill:    rate.Every(per / time.Duration(quota)),
		blockTime: blockTime,
		idleAfter: idleAfter,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		retryAfter, allowed := rl.admit(ip)
		if !allowed {
			rl.Log.Warn("RateLimiter.Limit submission blocked",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingClientIPKey, ip),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Duration(constvars.LoggingRetryAfterKey, retryAfter),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			utils.BuildErrorResponse(rl.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// admit reports whether ip may submit now, and otherwise how long it stays blocked.
func (rl *RateLimiter) admit(ip string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.forgetIdle(now)

	client, ok := rl.clients[ip]
	if !ok {
		client = &submissionClient{limiter: rate.NewLimiter(rl.refill, rl.quota)}
		rl.clients[ip] = client
	}
	client.lastSeen = now

	if now.Before(client.blockedUntil) {
		return client.blockedUntil.Sub(now), false
	}
	if !client.limiter.AllowN(now, 1) {
		client.blockedUntil = now.Add(rl.blockTime)
		return rl.blockTime, false
	}
	return 0, true
}

// forgetIdle drops clients whose bucket has refilled and whose block has
// expired. It sweeps at most once per idle window.
func (rl *RateLimiter) forgetIdle(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.idleAfter {
		return
	}
	rl.lastSweep = now
	for ip, client := range rl.clients {
		if now.After(client.blockedUntil) && now.Sub(client.lastSeen) > rl.idleAfter {
			delete(rl.clients, ip)
		}
	}
}
