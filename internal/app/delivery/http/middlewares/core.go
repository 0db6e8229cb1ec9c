package middlewares

import (
	"context"
	"net"
	"net/http"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/utils"
	"strings"

	"github.com/google/uuid"
)

func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := true

		if requestID == "" {
			requestID = utils.GenerateRequestID()
			isClientRequestID = false
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VisitorMiddleware gives every browser a long lived anonymous id. Checkout
// locks and submission quotas are keyed by it.
func (m *Middlewares) VisitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := ""
		if cookie, err := r.Cookie(constvars.CookieVisitorID); err == nil {
			if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				visitorID = cookie.Value
			}
		}

		if visitorID == "" {
			visitorID = utils.GenerateVisitorID()
			http.SetCookie(w, &http.Cookie{
				Name:     constvars.CookieVisitorID,
				Value:    visitorID,
				Path:     "/",
				MaxAge:   constvars.CookieVisitorMaxAge,
				HttpOnly: true,
				Secure:   m.InternalConfig.App.IsProduction(),
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_VISITOR_ID_KEY, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP prefers the first X-Forwarded-For hop over the socket address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
