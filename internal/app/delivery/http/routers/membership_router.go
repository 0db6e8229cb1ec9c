package routers

import (
	"petgromee-web/internal/app/delivery/http/controllers"
	"petgromee-web/internal/app/delivery/http/middlewares"
	"petgromee-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMembershipRoutes(router chi.Router, mw *middlewares.Middlewares, limiter *middlewares.RateLimiter, membershipController *controllers.MembershipController) {
	router.With(limiter.Limit, mw.SubmissionQuota(constvars.RateLimitGroupMembership)).
		Post(constvars.RouteMemberships+"/{planId}/checkout", membershipController.Checkout)
}

func attachMembershipAPIRoutes(router chi.Router, mw *middlewares.Middlewares, limiter *middlewares.RateLimiter, membershipController *controllers.MembershipController) {
	router.With(limiter.Limit, mw.SubmissionQuota(constvars.RateLimitGroupMembership)).
		Post(constvars.RouteMemberships+"/{planId}/checkout", membershipController.CreateCheckout)
}
