package routers

import (
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/delivery/http/controllers"
	"petgromee-web/internal/app/delivery/http/middlewares"
	"petgromee-web/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const submissionBlockTime = 5 * time.Minute

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	catalogController *controllers.CatalogController,
	bookingController *controllers.BookingController,
	membershipController *controllers.MembershipController,
	paymentController *controllers.PaymentController,
	confirmationController *controllers.ConfirmationController,
	staticController *controllers.StaticController,
	healthController *controllers.HealthController,
) {
	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)
	router.Use(otelhttp.NewMiddleware(constvars.AppServiceName))

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "Idempotency-Key"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(mw.GlobalRateLimit())
	router.Use(mw.VisitorMiddleware)

	// Per-IP block limiter shared by every submission route.
	submissionLimiter := middlewares.NewRateLimiter(mw.Log, internalConfig.App.BookingRatePerMinute, time.Minute, submissionBlockTime)

	attachHealthRoutes(router, healthController)
	attachPageRoutes(router, catalogController, paymentController, confirmationController, staticController)
	attachBookingRoutes(router, mw, submissionLimiter, bookingController)
	attachMembershipRoutes(router, mw, submissionLimiter, membershipController)

	router.Route(constvars.RouteAPIPrefix, func(r chi.Router) {
		attachCatalogAPIRoutes(r, catalogController)
		attachBookingAPIRoutes(r, mw, submissionLimiter, bookingController)
		attachMembershipAPIRoutes(r, mw, submissionLimiter, membershipController)
		attachPaymentAPIRoutes(r, paymentController)
	})

	router.NotFound(staticController.NotFound)
}
