package routers

import (
	"petgromee-web/internal/app/delivery/http/controllers"
	"petgromee-web/internal/app/delivery/http/middlewares"
	"petgromee-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, mw *middlewares.Middlewares, limiter *middlewares.RateLimiter, bookingController *controllers.BookingController) {
	router.Get(constvars.RouteAppointment, bookingController.ShowForm)
	router.Get(constvars.RouteBook, bookingController.ShowForm)
	router.Get(constvars.RouteBook+"/{serviceId}", bookingController.ShowForm)

	router.With(limiter.Limit, mw.SubmissionQuota(constvars.RateLimitGroupBooking)).
		Post(constvars.RouteAppointment, bookingController.Submit)
}

func attachBookingAPIRoutes(router chi.Router, mw *middlewares.Middlewares, limiter *middlewares.RateLimiter, bookingController *controllers.BookingController) {
	router.With(limiter.Limit, mw.SubmissionQuota(constvars.RateLimitGroupBooking)).
		Post("/bookings", bookingController.CreateBooking)
}
