package routers

import (
	"petgromee-web/internal/app/delivery/http/controllers"
	"petgromee-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachHealthRoutes(router chi.Router, healthController *controllers.HealthController) {
	router.Get(constvars.RouteHealthz, healthController.Healthz)
	router.Get(constvars.RouteReadyz, healthController.Readyz)
}

func attachPageRoutes(
	router chi.Router,
	catalogController *controllers.CatalogController,
	paymentController *controllers.PaymentController,
	confirmationController *controllers.ConfirmationController,
	staticController *controllers.StaticController,
) {
	router.Get(constvars.RouteHome, catalogController.Home)
	router.Get(constvars.RouteServices, catalogController.ServicesPage)
	router.Get(constvars.RoutePayment, paymentController.Page)
	router.Get(constvars.RouteSignUp, staticController.SignUp)
	router.Get(constvars.RouteConfirmation+"/{appointmentId}", confirmationController.Page)
	router.Get(constvars.RouteConfirmation+"/{appointmentId}/calendar.ics", confirmationController.Calendar)
}

func attachCatalogAPIRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get(constvars.RouteServices, catalogController.GetServices)
	router.Get(constvars.RouteMemberships, catalogController.GetMemberships)
}

func attachPaymentAPIRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Post("/payments/confirm", paymentController.ConfirmPayment)
}
