package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/delivery/http/controllers"
	"petgromee-web/internal/app/delivery/http/middlewares"
	"petgromee-web/internal/app/delivery/http/routers"
	"petgromee-web/internal/app/delivery/http/views"
	"petgromee-web/internal/app/drivers/database"
	"petgromee-web/internal/app/drivers/logger"
	"petgromee-web/internal/app/drivers/messaging"
	"petgromee-web/internal/app/drivers/tracing"
	"petgromee-web/internal/app/services/convex"
	convex_appointments "petgromee-web/internal/app/services/convex/appointments"
	convex_businesses "petgromee-web/internal/app/services/convex/businesses"
	convex_customers "petgromee-web/internal/app/services/convex/customers"
	convex_memberships "petgromee-web/internal/app/services/convex/memberships"
	convex_pets "petgromee-web/internal/app/services/convex/pets"
	convex_services "petgromee-web/internal/app/services/convex/services"
	convex_stripe "petgromee-web/internal/app/services/convex/stripe"
	"petgromee-web/internal/app/services/core/bookings"
	"petgromee-web/internal/app/services/core/catalog"
	"petgromee-web/internal/app/services/core/confirmations"
	"petgromee-web/internal/app/services/core/memberships"
	"petgromee-web/internal/app/services/core/payments"
	"petgromee-web/internal/app/services/shared/bookingevents"
	"petgromee-web/internal/app/services/shared/locker"
	"petgromee-web/internal/app/services/shared/payment_gateway"
	"petgromee-web/internal/app/services/shared/ratelimiter"
	"petgromee-web/internal/app/services/shared/redis"
	"petgromee-web/internal/pkg/utils"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version and Tag are set at build time through -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	utils.SetExposeDevMessages(!internalConfig.App.IsProduction())

	tracerShutdown, err := tracing.Setup(context.Background(), internalConfig.OTEL)
	if err != nil {
		zapLogger.Fatal("Failed to set up tracing", zap.Error(err))
	}

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, internalConfig.App.RabbitMQBookingQueue)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		TracerShutdown: tracerShutdown,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("port", internalConfig.App.Port),
			zap.String("version", Version),
			zap.String("tag", Tag),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	submissionLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, submissionLimiter)

	// Convex
	convexClient := convex.NewConvexClient(bootstrap.InternalConfig.Convex.Url, bootstrap.Logger)
	businessConvexClient := convex_businesses.NewBusinessConvexClient(convexClient, bootstrap.Logger)
	serviceConvexClient := convex_services.NewServiceConvexClient(convexClient, bootstrap.Logger)
	membershipConvexClient := convex_memberships.NewMembershipConvexClient(convexClient, bootstrap.Logger)
	customerConvexClient := convex_customers.NewCustomerConvexClient(convexClient, bootstrap.Logger)
	petConvexClient := convex_pets.NewPetConvexClient(convexClient, bootstrap.Logger)
	appointmentConvexClient := convex_appointments.NewAppointmentConvexClient(convexClient, bootstrap.Logger)
	stripeConvexClient := convex_stripe.NewStripeConvexClient(convexClient, bootstrap.Logger)

	// Shared
	stripeService := payment_gateway.NewStripeService(bootstrap.InternalConfig.Stripe.SecretKey, bootstrap.Logger)
	bookingEventPublisher := bookingevents.NewBookingEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQBookingQueue, bootstrap.Logger)

	// Usecases
	catalogUsecase := catalog.NewCatalogUsecase(businessConvexClient, serviceConvexClient, membershipConvexClient, bootstrap.InternalConfig, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(
		businessConvexClient,
		serviceConvexClient,
		customerConvexClient,
		petConvexClient,
		appointmentConvexClient,
		stripeConvexClient,
		redisRepository,
		lockService,
		bookingEventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	membershipUsecase := memberships.NewMembershipUsecase(membershipConvexClient, lockService, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(stripeService, bootstrap.InternalConfig, bootstrap.Logger)
	confirmationUsecase := confirmations.NewConfirmationUsecase(appointmentConvexClient, bootstrap.InternalConfig, bootstrap.Logger)

	// Controllers
	renderer := views.NewPageRenderer(bootstrap.InternalConfig, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, renderer, bootstrap.InternalConfig, catalogUsecase)
	bookingController := controllers.NewBookingController(bootstrap.Logger, renderer, bootstrap.InternalConfig, bookingUsecase)
	membershipController := controllers.NewMembershipController(bootstrap.Logger, renderer, bootstrap.InternalConfig, membershipUsecase)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, renderer, bootstrap.InternalConfig, paymentUsecase)
	confirmationController := controllers.NewConfirmationController(bootstrap.Logger, renderer, bootstrap.InternalConfig, confirmationUsecase)
	staticController := controllers.NewStaticController(bootstrap.Logger, renderer, bootstrap.InternalConfig)
	healthController := controllers.NewHealthController(bootstrap.Logger, redisRepository)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		catalogController,
		bookingController,
		membershipController,
		paymentController,
		confirmationController,
		staticController,
		healthController,
	)
}
