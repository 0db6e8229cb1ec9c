package config

import (
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", "development"),
			Port:                           utils.GetEnvString("APP_PORT", "8080"),
			BaseUrl:                        strings.TrimSuffix(utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"), "/"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "UTC"),
			BusinessSlug:                   utils.GetEnvString("APP_BUSINESS_SLUG", constvars.AppDefaultBusinessSlug),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:        utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", constvars.ContextTimeoutDefaultInSeconds),
			BookingRatePerMinute:           utils.GetEnvInt("APP_BOOKING_RATE_PER_MINUTE", 10),
			SubmissionTokenTTLInMinutes:    utils.GetEnvInt("APP_SUBMISSION_TOKEN_TTL_IN_MINUTES", 30),
			ConfirmationSecret:             utils.GetEnvString("APP_CONFIRMATION_SECRET", ""),
			ConfirmationStateExpiryInHours: utils.GetEnvInt("APP_CONFIRMATION_STATE_EXPIRY_IN_HOURS", 72),
			RabbitMQBookingQueue:           utils.GetEnvString("APP_RABBITMQ_BOOKING_QUEUE", "booking_events"),
			AllowedOrigins:                 utils.GetEnvList("APP_ALLOWED_ORIGINS", []string{"*"}),
		},
		Convex: Convex{
			Url: strings.TrimSuffix(utils.GetEnvString("CONVEX_URL", ""), "/"),
		},
		Stripe: Stripe{
			PublishableKey: utils.GetEnvString("STRIPE_PUBLISHABLE_KEY", ""),
			SecretKey:      utils.GetEnvString("STRIPE_SECRET_KEY", ""),
		},
		Clerk: Clerk{
			PublishableKey: utils.GetEnvString("CLERK_PUBLISHABLE_KEY", ""),
		},
		OTEL: OTEL{
			Enabled:       utils.GetEnvBool("OTEL_ENABLED", false),
			Endpoint:      utils.GetEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			SamplingRatio: utils.GetEnvFloat("OTEL_SAMPLING_RATIO", 1.0),
		},
	}
}
