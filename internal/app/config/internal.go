package config

type InternalConfig struct {
	App    App    `mapstructure:"app"`
	Convex Convex `mapstructure:"convex"`
	Stripe Stripe `mapstructure:"stripe"`
	Clerk  Clerk  `mapstructure:"clerk"`
	OTEL   OTEL   `mapstructure:"otel"`
}

type App struct {
	Env                            string   `mapstructure:"env"`
	Port                           string   `mapstructure:"port"`
	BaseUrl                        string   `mapstructure:"base_url"`
	Timezone                       string   `mapstructure:"timezone"`
	BusinessSlug                   string   `mapstructure:"business_slug"`
	MaxRequests                    int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds       int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds        int      `mapstructure:"request_timeout_in_seconds"`
	BookingRatePerMinute           int      `mapstructure:"booking_rate_per_minute"`
	SubmissionTokenTTLInMinutes    int      `mapstructure:"submission_token_ttl_in_minutes"`
	ConfirmationSecret             string   `mapstructure:"confirmation_secret"`
	ConfirmationStateExpiryInHours int      `mapstructure:"confirmation_state_expiry_in_hours"`
	RabbitMQBookingQueue           string   `mapstructure:"rabbitmq_booking_queue"`
	AllowedOrigins                 []string `mapstructure:"allowed_origins"`
}

type Convex struct {
	Url string `mapstructure:"url"`
}

type Stripe struct {
	PublishableKey string `mapstructure:"publishable_key"`
	SecretKey      string `mapstructure:"secret_key"`
}

type Clerk struct {
	PublishableKey string `mapstructure:"publishable_key"`
}

type OTEL struct {
	Enabled       bool    `mapstructure:"enabled"`
	Endpoint      string  `mapstructure:"endpoint"`
	SamplingRatio float64 `mapstructure:"sampling_ratio"`
}

func (a App) IsProduction() bool {
	return a.Env == "production"
}
