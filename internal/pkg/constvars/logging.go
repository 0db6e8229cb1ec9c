package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingStepsKey          = "steps"
	LoggingErrorTypeKey      = "error_type"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingClientIPKey   = "client_ip"
	LoggingRetryAfterKey = "retry_after"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"

	LoggingConvexPathKey     = "convex_path"
	LoggingConvexKindKey     = "convex_kind"
	LoggingConvexURLKey      = "convex_url"
	LoggingConvexLogLinesKey = "convex_log_lines"
	LoggingBusinessSlugKey   = "business_slug"
	LoggingBusinessIDKey     = "business_id"
	LoggingServiceIDKey      = "service_id"
	LoggingCustomerIDKey     = "customer_id"
	LoggingPetIDKey          = "pet_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingMembershipIDKey   = "membership_plan_id"
	LoggingCategoryKey       = "category"
	LoggingMembershipTypeKey = "membership_type"
	LoggingSubmissionKey     = "submission_token"
	LoggingCheckoutURLKey    = "checkout_url"
	LoggingStartTimeKey      = "start_time"
	LoggingEndTimeKey        = "end_time"
	LoggingStepKey           = "step"
	LoggingPaymentIntentKey  = "payment_intent_id"
	LoggingPaymentStatusKey  = "payment_status"
	LoggingQueueKey          = "queue"
	LoggingTemplateKey       = "template"
	LoggingVisitorIDKey      = "visitor_id"
)
