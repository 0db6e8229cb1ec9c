package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_VISITOR_ID_KEY           ContextKey = "visitor_id"
)

const (
	REQUEST_ID_PREFIX = "PGW_"
)

const (
	AppName                 = "PetGromee"
	AppServiceName          = "petgromee-web"
	AppDefaultBusinessSlug  = "test-grooming-shop"
	AppConfirmationIDLength = 8
	AppCalendarFileName     = "appointment.ics"
	AppCalendarDescription  = "Pet grooming appointment"
	AppCurrencySymbol       = "$"
)

// Redis key formats
const (
	RedisKeyBookingSubmissionFormat = "booking:submission:%s"
	RedisKeyBookingLockFormat       = "booking:lock:%s"
	RedisKeyMembershipLockFormat    = "membership:lock:%s:%s"
	RedisKeyRateLimitFormat         = "ratelimit:%s:%s:%d"
)

const (
	ContextTimeoutDefaultInSeconds = 10
	LockMembershipCheckoutTTL      = 30
	LockBookingSubmissionTTL       = 60
)

const (
	RateLimitGroupBooking    = "BOOKING"
	RateLimitGroupMembership = "MEMBERSHIP"
	RateLimitWindowInSeconds = 60
)

const CookieVisitorMaxAge = 60 * 60 * 24 * 365

// Routes
const (
	RouteHome             = "/"
	RouteServices         = "/services"
	RouteAppointment      = "/appointment"
	RouteBook             = "/book"
	RouteConfirmation     = "/confirmation"
	RoutePayment          = "/payment"
	RouteSignUp           = "/sign-up"
	RouteMemberships      = "/memberships"
	RouteHealthz          = "/healthz"
	RouteReadyz           = "/readyz"
	RouteAPIPrefix        = "/api/v1"
	RouteMembershipAnchor = "/#membership"

	ConfirmationURLFormat       = "%s/confirmation/%s"
	BookingCancelURLFormat      = "%s/book?serviceId=%s"
	ServiceBookingLinkFormat    = "/appointment?serviceId=%s"
	MembershipCheckoutURLFormat = "/memberships/%s/checkout"
	CatalogTabURLFormat         = "?category=%s&frequency=%s"
	ConfirmationCalendarFormat  = "/confirmation/%s/calendar.ics"
	ConfirmationStateQueryParam = "state"
)

const (
	QueryParamServiceID    = "serviceId"
	QueryParamCategory     = "category"
	QueryParamType         = "type"
	QueryParamFrequency    = "frequency"
	QueryParamClientSecret = "client_secret"
	QueryParamAmount       = "amount"
	URLParamServiceID      = "serviceId"
	URLParamAppointmentID  = "appointmentId"
	URLParamPlanID         = "planId"
)
