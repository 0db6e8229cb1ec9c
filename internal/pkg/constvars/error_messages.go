package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"number":        "must be a whole number",
	"numeric":       "must be a number",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"url":           "must be a valid URL",
	"uuid":          "must be a valid UUID",
	"datetime":      "must follow the %s layout",
	"not_past_date": "date cannot be in the past",
	"time_slot":     "must be one of the offered time slots",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"oneof":    true,
	"datetime": true,
}

// Tags whose message stands alone without the field name
var TagsWithStandaloneMessage = map[string]bool{
	"not_past_date": true,
}

// Booking form inline messages keyed by "<field>.<tag>", falling back to "<field>"
var BookingFieldValidationMessages = map[string]string{
	"serviceId":                     "Please select a service",
	"customerName":                  "Name must be at least 2 characters",
	"customerEmail":                 "Invalid email address",
	"customerPhone":                 "Phone number must be at least 10 digits",
	"petName":                       "Pet name is required",
	"petSpecies":                    "Please select a species",
	"petAge":                        "Age must be a whole number",
	"petWeight":                     "Weight must be a number",
	"petGender":                     "Please select a gender",
	"appointmentDate":               "Please select a date",
	"appointmentDate.datetime":      "Please select a valid date",
	"appointmentDate.not_past_date": "Appointment date cannot be in the past",
	"appointmentTime":               "Please select a time",
	"submissionToken":               "Your form expired, please try again",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPageNotFound                  = "This page has wandered off"
	ErrClientBusinessNotFound              = "Business not found"
	ErrClientBusinessOrServiceNotFound     = "Business or service not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientBookingFailed                 = "Failed to book appointment. Please try again."
	ErrClientBookingInProgress             = "Your booking is already being processed"
	ErrClientCheckoutFailed                = "Checkout error"
	ErrClientCheckoutInProgress            = "Checkout is already in progress for this plan"
	ErrClientBackendUnavailable            = "We could not reach our booking system, please try again"
	ErrClientPaymentFailed                 = "Payment failed"
	ErrClientPaymentUnexpected             = "An unexpected error occurred"
	ErrClientPaymentNotConfigured          = "Online payment is not available right now"
	ErrClientTooManyRequests               = "Too many requests, you are temporarily blocked."
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotParseForm           = "cannot parse form body"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevDecodeResponse            = "failed to decode response body"
	ErrDevConvexUnexpectedStatus    = "convex responded with unexpected HTTP status %d for %s"
	ErrDevConvexFunctionFailed      = "convex function %s failed: %s"
	ErrDevConvexEmptyResult         = "convex function %s returned an empty result"
	ErrDevConvexInvalidResult       = "convex function %s returned an invalid record: %s"
	ErrDevBusinessNotFound          = "no business registered under slug %s"
	ErrDevServiceNotFound           = "service %s not found for business %s"
	ErrDevAppointmentNotFound       = "appointment %s not found"
	ErrDevBookingStepFailed         = "booking step %s failed"
	ErrDevBookingLocked             = "booking submission %s is already in flight"
	ErrDevCheckoutLocked            = "membership checkout for plan %s is already in flight"
	ErrDevCheckoutFailed            = "membership checkout failed for plan %s"
	ErrDevPaymentNotConfigured      = "stripe secret key is not configured"
	ErrDevPaymentProvider           = "stripe returned an error"
	ErrDevPaymentUnexpected         = "unexpected payment confirmation failure"
	ErrDevConfirmationTokenInvalid  = "confirmation state token invalid"
	ErrDevConfirmationTokenGenerate = "failed to sign confirmation state token"
	ErrDevRedisGet                  = "failed to get redis key %s"
	ErrDevRedisSet                  = "failed to set redis key"
	ErrDevRedisDelete               = "failed to delete redis key"
	ErrDevRedisSetNX                = "failed to set redis key if not exists"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevPublishMessage            = "failed to publish message to queue %s"
	ErrDevRenderTemplate            = "failed to render template %s"
	ErrDevInvalidTime               = "invalid time of day %q"
	ErrDevInvalidDate               = "invalid calendar date %q"
)
