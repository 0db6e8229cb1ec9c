package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Catalog
	GetBusinessSuccessMessage    = "get business successfully"
	GetServicesSuccessMessage    = "get services successfully"
	GetMembershipsSuccessMessage = "get memberships successfully"
	GetTimeSlotsSuccessMessage   = "get time slots successfully"

	// Booking
	CreateBookingSuccessMessage   = "booking created, continue to checkout"
	GetConfirmationSuccessMessage = "get appointment confirmation successfully"
	CreateCheckoutSuccessMessage  = "checkout session created successfully"
	ConfirmPaymentSuccessMessage  = "Payment successful!"
	ConfirmPaymentPendingMessage  = "payment is not completed yet"
	HealthyMessage                = "ok"
	ReadyMessage                  = "ready"
	NotReadyMessage               = "not ready"
)
