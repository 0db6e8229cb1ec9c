package convex_dto

type CreateCheckoutSessionArgs struct {
	BusinessID string `json:"businessId"`
	CancelURL  string `json:"cancelUrl"`
	Email      string `json:"email"`
	SuccessURL string `json:"successUrl"`
}

type CreatePortalSessionArgs struct {
	StripeCustomerID string `json:"stripeCustomerId"`
}

type AppointmentCheckoutArgs struct {
	AppointmentID string `json:"appointmentId"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	SuccessURL    string `json:"successUrl"`
	CancelURL     string `json:"cancelUrl"`
}
