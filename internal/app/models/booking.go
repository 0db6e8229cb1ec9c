package models

// BookingSubmission is what a booking leaves behind under its submission
// token. With a checkout URL a resubmitted form gets the same checkout page;
// without one the retry resumes at the checkout step.
type BookingSubmission struct {
	SubmissionToken string `json:"submissionToken"`
	CustomerID      string `json:"customerId,omitempty"`
	PetID           string `json:"petId,omitempty"`
	AppointmentID   string `json:"appointmentId"`
	ScheduledDate   int64  `json:"scheduledDate,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	CheckoutURL     string `json:"checkoutUrl"`
	TimeModel
}

type BookingEvent struct {
	EventID         string `json:"eventId"`
	Type            string `json:"type"`
	SubmissionToken string `json:"submissionToken,omitempty"`
	BusinessID      string `json:"businessId"`
	ServiceID       string `json:"serviceId"`
	CustomerID      string `json:"customerId"`
	PetID           string `json:"petId"`
	AppointmentID   string `json:"appointmentId"`
	ScheduledDate   int64  `json:"scheduledDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	CheckoutURL     string `json:"checkoutUrl"`
	TimeModel
}
