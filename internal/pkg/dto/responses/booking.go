package responses

import "petgromee-web/internal/pkg/dto/requests"

type BookingResult struct {
	AppointmentID string `json:"appointmentId,omitempty"`
	CheckoutURL   string `json:"checkoutUrl,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
	Replayed      bool   `json:"replayed"`
}

type CheckoutResult struct {
	MembershipPlanID string `json:"membershipPlanId"`
	CheckoutURL      string `json:"checkoutUrl,omitempty"`
}

type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ServiceOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Label         string `json:"label"`
	PriceLabel    string `json:"priceLabel"`
	DurationLabel string `json:"durationLabel"`
	Selected      bool   `json:"selected"`
}

// BookingPage carries everything the appointment form renders, including the
// values and inline errors of a rejected submission.
type BookingPage struct {
	BusinessFound   bool                 `json:"businessFound"`
	Services        []ServiceOption      `json:"services"`
	SelectedService *ServiceOption       `json:"selectedService,omitempty"`
	Slots           []TimeSlot           `json:"slots"`
	SubmissionToken string               `json:"submissionToken"`
	MinDate         string               `json:"minDate"`
	Form            requests.BookingForm `json:"form"`
	Errors          map[string]string    `json:"errors,omitempty"`
}
