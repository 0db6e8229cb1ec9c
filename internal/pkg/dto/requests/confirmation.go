package requests

type Confirmation struct {
	AppointmentID string `validate:"required"`
	State         string
}
