package convex_dto

type Appointment struct {
	ID                  string   `json:"_id" validate:"required"`
	CreationTime        float64  `json:"_creationTime,omitempty"`
	BusinessID          string   `json:"businessId,omitempty"`
	CustomerID          string   `json:"customerId,omitempty"`
	UserID              string   `json:"userId,omitempty"`
	PetID               string   `json:"petId,omitempty"`
	Title               string   `json:"title" validate:"required"`
	ScheduledDate       int64    `json:"scheduledDate" validate:"gte=0"`
	StartTime           string   `json:"startTime" validate:"required"`
	EndTime             string   `json:"endTime" validate:"required"`
	EstimatedDuration   int      `json:"estimatedDuration"`
	Status              string   `json:"status" validate:"oneof=pending confirmed in_progress completed cancelled no_show rescheduled"`
	ServiceIDs          []string `json:"serviceIds,omitempty"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`
	InternalNotes       string   `json:"internalNotes,omitempty"`
	TotalAmount         int64    `json:"totalAmount,omitempty"`
}

type Appointments []Appointment

func (a Appointments) Validate() error {
	return validateRecords(a)
}

// AppointmentDetails is an appointment joined with its customer, pet and services.
type AppointmentDetails struct {
	Appointment
	Customer *Customer `json:"customer,omitempty"`
	Pet      *Pet      `json:"pet,omitempty"`
	Services []Service `json:"services,omitempty"`
}

func (a *AppointmentDetails) Validate() error {
	if a == nil {
		return nil
	}
	return validateRecord(a)
}

// Total prefers the amount computed by the backend and falls back to the sum of service prices.
func (a *AppointmentDetails) Total() int64 {
	if a.TotalAmount > 0 {
		return a.TotalAmount
	}
	var total int64
	for _, service := range a.Services {
		total += service.Price
	}
	return total
}

type AppointmentRangeArgs struct {
	BusinessID string `json:"businessId"`
	StartMs    int64  `json:"startMs"`
	EndMs      int64  `json:"endMs"`
	PetID      string `json:"petId,omitempty"`
	Status     string `json:"status,omitempty"`
}

type CreateAppointmentArgs struct {
	AutoConfirm         *bool    `json:"autoConfirm,omitempty"`
	BusinessID          string   `json:"businessId"`
	CustomerID          string   `json:"customerId,omitempty"`
	UserID              string   `json:"userId,omitempty"`
	PetID               string   `json:"petId"`
	Title               string   `json:"title"`
	ScheduledDate       int64    `json:"scheduledDate"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	EstimatedDuration   int      `json:"estimatedDuration"`
	ServiceIDs          []string `json:"serviceIds"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`
	InternalNotes       string   `json:"internalNotes,omitempty"`
}

type RescheduleAppointmentArgs struct {
	ID            string `json:"id"`
	ScheduledDate int64  `json:"scheduledDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

type UpdateAppointmentArgs struct {
	ID                  string   `json:"id"`
	InternalNotes       *string  `json:"internalNotes,omitempty"`
	PetID               *string  `json:"petId,omitempty"`
	ServiceIDs          []string `json:"serviceIds,omitempty"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
	Status              *string  `json:"status,omitempty"`
}

type AppointmentStatusArgs struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
