package requests

import "strconv"

// BookingForm is one appointment request as submitted from the booking page.
type BookingForm struct {
	SubmissionToken     string `form:"submissionToken" json:"submissionToken" validate:"omitempty,uuid"`
	ServiceID           string `form:"serviceId" json:"serviceId" validate:"required"`
	CustomerName        string `form:"customerName" json:"customerName" validate:"required,min=2"`
	CustomerEmail       string `form:"customerEmail" json:"customerEmail" validate:"required,email"`
	CustomerPhone       string `form:"customerPhone" json:"customerPhone" validate:"required,min=10"`
	PetName             string `form:"petName" json:"petName" validate:"required"`
	PetSpecies          string `form:"petSpecies" json:"petSpecies" validate:"required,oneof=dog cat"`
	PetBreed            string `form:"petBreed" json:"petBreed,omitempty"`
	PetAge              string `form:"petAge" json:"petAge,omitempty" validate:"omitempty,number"`
	PetWeight           string `form:"petWeight" json:"petWeight,omitempty" validate:"omitempty,numeric"`
	PetGender           string `form:"petGender" json:"petGender" validate:"required,oneof=male female"`
	AppointmentDate     string `form:"appointmentDate" json:"appointmentDate" validate:"required,datetime=2006-01-02,not_past_date"`
	AppointmentTime     string `form:"appointmentTime" json:"appointmentTime" validate:"required,time_slot"`
	SpecialInstructions string `form:"specialInstructions" json:"specialInstructions,omitempty" validate:"max=2000"`
}

// Age is nil when no age was entered.
func (f *BookingForm) Age() *int {
	if f.PetAge == "" {
		return nil
	}
	age, err := strconv.Atoi(f.PetAge)
	if err != nil {
		return nil
	}
	return &age
}

// Weight is nil when no weight was entered.
func (f *BookingForm) Weight() *float64 {
	if f.PetWeight == "" {
		return nil
	}
	weight, err := strconv.ParseFloat(f.PetWeight, 64)
	if err != nil {
		return nil
	}
	return &weight
}
