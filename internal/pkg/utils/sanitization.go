package utils

import (
	"petgromee-web/internal/pkg/dto/requests"
	"strings"
)

func SanitizeBookingForm(input *requests.BookingForm) {
	input.SubmissionToken = strings.TrimSpace(input.SubmissionToken)
	input.ServiceID = strings.TrimSpace(input.ServiceID)
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerEmail = strings.ToLower(strings.TrimSpace(input.CustomerEmail))
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	input.PetName = strings.TrimSpace(input.PetName)
	input.PetSpecies = strings.ToLower(strings.TrimSpace(input.PetSpecies))
	input.PetBreed = strings.TrimSpace(input.PetBreed)
	input.PetAge = strings.TrimSpace(input.PetAge)
	input.PetWeight = strings.TrimSpace(input.PetWeight)
	input.PetGender = strings.ToLower(strings.TrimSpace(input.PetGender))
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.SpecialInstructions = strings.TrimSpace(input.SpecialInstructions)
}

func SanitizeMembershipCheckout(input *requests.MembershipCheckout) {
	input.MembershipPlanID = strings.TrimSpace(input.MembershipPlanID)
	input.CustomerEmail = strings.ToLower(strings.TrimSpace(input.CustomerEmail))
	input.CustomerName = strings.TrimSpace(input.CustomerName)
}

func SanitizeConfirmPayment(input *requests.ConfirmPayment) {
	input.PaymentIntentID = strings.TrimSpace(input.PaymentIntentID)
}
