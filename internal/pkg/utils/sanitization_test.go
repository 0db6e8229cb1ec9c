package utils

import (
	"petgromee-web/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBookingForm(t *testing.T) {
	t.Run("Trims And Lowercases", func(t *testing.T) {
		form := &requests.BookingForm{
			ServiceID:       "  svc_1 ",
			CustomerName:    "  Jane Doe ",
			CustomerEmail:   "  JANE@Example.COM ",
			CustomerPhone:   " 5551234567 ",
			PetName:         " Buddy",
			PetSpecies:      " Dog ",
			PetGender:       "MALE",
			AppointmentDate: " 2026-11-02 ",
			AppointmentTime: "10:00 ",
		}

		SanitizeBookingForm(form)

		assert.Equal(t, "svc_1", form.ServiceID)
		assert.Equal(t, "Jane Doe", form.CustomerName)
		assert.Equal(t, "jane@example.com", form.CustomerEmail)
		assert.Equal(t, "5551234567", form.CustomerPhone)
		assert.Equal(t, "Buddy", form.PetName)
		assert.Equal(t, "dog", form.PetSpecies)
		assert.Equal(t, "male", form.PetGender)
		assert.Equal(t, "2026-11-02", form.AppointmentDate)
		assert.Equal(t, "10:00", form.AppointmentTime)
	})

	t.Run("Optional Fields Stay Empty", func(t *testing.T) {
		form := &requests.BookingForm{PetAge: "   ", PetWeight: "", SpecialInstructions: "  "}

		SanitizeBookingForm(form)

		assert.Empty(t, form.PetAge)
		assert.Empty(t, form.PetWeight)
		assert.Empty(t, form.SpecialInstructions)
		assert.Nil(t, form.Age())
		assert.Nil(t, form.Weight())
	})
}

func TestSanitizeMembershipCheckout(t *testing.T) {
	request := &requests.MembershipCheckout{
		MembershipPlanID: " plan_1 ",
		CustomerEmail:    " Owner@Example.com",
	}

	SanitizeMembershipCheckout(request)

	assert.Equal(t, "plan_1", request.MembershipPlanID)
	assert.Equal(t, "owner@example.com", request.CustomerEmail)
}
