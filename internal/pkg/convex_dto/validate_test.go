package convex_dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessValidate(t *testing.T) {
	t.Run("Nil Result", func(t *testing.T) {
		var business *Business
		assert.NoError(t, business.Validate())
	})

	t.Run("Complete Record", func(t *testing.T) {
		business := &Business{ID: "biz_1", Name: "Test Grooming Shop", Slug: "test-grooming-shop"}
		assert.NoError(t, business.Validate())
	})

	t.Run("Missing Slug Reports JSON Name", func(t *testing.T) {
		business := &Business{ID: "biz_1", Name: "Test Grooming Shop"}

		err := business.Validate()
		require.Error(t, err)

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "slug", validationErrors[0].Field())
	})
}

func TestAppointmentsValidate(t *testing.T) {
	valid := Appointment{ID: "apt_1", Title: "Full Grooming for Buddy", StartTime: "10:00", EndTime: "11:30", Status: "pending"}

	assert.NoError(t, Appointments{valid}.Validate())

	broken := valid
	broken.Status = "lost"
	err := Appointments{valid, broken}.Validate()
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "status", validationErrors[0].Field())
	assert.Equal(t, "oneof", validationErrors[0].Tag())
}
