package utils

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldNameFromTags)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
	validate.RegisterValidation("time_slot", validateTimeSlot)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// fieldNameFromTags reports fields by their form name, then json name, so messages
// line up with the inputs the visitor sees.
func fieldNameFromTags(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

func validateNotPastDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return !IsPastDate(value, time.Now())
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return IsTimeSlot(fl.Field().String())
}
