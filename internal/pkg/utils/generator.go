package utils

import (
	"petgromee-web/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateSubmissionToken issues the client side idempotency key embedded in the booking form.
func GenerateSubmissionToken() string {
	return uuid.NewString()
}

func GenerateVisitorID() string {
	return uuid.NewString()
}

// GenerateConfirmationStateJWT binds a confirmation return link to one appointment.
func GenerateConfirmationStateJWT(appointmentID, secret string, expiryInHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"appointment_id": appointmentID,
		"exp":            time.Now().Add(time.Duration(expiryInHours) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
