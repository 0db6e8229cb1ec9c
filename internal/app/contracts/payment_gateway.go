package contracts

import (
	"context"
	"petgromee-web/internal/app/models"
)

type PaymentGatewayService interface {
	// IsConfigured reports whether a secret key was provided.
	IsConfigured() bool
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*models.PaymentIntent, error)
}
