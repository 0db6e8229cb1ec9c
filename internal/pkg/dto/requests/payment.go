package requests

type ConfirmPayment struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

type PaymentPage struct {
	ClientSecret string `validate:"required"`
	Amount       int64  `validate:"gte=0"`
}
