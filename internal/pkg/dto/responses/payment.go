package responses

type PaymentConfirmation struct {
	PaymentIntentID string `json:"paymentIntentId"`
	Status          string `json:"status"`
	Succeeded       bool   `json:"succeeded"`
	Message         string `json:"message"`
}

type PaymentPage struct {
	ClientSecret   string `json:"clientSecret"`
	PublishableKey string `json:"publishableKey"`
	Amount         int64  `json:"amount"`
	AmountLabel    string `json:"amountLabel"`
}
