package models

type PaymentIntent struct {
	ID       string
	Status   string
	Amount   int64
	Currency string
}
