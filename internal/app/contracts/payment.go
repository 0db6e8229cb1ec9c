package contracts

import (
	"context"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	PreparePage(ctx context.Context, request *requests.PaymentPage) (*responses.PaymentPage, error)
	ConfirmPayment(ctx context.Context, request *requests.ConfirmPayment) (*responses.PaymentConfirmation, error)
}
