package contracts

import (
	"context"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
)

type MembershipUsecase interface {
	StartCheckout(ctx context.Context, request *requests.MembershipCheckout) (*responses.CheckoutResult, error)
}
