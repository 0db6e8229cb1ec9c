package contracts

import (
	"context"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	PrepareForm(ctx context.Context, serviceID string) (*responses.BookingPage, error)
	SubmitBooking(ctx context.Context, request *requests.BookingForm) (*responses.BookingResult, error)
}
