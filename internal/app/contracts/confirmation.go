package contracts

import (
	"context"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
)

type ConfirmationUsecase interface {
	FindConfirmation(ctx context.Context, request *requests.Confirmation) (*responses.Confirmation, error)
	BuildCalendarFile(ctx context.Context, request *requests.Confirmation) (*responses.CalendarFile, error)
}
