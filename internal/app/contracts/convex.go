package contracts

import (
	"context"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/convexapi"
)

type ConvexCaller interface {
	convexapi.Caller
}

type BusinessConvexClient interface {
	FindBySlug(ctx context.Context, slug string) (*dto.Business, error)
}

type ServiceConvexClient interface {
	FindByBusiness(ctx context.Context, businessID string) (dto.Services, error)
}

type MembershipConvexClient interface {
	FindActiveByBusiness(ctx context.Context, businessID string) (dto.MembershipPlans, error)
	CreateCheckout(ctx context.Context, request *dto.MembershipCheckoutArgs) (string, error)
}

type CustomerConvexClient interface {
	CreateCustomer(ctx context.Context, request *dto.CreateCustomerArgs) (string, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

type PetConvexClient interface {
	CreatePet(ctx context.Context, request *dto.CreatePetArgs) (string, error)
	DeletePet(ctx context.Context, petID string) error
}

type AppointmentConvexClient interface {
	CreateAppointment(ctx context.Context, request *dto.CreateAppointmentArgs) (string, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	FindDetails(ctx context.Context, appointmentID string) (*dto.AppointmentDetails, error)
}

type StripeConvexClient interface {
	CreateAppointmentCheckout(ctx context.Context, request *dto.AppointmentCheckoutArgs) (string, error)
}
