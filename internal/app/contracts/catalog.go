package contracts

import (
	"context"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	FindBusiness(ctx context.Context) (*dto.Business, error)
	LoadCatalog(ctx context.Context, request *requests.CatalogQuery) *responses.CatalogPage
	ListServices(ctx context.Context, category string) ([]responses.ServiceCard, error)
	ListMembershipTiers(ctx context.Context, membershipType, frequency string) ([]responses.MembershipTier, error)
}
