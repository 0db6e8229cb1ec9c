package catalog

import (
	"context"
	"fmt"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	dto "petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/dto/requests"
	"petgromee-web/internal/pkg/dto/responses"
	"petgromee-web/internal/pkg/exceptions"
	"petgromee-web/internal/pkg/loadable"
	"petgromee-web/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	BusinessConvexClient   contracts.BusinessConvexClient
	ServiceConvexClient    contracts.ServiceConvexClient
	MembershipConvexClient contracts.MembershipConvexClient
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(
	businessConvexClient contracts.BusinessConvexClient,
	serviceConvexClient contracts.ServiceConvexClient,
	membershipConvexClient contracts.MembershipConvexClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		catalogUsecaseInstance = newCatalogUsecase(businessConvexClient, serviceConvexClient, membershipConvexClient, internalConfig, logger)
	})
	return catalogUsecaseInstance
}

func newCatalogUsecase(
	businessConvexClient contracts.BusinessConvexClient,
	serviceConvexClient contracts.ServiceConvexClient,
	membershipConvexClient contracts.MembershipConvexClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *catalogUsecase {
	return &catalogUsecase{
		BusinessConvexClient:   businessConvexClient,
		ServiceConvexClient:    serviceConvexClient,
		MembershipConvexClient: membershipConvexClient,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// FindBusiness resolves the configured business slug. A slug without a record
// is a 404.
func (uc *catalogUsecase) FindBusiness(ctx context.Context) (*dto.Business, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	slug := uc.InternalConfig.App.BusinessSlug
	uc.Log.Info("catalogUsecase.FindBusiness called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessSlugKey, slug),
	)

	business, err := uc.BusinessConvexClient.FindBySlug(ctx, slug)
	if err != nil {
		uc.Log.Error("catalogUsecase.FindBusiness error fetching business",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if business == nil {
		uc.Log.Warn("catalogUsecase.FindBusiness business not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBusinessSlugKey, slug),
		)
		return nil, exceptions.ErrBusinessNotFound(nil, slug)
	}

	uc.Log.Info("catalogUsecase.FindBusiness succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)
	return business, nil
}

// LoadCatalog never fails as a whole. Every section carries its own state, and
// the sections that depend on the business stay not requested until it resolves.
func (uc *catalogUsecase) LoadCatalog(ctx context.Context, request *requests.CatalogQuery) *responses.CatalogPage {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	category := normalizeCategory(request.Category)
	frequency := normalizeFrequency(request.Frequency)
	uc.Log.Info("catalogUsecase.LoadCatalog called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, category),
	)

	business := loadable.Fetch(ctx, func(ctx context.Context) (*dto.Business, error) {
		return uc.BusinessConvexClient.FindBySlug(ctx, uc.InternalConfig.App.BusinessSlug)
	})
	found := func(b *dto.Business) bool { return b != nil }

	services := loadable.GoWhen(ctx, business, found, func(ctx context.Context, b *dto.Business) (dto.Services, error) {
		return uc.ServiceConvexClient.FindByBusiness(ctx, b.ID)
	})
	plans := loadable.GoWhen(ctx, business, found, func(ctx context.Context, b *dto.Business) (dto.MembershipPlans, error) {
		return uc.MembershipConvexClient.FindActiveByBusiness(ctx, b.ID)
	})

	servicesState := services.Wait(ctx)
	plansState := plans.Wait(ctx)

	page := &responses.CatalogPage{
		Business: business,
		Services: loadable.Map(servicesState, func(all dto.Services) []responses.ServiceCard {
			return buildServiceCards(FilterByCategory(all, category))
		}),
		Grooming: loadable.Map(plansState, func(all dto.MembershipPlans) []responses.MembershipTier {
			return buildMembershipTiers(all.OfType(constvars.MembershipTypeGrooming), frequency)
		}),
		Daycare: loadable.Map(plansState, func(all dto.MembershipPlans) []responses.MembershipTier {
			return buildMembershipTiers(all.OfType(constvars.MembershipTypeDaycare), frequency)
		}),
		Category:  category,
		Frequency: frequency,
		Tabs:      buildCategoryTabs(category, frequency),
	}

	for section, err := range map[string]error{
		"business": business.Err(),
		"services": servicesState.Err(),
		"plans":    plansState.Err(),
	} {
		if err != nil {
			uc.Log.Error("catalogUsecase.LoadCatalog section failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStepKey, section),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("catalogUsecase.LoadCatalog succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, !page.BusinessMissing()),
	)
	return page
}

func (uc *catalogUsecase) ListServices(ctx context.Context, category string) ([]responses.ServiceCard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	category = normalizeCategory(category)
	uc.Log.Info("catalogUsecase.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, category),
	)

	business, err := uc.FindBusiness(ctx)
	if err != nil {
		return nil, err
	}

	services, err := uc.ServiceConvexClient.FindByBusiness(ctx, business.ID)
	if err != nil {
		uc.Log.Error("catalogUsecase.ListServices error fetching services",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	cards := buildServiceCards(FilterByCategory(services, category))
	uc.Log.Info("catalogUsecase.ListServices succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(cards)),
	)
	return cards, nil
}

// ListMembershipTiers returns the active tiers of membershipType, or of every
// type when it is empty.
func (uc *catalogUsecase) ListMembershipTiers(ctx context.Context, membershipType, frequency string) ([]responses.MembershipTier, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListMembershipTiers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMembershipTypeKey, membershipType),
	)

	business, err := uc.FindBusiness(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := uc.MembershipConvexClient.FindActiveByBusiness(ctx, business.ID)
	if err != nil {
		uc.Log.Error("catalogUsecase.ListMembershipTiers error fetching memberships",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if membershipType != "" {
		plans = plans.OfType(membershipType)
	}

	tiers := buildMembershipTiers(plans, normalizeFrequency(frequency))
	uc.Log.Info("catalogUsecase.ListMembershipTiers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(tiers)),
	)
	return tiers, nil
}

// FilterByCategory keeps source order. "all" keeps everything and any other
// value is compared as is.
func FilterByCategory(services dto.Services, category string) dto.Services {
	if category == constvars.ServiceCategoryAll {
		return services
	}
	filtered := make(dto.Services, 0, len(services))
	for _, service := range services {
		if service.Category == category {
			filtered = append(filtered, service)
		}
	}
	return filtered
}

func normalizeCategory(category string) string {
	if category == "" {
		return constvars.ServiceCategoryAll
	}
	return category
}

func normalizeFrequency(frequency string) string {
	if frequency == constvars.PaymentFrequencyYearly {
		return constvars.PaymentFrequencyYearly
	}
	return constvars.PaymentFrequencyMonthly
}

func buildServiceCards(services dto.Services) []responses.ServiceCard {
	cards := make([]responses.ServiceCard, 0, len(services))
	for _, service := range services {
		cards = append(cards, responses.ServiceCard{
			ID:            service.ID,
			Name:          service.Name,
			Description:   service.Description,
			Category:      service.Category,
			Price:         service.Price,
			PriceLabel:    utils.FormatPriceWhole(service.Price),
			Duration:      service.Duration,
			DurationLabel: utils.FormatDuration(service.Duration),
			DogSize:       service.DogSize,
			BookingURL:    fmt.Sprintf(constvars.ServiceBookingLinkFormat, service.ID),
		})
	}
	return cards
}

func buildMembershipTiers(plans dto.MembershipPlans, frequency string) []responses.MembershipTier {
	tiers := make([]responses.MembershipTier, 0, len(plans))
	for _, plan := range plans {
		tier := responses.MembershipTier{
			ID:               plan.ID,
			Name:             plan.Name,
			Description:      plan.Description,
			Type:             plan.Type,
			Interval:         plan.Interval,
			Features:         plan.Features,
			SessionsIncluded: plan.SessionsIncluded,
			Popular:          plan.Popular,
			Frequency:        frequency,
			CheckoutURL:      fmt.Sprintf(constvars.MembershipCheckoutURLFormat, plan.ID),
		}
		if tier.Features == nil {
			tier.Features = []string{}
		}

		if plan.Type == constvars.MembershipTypeDaycare {
			tier.Price = utils.FormatPlanPrice(utils.MinorUnitsToMajor(plan.Price))
			tier.SessionsLabel = fmt.Sprintf(constvars.DaycareDaysLabelFormat, plan.SessionsIncluded)
		} else {
			tier.MonthlyPrice = utils.FormatPlanPrice(utils.MembershipPrice(plan.Price, constvars.PaymentFrequencyMonthly))
			tier.YearlyPrice = utils.FormatPlanPrice(utils.MembershipPrice(plan.Price, constvars.PaymentFrequencyYearly))
			tier.Price = utils.FormatPlanPrice(utils.MembershipPrice(plan.Price, frequency))
			tier.SessionsLabel = sessionsLabel(plan.SessionsIncluded)
		}
		tiers = append(tiers, tier)
	}
	return tiers
}

func sessionsLabel(sessions int) string {
	if sessions == 1 {
		return fmt.Sprintf(constvars.GroomingSessionLabelFormat, sessions)
	}
	return fmt.Sprintf(constvars.GroomingSessionsLabelFormat, sessions)
}

func buildCategoryTabs(selected, frequency string) []responses.CategoryTab {
	tabs := make([]responses.CategoryTab, 0, len(constvars.ServiceCategoryTabs))
	for _, tab := range constvars.ServiceCategoryTabs {
		tabs = append(tabs, responses.CategoryTab{
			Value:    tab.Value,
			Label:    tab.Label,
			Selected: tab.Value == selected,
			URL:      fmt.Sprintf(constvars.CatalogTabURLFormat, tab.Value, frequency),
		})
	}
	return tabs
}
