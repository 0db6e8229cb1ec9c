package responses

import (
	"petgromee-web/internal/pkg/convex_dto"
	"petgromee-web/internal/pkg/loadable"
)

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ServiceCard struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category"`
	Price         int64  `json:"price"`
	PriceLabel    string `json:"priceLabel"`
	Duration      int    `json:"duration"`
	DurationLabel string `json:"durationLabel"`
	DogSize       string `json:"dogSize,omitempty"`
	BookingURL    string `json:"bookingUrl"`
}

type MembershipTier struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Type             string   `json:"type"`
	Interval         string   `json:"interval,omitempty"`
	Features         []string `json:"features"`
	SessionsIncluded int      `json:"sessionsIncluded"`
	SessionsLabel    string   `json:"sessionsLabel"`
	Popular          bool     `json:"popular"`
	MonthlyPrice     string   `json:"monthlyPrice"`
	YearlyPrice      string   `json:"yearlyPrice"`
	Price            string   `json:"price"`
	Frequency        string   `json:"frequency"`
	CheckoutURL      string   `json:"checkoutUrl"`
}

type CategoryTab struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
	URL      string `json:"url"`
}

// CatalogPage backs the home and services pages. Each section is rendered as a
// placeholder until its read has loaded.
type CatalogPage struct {
	Business  loadable.State[*convex_dto.Business]
	Services  loadable.State[[]ServiceCard]
	Grooming  loadable.State[[]MembershipTier]
	Daycare   loadable.State[[]MembershipTier]
	Category  string
	Frequency string
	Tabs      []CategoryTab
}

// BusinessMissing is true once the lookup finished without a record.
func (p *CatalogPage) BusinessMissing() bool {
	business, ok := p.Business.Value()
	return ok && business == nil
}
