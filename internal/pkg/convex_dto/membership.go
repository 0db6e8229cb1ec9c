package convex_dto

type MembershipPlan struct {
	ID               string   `json:"_id" validate:"required"`
	CreationTime     float64  `json:"_creationTime,omitempty"`
	BusinessID       string   `json:"businessId,omitempty"`
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description,omitempty"`
	Type             string   `json:"type" validate:"oneof=grooming daycare"`
	Price            int64    `json:"price" validate:"gte=0"`
	Interval         string   `json:"interval,omitempty"`
	SessionsIncluded int      `json:"sessionsIncluded"`
	Features         []string `json:"features,omitempty"`
	Order            int      `json:"order,omitempty"`
	IsActive         bool     `json:"isActive"`
	Popular          bool     `json:"popular,omitempty"`
	StripePriceID    string   `json:"stripePriceId,omitempty"`
}

func (m *MembershipPlan) Validate() error {
	if m == nil {
		return nil
	}
	return validateRecord(m)
}

type MembershipPlans []MembershipPlan

func (m MembershipPlans) Validate() error {
	return validateRecords(m)
}

// OfType keeps the plans of one membership type in source order.
func (m MembershipPlans) OfType(membershipType string) MembershipPlans {
	filtered := make(MembershipPlans, 0, len(m))
	for _, plan := range m {
		if plan.Type == membershipType {
			filtered = append(filtered, plan)
		}
	}
	return filtered
}

type CreateMembershipPlanArgs struct {
	BusinessID       string   `json:"businessId"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Price            int64    `json:"price"`
	Interval         string   `json:"interval"`
	SessionsIncluded int      `json:"sessionsIncluded"`
	Description      string   `json:"description"`
	Features         []string `json:"features"`
}

type UpdateMembershipPlanArgs struct {
	ID               string   `json:"id"`
	Name             *string  `json:"name,omitempty"`
	Type             *string  `json:"type,omitempty"`
	Price            *int64   `json:"price,omitempty"`
	Interval         *string  `json:"interval,omitempty"`
	SessionsIncluded *int     `json:"sessionsIncluded,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Features         []string `json:"features,omitempty"`
	Order            *int     `json:"order,omitempty"`
	IsActive         *bool    `json:"isActive,omitempty"`
}

type ReorderMembershipPlansArgs struct {
	PlanIDs []string `json:"planIds"`
}

type MembershipCheckoutArgs struct {
	MembershipPlanID string `json:"membershipPlanId"`
	CustomerEmail    string `json:"customerEmail,omitempty"`
	CustomerName     string `json:"customerName,omitempty"`
}

type StripePriceIDArgs struct {
	StripePriceID string `json:"stripePriceId"`
}
