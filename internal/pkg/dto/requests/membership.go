package requests

type MembershipCheckout struct {
	MembershipPlanID string `json:"membershipPlanId" validate:"required"`
	CustomerEmail    string `form:"customerEmail" json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerName     string `form:"customerName" json:"customerName,omitempty"`
}
