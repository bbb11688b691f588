package models

// Plan identifiers accepted by the checkout endpoint
const (
	PlanCredits   = "credits"
	PlanUnlimited = "unlimited"
)

// Pricing in the smallest currency unit
const (
	CreditUnitAmount       int64 = 50
	MinCreditQuantity      int64 = 10
	UnlimitedMonthlyAmount int64 = 1900
)

// CheckoutRequest represents a plan selection
type CheckoutRequest struct {
	Plan     string `json:"plan" example:"credits"`
	Quantity *int64 `json:"quantity,omitempty" example:"25"`
}

// CheckoutResponse holds the hosted checkout redirect URL
type CheckoutResponse struct {
	URL string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_test_123"`
}
