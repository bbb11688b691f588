package config

import "strings"

// PaymentConfig holds Stripe and redirect settings
type PaymentConfig struct {
	StripeSecretKey string
	// StripeAPIBase overrides the Stripe API endpoint, used against mock servers
	StripeAPIBase string
	PublicBaseURL string
	Currency      string
}

// GetPaymentConfig returns payment configuration from environment variables
func GetPaymentConfig() PaymentConfig {
	return PaymentConfig{
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		StripeAPIBase:   getEnv("STRIPE_API_BASE", ""),
		PublicBaseURL:   strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		Currency:        strings.ToLower(getEnv("CHECKOUT_CURRENCY", "usd")),
	}
}

// SuccessURL is where the provider sends the buyer after paying.
// {CHECKOUT_SESSION_ID} is substituted by Stripe.
func (c PaymentConfig) SuccessURL() string {
	return c.PublicBaseURL + "/success?session_id={CHECKOUT_SESSION_ID}"
}

// CancelURL returns the buyer to the generator page
func (c PaymentConfig) CancelURL() string {
	return c.PublicBaseURL + "/generate"
}
