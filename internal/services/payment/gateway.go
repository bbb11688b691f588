// Package payment creates hosted checkout sessions with Stripe.
package payment

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// Gateway creates hosted checkout sessions
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeGateway is a Gateway backed by the Stripe API
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway with secretKey. apiBase overrides the Stripe endpoint when set.
// Network retries are disabled; a failed call is reported to the caller as is.
func NewStripeGateway(secretKey, apiBase string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("Stripe secret key is required")
	}

	backendConfig := &stripe.BackendConfig{
		LeveledLogger:     logrus.StandardLogger(),
		MaxNetworkRetries: stripe.Int64(0),
	}
	if apiBase != "" {
		backendConfig.URL = stripe.String(apiBase)
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackend(stripe.ConnectBackend),
		Uploads: stripe.GetBackend(stripe.UploadsBackend),
	}

	return &StripeGateway{
		api: client.New(secretKey, backends),
	}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session creation failed: %w", err)
	}
	return session, nil
}
