package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	t.Run("posts form encoded session and decodes response", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "subscription", r.PostForm.Get("mode"))
			assert.Equal(t, "1900", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "month", r.PostForm.Get("line_items[0][price_data][recurring][interval]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "cs_test_1",
				"object": "checkout.session",
				"mode": "subscription",
				"currency": "usd",
				"amount_total": 1900,
				"url": "https://checkout.stripe.com/c/pay/cs_test_1"
			}`))
		}))
		defer srv.Close()

		g, err := NewStripeGateway("sk_test_123", srv.URL)
		require.NoError(t, err)

		session, err := g.CreateCheckoutSession(context.Background(), &stripe.CheckoutSessionParams{
			Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
			LineItems: []*stripe.CheckoutSessionLineItemParams{{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(1900),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("ListingAI Unlimited"),
					},
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String("month"),
					},
				},
				Quantity: stripe.Int64(1),
			}},
			SuccessURL: stripe.String("http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:  stripe.String("http://localhost:3000/generate"),
		})
		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", session.ID)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)
		assert.Equal(t, int64(1900), session.AmountTotal)
		assert.Equal(t, 1, calls)
	})

	t.Run("provider error is not retried", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"boom"}}`))
		}))
		defer srv.Close()

		g, err := NewStripeGateway("sk_test_123", srv.URL)
		require.NoError(t, err)

		_, err = g.CreateCheckoutSession(context.Background(), &stripe.CheckoutSessionParams{
			Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestNewStripeGateway_RequiresKey(t *testing.T) {
	_, err := NewStripeGateway("", "")
	assert.Error(t, err)
}
