package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/listingai/listingai-backend/internal/config"
	"github.com/listingai/listingai-backend/internal/models"
	"github.com/listingai/listingai-backend/internal/services/payment"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v81"
)

var ErrInvalidPlan = errors.New("invalid plan")

const eventPublishTimeout = 5 * time.Second

// CheckoutService turns a plan selection into a hosted checkout session
type CheckoutService struct {
	gateway   payment.Gateway
	cfg       config.PaymentConfig
	publisher EventPublisher
	timeout   time.Duration
}

// NewCheckoutService creates the service. publisher may be nil.
func NewCheckoutService(gateway payment.Gateway, cfg config.PaymentConfig, publisher EventPublisher, timeout time.Duration) *CheckoutService {
	return &CheckoutService{
		gateway:   gateway,
		cfg:       cfg,
		publisher: publisher,
		timeout:   timeout,
	}
}

// CreateCheckoutSession validates the plan, creates the session and returns its redirect URL
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	params, quantity, err := s.BuildSessionParams(req)
	if err != nil {
		return nil, err
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	session, err := s.gateway.CreateCheckoutSession(callCtx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	logrus.Infof("Created checkout session %s for plan %s (quantity %d)", session.ID, req.Plan, quantity)

	s.publishCreated(ctx, req.Plan, quantity, params, session)

	return &models.CheckoutResponse{URL: session.URL}, nil
}

// BuildSessionParams returns the Stripe session parameters for req and the billed quantity
func (s *CheckoutService) BuildSessionParams(req *models.CheckoutRequest) (*stripe.CheckoutSessionParams, int64, error) {
	var (
		item     *stripe.CheckoutSessionLineItemParams
		mode     stripe.CheckoutSessionMode
		quantity int64
	)

	switch req.Plan {
	case models.PlanCredits:
		quantity = EffectiveCreditQuantity(req.Quantity)
		mode = stripe.CheckoutSessionModePayment
		item = &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(s.cfg.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(fmt.Sprintf("%d Listing Credits", quantity)),
					Description: stripe.String("AI-generated product listings. Never expire."),
				},
				UnitAmount: stripe.Int64(models.CreditUnitAmount),
			},
			Quantity: stripe.Int64(quantity),
		}
	case models.PlanUnlimited:
		quantity = 1
		mode = stripe.CheckoutSessionModeSubscription
		item = &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(s.cfg.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String("ListingAI Unlimited"),
					Description: stripe.String("Unlimited AI-generated listings per month"),
				},
				UnitAmount: stripe.Int64(models.UnlimitedMonthlyAmount),
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
				},
			},
			Quantity: stripe.Int64(quantity),
		}
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidPlan, req.Plan)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          []*stripe.CheckoutSessionLineItemParams{item},
		Mode:               stripe.String(string(mode)),
		SuccessURL:         stripe.String(s.cfg.SuccessURL()),
		CancelURL:          stripe.String(s.cfg.CancelURL()),
	}
	return params, quantity, nil
}

// EffectiveCreditQuantity applies the credit minimum; nil means the minimum
func EffectiveCreditQuantity(requested *int64) int64 {
	if requested == nil || *requested < models.MinCreditQuantity {
		return models.MinCreditQuantity
	}
	return *requested
}

func (s *CheckoutService) publishCreated(ctx context.Context, plan string, quantity int64, params *stripe.CheckoutSessionParams, session *stripe.CheckoutSession) {
	if s.publisher == nil {
		return
	}

	amount := session.AmountTotal
	if amount == 0 {
		amount = quantity * *params.LineItems[0].PriceData.UnitAmount
	}

	event := &models.CheckoutEvent{
		EventID:     uuid.NewString(),
		Type:        models.EventCheckoutSessionCreated,
		SessionID:   session.ID,
		Plan:        plan,
		Mode:        *params.Mode,
		Quantity:    quantity,
		AmountTotal: amount,
		Currency:    s.cfg.Currency,
		CreatedAt:   time.Now().UTC(),
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()
	if err := s.publisher.PublishCheckoutEvent(pubCtx, event); err != nil {
		logrus.Warnf("Failed to publish checkout event for session %s: %v", session.ID, err)
	}
}
