package models

import "time"

const EventCheckoutSessionCreated = "checkout.session.created"

// CheckoutEvent is published after a checkout session has been created
type CheckoutEvent struct {
	EventID     string    `json:"eventId"`
	Type        string    `json:"type"`
	SessionID   string    `json:"sessionId"`
	Plan        string    `json:"plan"`
	Mode        string    `json:"mode"`
	Quantity    int64     `json:"quantity"`
	AmountTotal int64     `json:"amountTotal"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}
