package dto

// BillingWebhook is the payload the billing provider posts when a
// subscription changes. Entitlement maps onto a tier.
type BillingWebhook struct {
	Event BillingEvent `json:"event"`
}

type BillingEvent struct {
	Type        string `json:"type"`
	Email       string `json:"email"`
	Entitlement string `json:"entitlement"`
}
