package models

// PaymentInfo is the shared payout instructions, e.g. a mobile-wallet number.
// There is exactly one per tenant; organizers overwrite it wholesale.
type PaymentInfo struct {
	// Method is a short payment-rail label (e.g. "Swish", "MobilePay").
	Method string `json:"method"`

	// Details is free-text payout instructions.
	Details string `json:"details"`
}
