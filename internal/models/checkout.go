package models

// CheckoutPayload is the raw body posted to the checkout endpoints. Amounts and
// quantities are left untyped because clients send them either as JSON numbers
// or as strings; the checkout builder coerces and validates them.
type CheckoutPayload struct {
	CustomerEmail string        `json:"customer_email"`
	Phone         string        `json:"phone"`
	Currency      string        `json:"currency"`
	Lang          string        `json:"lang"`
	Items         []PayloadItem `json:"items"`
	SuccessPath   string        `json:"success_path"`
	CancelPath    string        `json:"cancel_path"`
}

type PayloadItem struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	UnitAmount any    `json:"unit_amount"`
	Quantity   any    `json:"quantity"`
}

// CheckoutRequest is the normalized form handed to a payment gateway.
type CheckoutRequest struct {
	CustomerEmail string
	Phone         string
	Currency      string
	Items         []LineItem
	SuccessPath   string
	CancelPath    string
}

type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// Total returns the sum of unit amounts times quantities, in minor units.
func (r *CheckoutRequest) Total() int64 {
	var total int64
	for _, it := range r.Items {
		total += it.UnitAmount * it.Quantity
	}
	return total
}

// GatewaySession is the provider-hosted payment flow the customer is redirected
// to. It is never persisted; the provider owns its state.
type GatewaySession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
