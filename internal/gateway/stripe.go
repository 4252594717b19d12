package gateway

import (
	"context"
	"errors"
	"log"
	"strings"

	"altura_store/internal/apperr"
	"altura_store/internal/models"

	stripe "github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/client"
)

// Stripe creates hosted Checkout Sessions. The secret key is injected, never
// read from the environment here, and the configuration check runs before any
// network call.
type Stripe struct {
	key     string
	baseURL string
	api     *client.API
}

func NewStripe(key, baseURL string) *Stripe {
	return NewStripeWithBackends(key, baseURL, nil)
}

// NewStripeWithBackends lets tests swap the SDK transport.
func NewStripeWithBackends(key, baseURL string, backends *stripe.Backends) *Stripe {
	s := &Stripe{key: key, baseURL: baseURL}
	if key != "" {
		if backends == nil {
			// Single attempt per call; the SDK's automatic retries are off.
			backends = &stripe.Backends{
				API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
					MaxNetworkRetries: stripe.Int64(0),
				}),
				Connect: stripe.GetBackend(stripe.ConnectBackend),
				Uploads: stripe.GetBackend(stripe.UploadsBackend),
			}
		}
		api := &client.API{}
		api.Init(key, backends)
		s.api = api
	}
	return s
}

func (s *Stripe) CreateSession(ctx context.Context, req *models.CheckoutRequest) (*models.GatewaySession, error) {
	if s.key == "" {
		return nil, &apperr.ConfigurationError{Integration: "STRIPE_SECRET_KEY"}
	}
	if len(req.Items) == 0 {
		return nil, apperr.Validation("no items")
	}

	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.baseURL + req.SuccessPath + "?sid={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.baseURL + req.CancelPath + "?canceled=1"),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	currency := strings.ToLower(req.Currency)
	for _, it := range req.Items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(it.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(it.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
			},
		})
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("❌ Stripe session failed: %v", err)
		var se *stripe.Error
		if errors.As(err, &se) {
			body := se.Msg
			if body == "" {
				body = se.Error()
			}
			return nil, &apperr.GatewayError{Provider: "stripe", Status: se.HTTPStatusCode, Body: body}
		}
		return nil, &apperr.GatewayError{Provider: "stripe", Body: err.Error()}
	}

	log.Printf("💳 Stripe session created: %s (%d items) for %s", sess.ID, len(req.Items), req.CustomerEmail)
	return &models.GatewaySession{ID: sess.ID, URL: sess.URL}, nil
}
