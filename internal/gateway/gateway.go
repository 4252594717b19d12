// Package gateway holds the payment provider strategies. Both providers take
// the same normalized request and hand back a hosted redirect for the
// customer; every call is attempted exactly once, no retries.
package gateway

import (
	"context"

	"altura_store/internal/models"
)

type Gateway interface {
	// CreateSession creates a provider-hosted checkout flow and returns its
	// id plus the URL the customer must be redirected to.
	CreateSession(ctx context.Context, req *models.CheckoutRequest) (*models.GatewaySession, error)
}
