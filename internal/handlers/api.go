// Package handlers wires the HTTP surface to the checkout components. All
// dependencies are injected through the API struct; handlers never reach for
// globals or the environment.
package handlers

import (
	"errors"
	"net/http"

	"altura_store/internal/apperr"
	"altura_store/internal/checkout"
	"altura_store/internal/gateway"
	"altura_store/internal/notify"
	"altura_store/internal/orders"

	"github.com/gin-gonic/gin"
)

type API struct {
	Builder  *checkout.Builder
	Stripe   gateway.Gateway
	PayPal   gateway.Gateway
	Orders   *orders.Recorder
	WhatsApp *notify.WhatsApp

	CatalogPath string
	SiteDir     string
}

// renderError maps the error taxonomy to HTTP in one place. Validation and
// missing configuration are client-visible precondition failures (400);
// gateway and persistence failures are 500.
func renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var ve *apperr.ValidationError
	var ce *apperr.ConfigurationError
	if errors.As(err, &ve) || errors.As(err, &ce) {
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
