package handlers

import (
	"net/http"

	"altura_store/internal/gateway"
	"altura_store/internal/models"

	"github.com/gin-gonic/gin"
)

// CheckoutStripe creates a hosted Stripe Checkout Session and returns its id
// and redirect URL.
func (a *API) CheckoutStripe(c *gin.Context) {
	a.createSession(c, a.Stripe, "url")
}

// CheckoutPayPal creates a PayPal order and returns its id and approve URL.
func (a *API) CheckoutPayPal(c *gin.Context) {
	a.createSession(c, a.PayPal, "approve_url")
}

func (a *API) createSession(c *gin.Context, gw gateway.Gateway, urlField string) {
	var payload models.CheckoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	req, err := a.Builder.Build(&payload)
	if err != nil {
		renderError(c, err)
		return
	}

	sess, err := gw.CreateSession(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": sess.ID, urlField: sess.URL})
}
