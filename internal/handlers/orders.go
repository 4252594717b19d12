package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfirmOrder records the confirmation payload the client sends after coming
// back from the provider redirect. The payload is opaque passthrough; only the
// durable append can fail the request.
func (a *API) ConfirmOrder(c *gin.Context) {
	payload := map[string]any{}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	orderID, err := a.Orders.Confirm(c.Request.Context(), payload)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "order_id": orderID})
}
