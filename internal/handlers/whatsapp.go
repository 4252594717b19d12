package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendWhatsApp relays one text message through the Cloud API.
func (a *API) SendWhatsApp(c *gin.Context) {
	var req struct {
		To   string `json:"to"`
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing to/text"})
		return
	}

	resp, err := a.WhatsApp.Send(c.Request.Context(), req.To, req.Text)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "resp": resp})
}
