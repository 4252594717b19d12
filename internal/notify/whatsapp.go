package notify

import (
	"context"
	"errors"
	"log"

	"altura_store/internal/apperr"
	"altura_store/internal/httpclient"
)

const whatsAppAPIBase = "https://graph.facebook.com/v20.0"

// WhatsApp sends text messages through the Meta Cloud API.
type WhatsApp struct {
	token         string
	phoneNumberID string
	hc            *httpclient.Client

	// APIBase can be pointed at a test server.
	APIBase string
}

func NewWhatsApp(token, phoneNumberID string, hc *httpclient.Client) *WhatsApp {
	if hc == nil {
		hc = httpclient.New()
	}
	return &WhatsApp{token: token, phoneNumberID: phoneNumberID, hc: hc, APIBase: whatsAppAPIBase}
}

func (w *WhatsApp) Configured() bool {
	return w.token != "" && w.phoneNumberID != ""
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

type whatsAppText struct {
	Body string `json:"body"`
}

// Send delivers one text message and returns the provider response verbatim.
func (w *WhatsApp) Send(ctx context.Context, to, text string) (map[string]any, error) {
	if !w.Configured() {
		return nil, &apperr.ConfigurationError{Integration: "WhatsApp"}
	}

	msg := whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             whatsAppText{Body: text},
	}

	var resp map[string]any
	err := w.hc.PostJSON(ctx, w.APIBase+"/"+w.phoneNumberID+"/messages",
		map[string]string{"Authorization": "Bearer " + w.token}, msg, &resp)
	if err != nil {
		log.Printf("❌ WhatsApp send failed: %v", err)
		var se *httpclient.StatusError
		if errors.As(err, &se) {
			return nil, &apperr.GatewayError{Provider: "whatsapp", Status: se.Status, Body: se.Body}
		}
		return nil, &apperr.GatewayError{Provider: "whatsapp", Body: err.Error()}
	}
	return resp, nil
}
