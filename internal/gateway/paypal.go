package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"altura_store/internal/apperr"
	"altura_store/internal/httpclient"
	"altura_store/internal/models"
)

const (
	paypalSandboxAPI = "https://api-m.sandbox.paypal.com"
	paypalLiveAPI    = "https://api-m.paypal.com"
)

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	Env          string // "sandbox" or "live"
	APIBase      string // overrides Env when set; used by tests
	BaseURL      string // externally visible base URL for return/cancel links
	BrandName    string
}

// PayPal creates orders through the REST API: a client-credentials token
// exchange followed by one order create. A failure at either step aborts the
// whole operation.
type PayPal struct {
	cfg PayPalConfig
	hc  *httpclient.Client
}

func NewPayPal(cfg PayPalConfig, hc *httpclient.Client) *PayPal {
	if cfg.APIBase == "" {
		if strings.ToLower(cfg.Env) == "live" {
			cfg.APIBase = paypalLiveAPI
		} else {
			cfg.APIBase = paypalSandboxAPI
		}
	}
	if cfg.BrandName == "" {
		cfg.BrandName = "ALTURA"
	}
	if hc == nil {
		hc = httpclient.New()
	}
	return &PayPal{cfg: cfg, hc: hc}
}

type paypalToken struct {
	AccessToken string `json:"access_token"`
}

type paypalOrder struct {
	Intent             string               `json:"intent"`
	PurchaseUnits      []paypalPurchaseUnit `json:"purchase_units"`
	ApplicationContext paypalAppContext     `json:"application_context"`
}

type paypalPurchaseUnit struct {
	Amount paypalAmount `json:"amount"`
}

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalAppContext struct {
	BrandName  string `json:"brand_name"`
	UserAction string `json:"user_action"`
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
}

type paypalOrderResult struct {
	ID    string `json:"id"`
	Links []struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"links"`
}

func (p *PayPal) CreateSession(ctx context.Context, req *models.CheckoutRequest) (*models.GatewaySession, error) {
	if p.cfg.ClientID == "" || p.cfg.ClientSecret == "" {
		return nil, &apperr.ConfigurationError{Integration: "PAYPAL credentials"}
	}
	if len(req.Items) == 0 {
		return nil, apperr.Validation("no items")
	}

	token, err := p.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	order := paypalOrder{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{{
			Amount: paypalAmount{
				CurrencyCode: strings.ToUpper(req.Currency),
				Value:        minorToDecimal(req.Total()),
			},
		}},
		ApplicationContext: paypalAppContext{
			BrandName:  p.cfg.BrandName,
			UserAction: "PAY_NOW",
			ReturnURL:  p.cfg.BaseURL + req.SuccessPath + "?paypal=1",
			CancelURL:  p.cfg.BaseURL + req.CancelPath + "?canceled=1",
		},
	}

	var result paypalOrderResult
	err = p.hc.PostJSON(ctx, p.cfg.APIBase+"/v2/checkout/orders",
		map[string]string{"Authorization": "Bearer " + token}, order, &result)
	if err != nil {
		log.Printf("❌ PayPal order create failed: %v", err)
		return nil, asGatewayError("paypal", err)
	}

	approve := ""
	for _, l := range result.Links {
		if l.Rel == "approve" {
			approve = l.Href
			break
		}
	}
	if approve == "" {
		// An order with no approve link cannot be completed by the customer;
		// treat it as a provider failure rather than a null redirect.
		return nil, &apperr.GatewayError{Provider: "paypal", Body: fmt.Sprintf("order %s has no approve link", result.ID)}
	}

	log.Printf("💳 PayPal order created: %s (%s %s)", result.ID, order.PurchaseUnits[0].Amount.Value, order.PurchaseUnits[0].Amount.CurrencyCode)
	return &models.GatewaySession{ID: result.ID, URL: approve}, nil
}

func (p *PayPal) fetchToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString([]byte(p.cfg.ClientID + ":" + p.cfg.ClientSecret))
	form := url.Values{"grant_type": {"client_credentials"}}

	var token paypalToken
	err := p.hc.PostForm(ctx, p.cfg.APIBase+"/v1/oauth2/token",
		map[string]string{"Authorization": "Basic " + auth}, form, &token)
	if err != nil {
		log.Printf("❌ PayPal token exchange failed: %v", err)
		return "", asGatewayError("paypal", err)
	}
	if token.AccessToken == "" {
		return "", &apperr.GatewayError{Provider: "paypal", Body: "empty access token"}
	}
	return token.AccessToken, nil
}

// minorToDecimal renders minor units as a two-decimal string (12900 -> "129.00")
// without going through floats.
func minorToDecimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// asGatewayError keeps the upstream status and body when the shared client saw
// a non-2xx, and wraps transport failures the same way.
func asGatewayError(provider string, err error) error {
	var se *httpclient.StatusError
	if errors.As(err, &se) {
		return &apperr.GatewayError{Provider: provider, Status: se.Status, Body: se.Body}
	}
	return &apperr.GatewayError{Provider: provider, Body: err.Error()}
}
