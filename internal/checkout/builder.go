// Package checkout turns the raw payload posted by the storefront into a
// normalized CheckoutRequest a payment gateway can consume.
package checkout

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"altura_store/internal/apperr"
	"altura_store/internal/catalog"
	"altura_store/internal/models"
)

type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder returns a builder. The catalog may be nil; it is only consulted
// for line items that name a product slug without a unit amount.
func NewBuilder(cat *catalog.Catalog) *Builder {
	return &Builder{catalog: cat}
}

// Build validates the payload and produces a CheckoutRequest. It is a pure
// transform: no I/O, no side effects.
func (b *Builder) Build(p *models.CheckoutPayload) (*models.CheckoutRequest, error) {
	if p == nil {
		return nil, apperr.Validation("empty request body")
	}
	email := strings.TrimSpace(p.CustomerEmail)
	if email == "" {
		return nil, apperr.Validation("customer_email is required")
	}
	if len(p.Items) == 0 {
		return nil, apperr.Validation("no items")
	}

	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = "EUR"
	}

	lang := p.Lang
	if lang != "fr" {
		lang = "en"
	}
	successPath := p.SuccessPath
	if successPath == "" {
		successPath = fmt.Sprintf("/%s/order/success/", lang)
	}
	cancelPath := p.CancelPath
	if cancelPath == "" {
		cancelPath = fmt.Sprintf("/%s/order/failed/", lang)
	}

	req := &models.CheckoutRequest{
		CustomerEmail: email,
		Phone:         strings.TrimSpace(p.Phone),
		Currency:      currency,
		SuccessPath:   successPath,
		CancelPath:    cancelPath,
		Items:         make([]models.LineItem, 0, len(p.Items)),
	}

	for i, it := range p.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = fmt.Sprintf("ALTURA Item %d", i+1)
		}

		amount, err := b.resolveAmount(it, currency)
		if err != nil {
			return nil, apperr.Validation("item %d: %v", i+1, err)
		}
		if amount < 0 {
			return nil, apperr.Validation("item %d: negative unit_amount", i+1)
		}

		qty := int64(1)
		if it.Quantity != nil {
			qty, err = coerceInt(it.Quantity)
			if err != nil {
				return nil, apperr.Validation("item %d: invalid quantity: %v", i+1, err)
			}
		}
		if qty < 1 {
			return nil, apperr.Validation("item %d: quantity must be at least 1", i+1)
		}

		req.Items = append(req.Items, models.LineItem{
			Name:       name,
			UnitAmount: amount,
			Quantity:   qty,
		})
	}

	return req, nil
}

// FromCart converts a client-held cart into a checkout payload the way the
// storefront does: one payload item per cart line, localized display name
// with the EU size suffix, prices as captured in the cart.
func FromCart(cart *models.Cart, currency string) *models.CheckoutPayload {
	lang := cart.Lang
	if lang != "fr" {
		lang = "en"
	}
	p := &models.CheckoutPayload{
		CustomerEmail: cart.Email,
		Currency:      currency,
		Lang:          lang,
	}
	for _, it := range cart.Items {
		name := it.NameEN
		if lang == "fr" && it.NameFR != "" {
			name = it.NameFR
		}
		if it.Size != "" {
			name = fmt.Sprintf("%s (EU %s)", name, it.Size)
		}
		p.Items = append(p.Items, models.PayloadItem{
			Slug:       it.Slug,
			Name:       name,
			UnitAmount: it.UnitAmount,
			Quantity:   it.Qty,
		})
	}
	return p
}

// resolveAmount prefers an explicit unit_amount; a slug-only item gets the
// current catalog price for the active currency.
func (b *Builder) resolveAmount(it models.PayloadItem, currency string) (int64, error) {
	if it.UnitAmount == nil {
		if it.Slug != "" && b.catalog != nil {
			if p, ok := b.catalog.FindBySlug(it.Slug); ok {
				return b.catalog.UnitAmount(p, currency), nil
			}
			return 0, fmt.Errorf("unknown product %q", it.Slug)
		}
		return 0, fmt.Errorf("missing unit_amount")
	}
	amount, err := coerceInt(it.UnitAmount)
	if err != nil {
		return 0, fmt.Errorf("invalid unit_amount: %v", err)
	}
	return amount, nil
}

// coerceInt accepts the integer encodings clients actually send: JSON numbers
// (float64 after decoding), numeric strings, or json.Number. Anything else,
// including fractional amounts, is an error rather than a silent zero.
func coerceInt(v any) (int64, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return parsed, nil
	case json.Number:
		return n.Int64()
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}
