// Package catalog reads the static product list the generated site is built
// from. The file is the source of truth; the server never mutates it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"altura_store/internal/models"
)

type Catalog struct {
	raw      []byte
	products map[string]*models.Product
	doc      document
}

type document struct {
	Products []models.Product `json:"products"`
}

// Load parses products.json at the given path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c := &Catalog{raw: raw, doc: doc, products: make(map[string]*models.Product, len(doc.Products))}
	for i := range doc.Products {
		c.products[doc.Products[i].Slug] = &doc.Products[i]
	}
	return c, nil
}

// Raw returns the catalog document exactly as stored, for verbatim serving.
func (c *Catalog) Raw() []byte { return c.raw }

func (c *Catalog) Products() []models.Product { return c.doc.Products }

func (c *Catalog) FindBySlug(slug string) (*models.Product, bool) {
	p, ok := c.products[slug]
	return p, ok
}

// UnitAmount resolves the current price of a product in minor units for the
// given currency: the per-currency price table first, then the currency
// specific fallback field, else zero. Prices are resolved again at request
// time, so a catalog change between add-to-cart and checkout is picked up.
func (c *Catalog) UnitAmount(p *models.Product, currency string) int64 {
	if amt, ok := p.Price[currency]; ok && amt > 0 {
		return amt
	}
	if currency == "USD" {
		return p.PriceUSD
	}
	return p.PriceEUR
}
