package models

type Product struct {
	Slug          string           `json:"slug"`
	Code          string           `json:"code"`
	NameEN        string           `json:"name_en"`
	NameFR        string           `json:"name_fr"`
	TaglineEN     string           `json:"tagline_en,omitempty"`
	TaglineFR     string           `json:"tagline_fr,omitempty"`
	DescriptionEN string           `json:"description_en,omitempty"`
	DescriptionFR string           `json:"description_fr,omitempty"`
	Category      string           `json:"category"`
	Gender        string           `json:"gender,omitempty"`
	Sizes         []string         `json:"sizes,omitempty"`
	Image         string           `json:"image,omitempty"`
	Price         map[string]int64 `json:"price,omitempty"`
	PriceEUR      int64            `json:"price_eur,omitempty"`
	PriceUSD      int64            `json:"price_usd,omitempty"`
}

// RequiresSize reports whether a cart item for this product must carry a size.
func (p *Product) RequiresSize() bool {
	return p.Category == "shoes"
}
