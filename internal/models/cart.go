package models

// Cart mirrors the client-side cart held in localStorage. The server never
// stores it; it only shows up inside confirmation payloads.
type Cart struct {
	Items []CartItem `json:"items"`
	Email string     `json:"email"`
	Lang  string     `json:"lang"`
}

type CartItem struct {
	Slug       string `json:"slug"`
	Code       string `json:"code"`
	NameEN     string `json:"name_en"`
	NameFR     string `json:"name_fr"`
	Size       string `json:"size,omitempty"`
	Qty        int    `json:"qty"`
	Currency   string `json:"currency"`
	UnitAmount int64  `json:"unit_amount"`
}
