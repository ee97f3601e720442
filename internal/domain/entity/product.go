package entity

import "strings"

// noPromotionTokens are the catalog values that mean "this row has no promotion"
var noPromotionTokens = map[string]struct{}{
	"":     {},
	"null": {},
	"none": {},
}

// Product represents one stock row of the kiosk catalog.
// The same name may exist twice: once as a promotional row and once as a general row.
type Product struct {
	Name          string `json:"name"`
	UnitPrice     int64  `json:"unit_price"` // Smallest currency unit
	Quantity      int    `json:"quantity"`
	PromotionName string `json:"promotion_name,omitempty"`
}

// NewProduct creates a product, normalizing the promotion column
func NewProduct(name string, unitPrice int64, quantity int, promotion string) *Product {
	return &Product{
		Name:          strings.TrimSpace(name),
		UnitPrice:     unitPrice,
		Quantity:      quantity,
		PromotionName: NormalizePromotionName(promotion),
	}
}

// HasPromotion reports whether the row references a promotion
func (p *Product) HasPromotion() bool {
	return p.PromotionName != ""
}

// InStock reports whether at least one unit is left
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// PriceOf returns the price of qty units of the product
func (p *Product) PriceOf(qty int) int64 {
	return p.UnitPrice * int64(qty)
}

// Copy returns a detached copy of the product
func (p *Product) Copy() *Product {
	c := *p
	return &c
}

// NormalizePromotionName maps the catalog "no promotion" tokens to an empty string
func NormalizePromotionName(promotion string) string {
	trimmed := strings.TrimSpace(promotion)
	if _, ok := noPromotionTokens[strings.ToLower(trimmed)]; ok {
		return ""
	}
	return trimmed
}
