package entity

// OrderLine is a single validated purchase request
type OrderLine struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// OrderedLineResult is the outcome of fulfilling one order line
type OrderedLineResult struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	TotalPrice int64  `json:"total_price"`
	// AmountWithoutPromotion is the part of TotalPrice that is not part of a
	// completed buy-get unit. It is the membership discount base.
	AmountWithoutPromotion int64 `json:"amount_without_promotion"`
	BonusQuantity          int   `json:"bonus_quantity"`
}

// NewOrderedLineResult creates a line result, deriving the total price
func NewOrderedLineResult(name string, quantity int, unitPrice, amountWithoutPromotion int64, bonus int) OrderedLineResult {
	return OrderedLineResult{
		Name:                   name,
		Quantity:               quantity,
		UnitPrice:              unitPrice,
		TotalPrice:             unitPrice * int64(quantity),
		AmountWithoutPromotion: amountWithoutPromotion,
		BonusQuantity:          bonus,
	}
}

// BonusItem records free units granted by a promotion for one order line
type BonusItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Discount returns the value of the free units
func (b BonusItem) Discount() int64 {
	return b.UnitPrice * int64(b.Quantity)
}
