package entity

import "time"

// Receipt is the priced outcome of one order.
// It is NOT a database entity; it is composed once the whole order is fulfilled.
type Receipt struct {
	InvoiceNo           string              `json:"invoice_no"`
	IssuedAt            time.Time           `json:"issued_at"`
	OrderedLines        []OrderedLineResult `json:"ordered_lines"`
	BonusItems          []BonusItem         `json:"bonus_items"`
	TotalPrice          int64               `json:"total_price"`
	TotalQuantity       int                 `json:"total_quantity"`
	MembershipApplied   bool                `json:"membership_applied"`
	MembershipDiscount  int64               `json:"membership_discount"`
	PromotionalDiscount int64               `json:"promotional_discount"`
	FinalPrice          int64               `json:"final_price"`
}
