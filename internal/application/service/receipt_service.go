package service

import (
	"time"

	"github.com/sangkips/promo-kiosk/internal/domain/entity"
)

// MembershipPolicy sets the membership discount rate and its cap
type MembershipPolicy struct {
	RatePercent int64
	Cap         int64
}

// DefaultMembershipPolicy is 30% of the non-promotional amount, capped at 8,000
func DefaultMembershipPolicy() MembershipPolicy {
	return MembershipPolicy{RatePercent: 30, Cap: 8000}
}

// Discount returns the membership discount for base, truncated toward zero
func (p MembershipPolicy) Discount(base int64) int64 {
	if base <= 0 || p.RatePercent <= 0 {
		return 0
	}
	return min(base*p.RatePercent/100, p.Cap)
}

// BuildReceipt folds fulfilled lines and bonus items into a priced receipt
func BuildReceipt(lines []entity.OrderedLineResult, bonuses []entity.BonusItem, membership bool, policy MembershipPolicy) *entity.Receipt {
	r := &entity.Receipt{
		OrderedLines:      lines,
		BonusItems:        bonuses,
		MembershipApplied: membership,
	}

	var base int64
	for _, line := range lines {
		r.TotalPrice += line.TotalPrice
		r.TotalQuantity += line.Quantity
		base += line.AmountWithoutPromotion
	}
	for _, bonus := range bonuses {
		r.PromotionalDiscount += bonus.Discount()
	}
	if membership {
		r.MembershipDiscount = policy.Discount(base)
	}
	r.FinalPrice = r.TotalPrice - r.PromotionalDiscount - r.MembershipDiscount

	return r
}

// stampReceipt assigns the invoice number and issue time
func stampReceipt(r *entity.Receipt, invoiceNo string, issuedAt time.Time) *entity.Receipt {
	r.InvoiceNo = invoiceNo
	r.IssuedAt = issuedAt
	return r
}
