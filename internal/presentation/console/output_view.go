package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/internal/domain/inventory"
	"github.com/sangkips/promo-kiosk/pkg/money"
)

const receiptRow = "%-18s%6s%14s\n"

// OutputView renders the stock board and receipts as text
type OutputView struct {
	out       io.Writer
	storeName string
}

// NewOutputView creates an output view writing to out
func NewOutputView(out io.Writer) *OutputView {
	return &OutputView{out: out, storeName: "W Convenience Store"}
}

// WithStoreName sets the name printed in greetings and receipt headers
func (v *OutputView) WithStoreName(name string) *OutputView {
	if name != "" {
		v.storeName = name
	}
	return v
}

// ShowStock prints the greeting and one line per stock row
func (v *OutputView) ShowStock(rows []inventory.StockRow) {
	fmt.Fprintf(v.out, "Hello. This is %s.\n", v.storeName)
	fmt.Fprintln(v.out, "Here are the products we currently have.")
	fmt.Fprintln(v.out)
	for _, row := range rows {
		fmt.Fprintln(v.out, FormatStockRow(row))
	}
	fmt.Fprintln(v.out)
}

// FormatStockRow renders "- cola 1,000 won 10 units Soda 2+1"
func FormatStockRow(row inventory.StockRow) string {
	p := row.Product
	stock := "out of stock"
	if p.InStock() {
		stock = strconv.Itoa(p.Quantity) + " units"
	}
	line := fmt.Sprintf("- %s %s %s", p.Name, money.WithUnit(p.UnitPrice), stock)
	if row.Promotional {
		line += " " + p.PromotionName
	}
	return line
}

// ShowReceipt prints the receipt
func (v *OutputView) ShowReceipt(r *entity.Receipt) {
	fmt.Fprintf(v.out, "============== %s ==============\n", v.storeName)
	fmt.Fprintf(v.out, receiptRow, "Item", "Qty", "Amount")
	for _, line := range r.OrderedLines {
		fmt.Fprintf(v.out, receiptRow, line.Name, strconv.Itoa(line.Quantity), money.Format(line.TotalPrice))
	}

	fmt.Fprintln(v.out, "============== FREE ITEMS ==============")
	for _, bonus := range r.BonusItems {
		fmt.Fprintf(v.out, receiptRow, bonus.Name, strconv.Itoa(bonus.Quantity), "")
	}

	fmt.Fprintln(v.out, "========================================")
	fmt.Fprintf(v.out, receiptRow, "Total", strconv.Itoa(r.TotalQuantity), money.Format(r.TotalPrice))
	fmt.Fprintf(v.out, receiptRow, "Promotion discount", "", money.Discount(r.PromotionalDiscount))
	fmt.Fprintf(v.out, receiptRow, "Membership discount", "", money.Discount(r.MembershipDiscount))
	fmt.Fprintf(v.out, receiptRow, "To pay", "", money.Format(r.FinalPrice))
	fmt.Fprintln(v.out)
}

// ShowError prints a customer-facing error message
func (v *OutputView) ShowError(err error) {
	fmt.Fprintln(v.out, err.Error())
}
