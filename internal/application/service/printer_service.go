package service

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/pkg/money"
	"github.com/sangkips/promo-kiosk/pkg/printer"
)

// PrinterService formats receipts as ESC/POS and sends them to a printer.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	storeName   string
	width       int
	logger      zerolog.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType, storeName string, width int, logger zerolog.Logger) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
		storeName:   storeName,
		width:       width,
		logger:      logger,
	}
}

// PrinterStatus describes the configured printer.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt renders and prints r.
func (s *PrinterService) PrintReceipt(r *entity.Receipt) error {
	if !s.GetStatus().Configured {
		return nil
	}
	if err := s.printer.Print(FormatReceipt(r, s.storeName, s.width)); err != nil {
		s.logger.Error().Err(err).Str("invoice_no", r.InvoiceNo).Msg("printer error")
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	s.logger.Debug().Str("invoice_no", r.InvoiceNo).Msg("receipt printed")
	return nil
}

// Close releases the printer.
func (s *PrinterService) Close() error {
	return s.printer.Close()
}

// FormatReceipt lays out a receipt for a thermal printer of width columns.
func FormatReceipt(r *entity.Receipt, storeName string, width int) []byte {
	d := printer.NewDocument(width)

	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(storeName).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		Text(r.InvoiceNo).
		Text(r.IssuedAt.Format("2006-01-02 15:04"))

	d.SetAlign(printer.AlignLeft).
		Separator('=').
		Columns("Item", "Qty", "Amount")
	for _, line := range r.OrderedLines {
		d.Columns(line.Name, strconv.Itoa(line.Quantity), money.Format(line.TotalPrice))
	}

	if len(r.BonusItems) > 0 {
		d.SetAlign(printer.AlignCenter).Text("FREE ITEMS").SetAlign(printer.AlignLeft)
		d.Separator('=')
		for _, bonus := range r.BonusItems {
			d.Columns(bonus.Name, strconv.Itoa(bonus.Quantity), "")
		}
	}

	d.Separator('=').
		Columns("Total", strconv.Itoa(r.TotalQuantity), money.Format(r.TotalPrice)).
		KeyValue("Promotion discount", money.Discount(r.PromotionalDiscount)).
		KeyValue("Membership discount", money.Discount(r.MembershipDiscount)).
		SetBold(true).
		KeyValue("To pay", money.Format(r.FinalPrice)).
		SetBold(false).
		FeedLines(3).
		Cut()

	return d.Bytes()
}
