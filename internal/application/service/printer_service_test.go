package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/pkg/logger"
	"github.com/sangkips/promo-kiosk/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() *entity.Receipt {
	r := BuildReceipt(
		[]entity.OrderedLineResult{
			entity.NewOrderedLineResult("cola", 3, 1000, 0, 1),
			entity.NewOrderedLineResult("energy bar", 5, 2000, 10000, 0),
		},
		[]entity.BonusItem{{Name: "cola", Quantity: 1, UnitPrice: 1000}},
		true,
		DefaultMembershipPolicy(),
	)
	return stampReceipt(r, "INV-0000ABCD", time.Date(2026, 10, 19, 14, 30, 0, 0, testLoc))
}

func TestFormatReceipt(t *testing.T) {
	out := string(FormatReceipt(sampleReceipt(), "W Convenience Store", 32))

	assert.Contains(t, out, "W Convenience Store")
	assert.Contains(t, out, "INV-0000ABCD")
	assert.Contains(t, out, "2026-10-19 14:30")
	assert.Contains(t, out, "FREE ITEMS")
	assert.Contains(t, out, "energy bar      5         10,000")
	assert.Contains(t, out, "Promotion discount        -1,000")
	assert.Contains(t, out, "Membership discount       -3,000")
	assert.Contains(t, out, "To pay                     9,000")
}

func TestPrinterService_PrintReceipt(t *testing.T) {
	var spool bytes.Buffer
	svc := NewPrinterService(printer.NewWriterPrinter(&spool), "file", "W Convenience Store", 32, logger.Nop())

	status := svc.GetStatus()
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)

	require.NoError(t, svc.PrintReceipt(sampleReceipt()))
	assert.Equal(t, FormatReceipt(sampleReceipt(), "W Convenience Store", 32), spool.Bytes())
	assert.NoError(t, svc.Close())
}

func TestPrinterService_UnconfiguredPrinterIsSkipped(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), "none", "W Convenience Store", 32, logger.Nop())

	assert.False(t, svc.GetStatus().Configured)
	assert.NoError(t, svc.PrintReceipt(sampleReceipt()))
}
